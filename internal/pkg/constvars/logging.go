package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingEmailKey       = "email"
	LoggingDateKey        = "date"
	LoggingBookingIDKey   = "booking_id"
	LoggingTreatmentKey   = "treatment"
	LoggingQueryParamsKey = "query_params"
)
