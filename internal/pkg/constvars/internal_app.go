package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY    ContextKey = "request_id"
	CONTEXT_DECODED_EMAIL_KEY ContextKey = "decoded_email"
)

const (
	MongoCollectionServices = "services"
	MongoCollectionBookings = "booking"
	MongoCollectionUsers    = "users"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionPayments = "payments"
)

const (
	RoleAdmin = "admin"

	// The reference client always sends this date when the picker is untouched,
	// so the availability endpoint falls back to it rather than computing "today".
	DefaultAvailabilityDate = "May 18, 2022"

	PaymentCurrencyUSD = "usd"
	PaymentMethodCard  = "card"
)
