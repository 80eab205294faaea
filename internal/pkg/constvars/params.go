package constvars

const (
	URLParamBookingID   = "booking_id"
	URLParamUserEmail   = "email"
	URLParamDoctorEmail = "email"
)

const (
	URLQueryParamDate    = "date"
	URLQueryParamPatient = "patient"
)
