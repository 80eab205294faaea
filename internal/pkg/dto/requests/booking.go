package requests

type CreateBooking struct {
	Treatment   string  `json:"treatment" validate:"required"`
	Date        string  `json:"date" validate:"required"`
	Slot        string  `json:"slot" validate:"required"`
	Patient     string  `json:"patient" validate:"required,email"`
	PatientName string  `json:"patientName"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price"`
}

// ConfirmPayment carries the processor result the client posts back after paying.
// Extra preserves any additional fields so the payment log keeps the payload verbatim.
type ConfirmPayment struct {
	TransactionID string                 `json:"transactionId" validate:"required"`
	BookingID     string                 `json:"bookingId"`
	Patient       string                 `json:"patient"`
	Price         float64                `json:"price"`
	Extra         map[string]interface{} `json:"-"`
}
