package requests

// CreatePaymentIntent reads the price straight from the client. The amount is
// not cross-checked against a stored service price, matching the reference
// behavior the client depends on.
type CreatePaymentIntent struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
