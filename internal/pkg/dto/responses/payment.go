package responses

type CreatePaymentIntent struct {
	ClientSecret string `json:"clientSecret"`
}
