package responses

import "github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"

// CreateBooking mirrors the route contract: a fresh booking answers with the
// insert result, a duplicate answers success=false plus the existing record.
type CreateBooking struct {
	Success bool            `json:"success"`
	Result  *InsertResult   `json:"result,omitempty"`
	Booking *models.Booking `json:"booking,omitempty"`
}

type ConfirmPayment struct {
	Booking *UpdateResult `json:"booking"`
	Payment *InsertResult `json:"payment"`
}
