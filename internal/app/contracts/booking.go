package contracts

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type BookingRepository interface {
	FindByCompositeKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) (string, error)
	MarkPaid(ctx context.Context, bookingID, transactionID string) (*responses.UpdateResult, error)
}

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error)
	ListBookingsByPatient(ctx context.Context, decodedEmail, patient string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID string, request *requests.ConfirmPayment) (*responses.ConfirmPayment, error)
}
