package bookings

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
)

type bookingUsecase struct {
	BookingRepository contracts.BookingRepository
	PaymentRepository contracts.PaymentRepository
}

func NewBookingUsecase(
	bookingMongoRepository contracts.BookingRepository,
	paymentMongoRepository contracts.PaymentRepository,
) contracts.BookingUsecase {
	return &bookingUsecase{
		BookingRepository: bookingMongoRepository,
		PaymentRepository: paymentMongoRepository,
	}
}

// CreateBooking keeps one booking per (treatment, date, patient). A sequential
// duplicate is caught by the lookup; a concurrent one by the unique index, and
// both answer success=false with the record that won.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.CreateBooking, error) {
	existing, err := uc.BookingRepository.FindByCompositeKey(ctx, request.Treatment, request.Date, request.Patient)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &responses.CreateBooking{Success: false, Booking: existing}, nil
	}

	booking := &models.Booking{
		Treatment:   request.Treatment,
		Date:        request.Date,
		Slot:        request.Slot,
		Patient:     request.Patient,
		PatientName: request.PatientName,
		Phone:       request.Phone,
		Price:       request.Price,
	}

	insertedID, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		if err == errDuplicateBooking {
			existing, findErr := uc.BookingRepository.FindByCompositeKey(ctx, request.Treatment, request.Date, request.Patient)
			if findErr != nil {
				return nil, findErr
			}
			// The winner can be gone by now (deleted between insert and
			// re-lookup); answering success=false with a null booking would
			// tell the client nothing, so surface the insert failure.
			if existing == nil {
				return nil, exceptions.ErrMongoDBInsertDocument(err)
			}
			return &responses.CreateBooking{Success: false, Booking: existing}, nil
		}
		return nil, err
	}

	return &responses.CreateBooking{
		Success: true,
		Result:  &responses.InsertResult{Acknowledged: true, InsertedID: insertedID},
	}, nil
}

func (uc *bookingUsecase) ListBookingsByPatient(ctx context.Context, decodedEmail, patient string) ([]models.Booking, error) {
	if decodedEmail != patient {
		return nil, exceptions.ErrNotBookingOwner(nil)
	}
	return uc.BookingRepository.FindByPatient(ctx, patient)
}

// GetBookingByID has no ownership check: any authenticated caller can fetch
// any booking. The payment page is handed a bare id by the dashboard, so the
// reference client relies on this.
func (uc *bookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrDocumentNotFound(nil)
	}
	return booking, nil
}

// ConfirmPayment performs two writes that are not transactional: the paid flag
// on the booking and the append to the payment log. A failure between them
// leaves a paid-but-unlogged booking; accepted as best effort for this scope.
func (uc *bookingUsecase) ConfirmPayment(ctx context.Context, bookingID string, request *requests.ConfirmPayment) (*responses.ConfirmPayment, error) {
	updateResult, err := uc.BookingRepository.MarkPaid(ctx, bookingID, request.TransactionID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TransactionID: request.TransactionID,
		BookingID:     bookingID,
		Patient:       request.Patient,
		Price:         request.Price,
		Extra:         request.Extra,
	}
	insertedID, err := uc.PaymentRepository.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}

	return &responses.ConfirmPayment{
		Booking: updateResult,
		Payment: &responses.InsertResult{Acknowledged: true, InsertedID: insertedID},
	}, nil
}
