package services

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindAll(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindAllNames(ctx context.Context) ([]responses.ServiceName, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.ServiceName), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByCompositeKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, patient)
	if booking := args.Get(0); booking != nil {
		return booking.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	args := m.Called(ctx, patient)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if booking := args.Get(0); booking != nil {
		return booking.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) MarkPaid(ctx context.Context, bookingID, transactionID string) (*responses.UpdateResult, error) {
	args := m.Called(ctx, bookingID, transactionID)
	if result := args.Get(0); result != nil {
		return result.(*responses.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestServiceUsecase_GetAvailability(t *testing.T) {
	ctx := context.Background()

	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	usecase := NewServiceUsecase(serviceRepo, bookingRepo)

	date := "May 18, 2022"

	serviceRepo.On("FindAll", ctx).Return([]models.Service{
		{Name: "Teeth Cleaning", Slots: []string{"08:00", "09:00", "10:00"}},
		{Name: "Cavity Protection", Slots: []string{"08:00", "09:00"}},
	}, nil)
	bookingRepo.On("FindByDate", ctx, date).Return([]models.Booking{
		{Treatment: "Teeth Cleaning", Date: date, Slot: "09:00", Patient: "a@x.com"},
		{Treatment: "Teeth Cleaning", Date: date, Slot: "10:00", Patient: "b@x.com"},
		{Treatment: "Other Treatment", Date: date, Slot: "08:00", Patient: "c@x.com"},
	}, nil)

	available, err := usecase.GetAvailability(ctx, date)

	assert.NoError(t, err)
	assert.Len(t, available, 2)
	assert.Equal(t, []string{"08:00"}, available[0].Slots, "booked slots must be subtracted per service")
	assert.Equal(t, []string{"08:00", "09:00"}, available[1].Slots, "bookings for other treatments must not affect a service")

	serviceRepo.AssertExpectations(t)
	bookingRepo.AssertExpectations(t)
}

func TestServiceUsecase_GetAvailability_DefaultDate(t *testing.T) {
	ctx := context.Background()

	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	usecase := NewServiceUsecase(serviceRepo, bookingRepo)

	serviceRepo.On("FindAll", ctx).Return([]models.Service{}, nil)
	bookingRepo.On("FindByDate", ctx, constvars.DefaultAvailabilityDate).Return([]models.Booking{}, nil)

	_, err := usecase.GetAvailability(ctx, "")

	assert.NoError(t, err)
	bookingRepo.AssertCalled(t, "FindByDate", ctx, constvars.DefaultAvailabilityDate)
}

func TestServiceUsecase_GetAvailability_ExactStringDateMatch(t *testing.T) {
	ctx := context.Background()

	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	usecase := NewServiceUsecase(serviceRepo, bookingRepo)

	// "May 18, 2022" and "2022-05-18" are different keys; no normalization.
	serviceRepo.On("FindAll", ctx).Return([]models.Service{
		{Name: "Teeth Cleaning", Slots: []string{"08:00"}},
	}, nil)
	bookingRepo.On("FindByDate", ctx, "2022-05-18").Return([]models.Booking{}, nil)

	available, err := usecase.GetAvailability(ctx, "2022-05-18")

	assert.NoError(t, err)
	assert.Equal(t, []string{"08:00"}, available[0].Slots)
}

func TestServiceUsecase_GetAvailability_FullyBooked(t *testing.T) {
	ctx := context.Background()

	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	usecase := NewServiceUsecase(serviceRepo, bookingRepo)

	date := "May 18, 2022"

	serviceRepo.On("FindAll", ctx).Return([]models.Service{
		{Name: "Teeth Cleaning", Slots: []string{"08:00"}},
	}, nil)
	bookingRepo.On("FindByDate", ctx, date).Return([]models.Booking{
		{Treatment: "Teeth Cleaning", Date: date, Slot: "08:00", Patient: "a@x.com"},
	}, nil)

	available, err := usecase.GetAvailability(ctx, date)

	assert.NoError(t, err)
	assert.NotNil(t, available[0].Slots, "a fully booked service keeps an empty slice, not nil")
	assert.Empty(t, available[0].Slots)

	// The wire shape must carry the empty array, not drop the key.
	body, err := json.Marshal(available)
	assert.NoError(t, err)
	assert.Contains(t, string(body), `"slots":[]`)
}

func TestServiceUsecase_ListServices(t *testing.T) {
	ctx := context.Background()

	serviceRepo := new(MockServiceRepository)
	bookingRepo := new(MockBookingRepository)
	usecase := NewServiceUsecase(serviceRepo, bookingRepo)

	serviceRepo.On("FindAllNames", ctx).Return([]responses.ServiceName{
		{Name: "Teeth Cleaning"},
		{Name: "Cavity Protection"},
	}, nil)

	services, err := usecase.ListServices(ctx)

	assert.NoError(t, err)
	assert.Len(t, services, 2)
	serviceRepo.AssertExpectations(t)
}
