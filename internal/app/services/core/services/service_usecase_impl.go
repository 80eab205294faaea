package services

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type serviceUsecase struct {
	ServiceRepository contracts.ServiceRepository
	BookingRepository contracts.BookingRepository
}

func NewServiceUsecase(
	serviceMongoRepository contracts.ServiceRepository,
	bookingMongoRepository contracts.BookingRepository,
) contracts.ServiceUsecase {
	return &serviceUsecase{
		ServiceRepository: serviceMongoRepository,
		BookingRepository: bookingMongoRepository,
	}
}

func (uc *serviceUsecase) ListServices(ctx context.Context) ([]responses.ServiceName, error) {
	return uc.ServiceRepository.FindAllNames(ctx)
}

// GetAvailability replaces each service's slot template with the slots still
// free on the given date. Dates are compared by exact string equality, the way
// bookings store them; there is no normalization or timezone handling.
func (uc *serviceUsecase) GetAvailability(ctx context.Context, date string) ([]models.Service, error) {
	if date == "" {
		date = constvars.DefaultAvailabilityDate
	}

	services, err := uc.ServiceRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedSlots := make(map[string]map[string]struct{}, len(services))
	for _, booking := range bookings {
		taken, ok := bookedSlots[booking.Treatment]
		if !ok {
			taken = make(map[string]struct{})
			bookedSlots[booking.Treatment] = taken
		}
		taken[booking.Slot] = struct{}{}
	}

	for i := range services {
		taken := bookedSlots[services[i].Name]
		if len(taken) == 0 {
			continue
		}
		remaining := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, booked := taken[slot]; !booked {
				remaining = append(remaining, slot)
			}
		}
		services[i].Slots = remaining
	}

	return services, nil
}
