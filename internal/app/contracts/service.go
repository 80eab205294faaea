package contracts

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]models.Service, error)
	FindAllNames(ctx context.Context) ([]responses.ServiceName, error)
}

type ServiceUsecase interface {
	ListServices(ctx context.Context) ([]responses.ServiceName, error)
	GetAvailability(ctx context.Context, date string) ([]models.Service, error)
}
