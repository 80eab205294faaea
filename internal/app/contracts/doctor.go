package contracts

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	Insert(ctx context.Context, doctor *models.Doctor) (string, error)
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

type DoctorUsecase interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	AddDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error)
	RemoveDoctor(ctx context.Context, email string) (*responses.DeleteResult, error)
}
