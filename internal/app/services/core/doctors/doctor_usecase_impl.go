package doctors

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
}

func NewDoctorUsecase(doctorMongoRepository contracts.DoctorRepository) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) AddDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error) {
	doctor := &models.Doctor{
		Name:      request.Name,
		Email:     request.Email,
		Specialty: request.Specialty,
		Image:     request.Image,
		Extra:     request.Extra,
	}
	insertedID, err := uc.DoctorRepository.Insert(ctx, doctor)
	if err != nil {
		return nil, err
	}
	return &responses.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (uc *doctorUsecase) RemoveDoctor(ctx context.Context, email string) (*responses.DeleteResult, error) {
	deletedCount, err := uc.DoctorRepository.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &responses.DeleteResult{Acknowledged: true, DeletedCount: deletedCount}, nil
}
