package doctors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Doctor), args.Error(1)
}

func (m *MockDoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (string, error) {
	args := m.Called(ctx, doctor)
	return args.String(0), args.Error(1)
}

func (m *MockDoctorRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func TestDoctorUsecase_AddDoctor(t *testing.T) {
	ctx := context.Background()

	doctorRepo := new(MockDoctorRepository)
	usecase := NewDoctorUsecase(doctorRepo)

	doctorRepo.On("Insert", ctx, mock.MatchedBy(func(d *models.Doctor) bool {
		return d.Name == "Dr. Smith" && d.Email == "smith@example.com"
	})).Return("6283f1a2b4c5d6e7f8a9b0c1", nil)

	result, err := usecase.AddDoctor(ctx, &requests.CreateDoctor{
		Name:      "Dr. Smith",
		Email:     "smith@example.com",
		Specialty: "Orthodontics",
	})

	assert.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, "6283f1a2b4c5d6e7f8a9b0c1", result.InsertedID)
}

func TestDoctorUsecase_AddDoctor_KeepsExtraFields(t *testing.T) {
	ctx := context.Background()

	doctorRepo := new(MockDoctorRepository)
	usecase := NewDoctorUsecase(doctorRepo)

	doctorRepo.On("Insert", ctx, mock.MatchedBy(func(d *models.Doctor) bool {
		return d.Extra["education"] == "BDS, FCPS"
	})).Return("6283f1a2b4c5d6e7f8a9b0c1", nil)

	_, err := usecase.AddDoctor(ctx, &requests.CreateDoctor{
		Name:  "Dr. Smith",
		Email: "smith@example.com",
		Extra: map[string]interface{}{"education": "BDS, FCPS"},
	})

	assert.NoError(t, err)
	doctorRepo.AssertExpectations(t)
}

func TestDoctorUsecase_RemoveDoctor(t *testing.T) {
	ctx := context.Background()

	doctorRepo := new(MockDoctorRepository)
	usecase := NewDoctorUsecase(doctorRepo)

	doctorRepo.On("DeleteByEmail", ctx, "smith@example.com").Return(int64(1), nil)

	result, err := usecase.RemoveDoctor(ctx, "smith@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)
}

func TestDoctorUsecase_RemoveDoctor_Unknown(t *testing.T) {
	ctx := context.Background()

	doctorRepo := new(MockDoctorRepository)
	usecase := NewDoctorUsecase(doctorRepo)

	// Deleting an absent roster entry still acknowledges with a zero count.
	doctorRepo.On("DeleteByEmail", ctx, "ghost@example.com").Return(int64(0), nil)

	result, err := usecase.RemoveDoctor(ctx, "ghost@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.DeletedCount)
}
