package users

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpdateResult, error) {
	args := m.Called(ctx, email, request)
	if result := args.Get(0); result != nil {
		return result.(*responses.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) SetRole(ctx context.Context, email, role string) (*responses.UpdateResult, error) {
	args := m.Called(ctx, email, role)
	if result := args.Get(0); result != nil {
		return result.(*responses.UpdateResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestInternalConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 24
	return cfg
}

func TestUserUsecase_UpsertUser_ReturnsDecodableToken(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	usecase := NewUserUsecase(userRepo, newTestInternalConfig())

	request := &requests.UpsertUser{Name: "Jane Doe", Email: "jane@example.com"}
	userRepo.On("Upsert", ctx, "jane@example.com", request).
		Return(&responses.UpdateResult{Acknowledged: true, MatchedCount: 0, UpsertedCount: 1, UpsertedID: "6283f1a2b4c5d6e7f8a9b0c1"}, nil)

	response, err := usecase.UpsertUser(ctx, "jane@example.com", request)

	assert.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, int64(1), response.Result.UpsertedCount)

	token, err := jwt.Parse(response.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "jane@example.com", claims["email"])

	exp := time.Unix(int64(claims["exp"].(float64)), 0)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)
}

func TestUserUsecase_IsAdmin(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	usecase := NewUserUsecase(userRepo, newTestInternalConfig())

	userRepo.On("FindByEmail", ctx, "admin@example.com").
		Return(&models.User{Email: "admin@example.com", Role: constvars.RoleAdmin}, nil)
	userRepo.On("FindByEmail", ctx, "jane@example.com").
		Return(&models.User{Email: "jane@example.com"}, nil)

	isAdmin, err := usecase.IsAdmin(ctx, "admin@example.com")
	assert.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = usecase.IsAdmin(ctx, "jane@example.com")
	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUserUsecase_IsAdmin_UnknownUser(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	usecase := NewUserUsecase(userRepo, newTestInternalConfig())

	// An email with no stored user is simply not an admin; no error.
	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, nil)

	isAdmin, err := usecase.IsAdmin(ctx, "ghost@example.com")

	assert.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestUserUsecase_PromoteToAdmin(t *testing.T) {
	ctx := context.Background()

	userRepo := new(MockUserRepository)
	usecase := NewUserUsecase(userRepo, newTestInternalConfig())

	userRepo.On("SetRole", ctx, "jane@example.com", constvars.RoleAdmin).
		Return(&responses.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)

	result, err := usecase.PromoteToAdmin(ctx, "jane@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	userRepo.AssertExpectations(t)
}
