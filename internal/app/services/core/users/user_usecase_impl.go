package users

import (
	"context"
	"time"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		InternalConfig: internalConfig,
	}
}

// UpsertUser saves the user under the email from the URL and hands back a
// fresh identity token alongside the storage result, so the client can log in
// right after its social-auth callback.
func (uc *userUsecase) UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error) {
	result, err := uc.UserRepository.Upsert(ctx, email, request)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	accessToken, err := utils.GenerateJWT(email, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.UpsertUser{
		Result:      result,
		AccessToken: accessToken,
	}, nil
}

func (uc *userUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.UserRepository.FindAll(ctx)
}

func (uc *userUsecase) PromoteToAdmin(ctx context.Context, email string) (*responses.UpdateResult, error) {
	return uc.UserRepository.SetRole(ctx, email, constvars.RoleAdmin)
}

// IsAdmin treats an unknown email as not-admin instead of failing.
func (uc *userUsecase) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	return user.Role == constvars.RoleAdmin, nil
}
