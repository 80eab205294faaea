package contracts

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Upsert(ctx context.Context, email string, user *requests.UpsertUser) (*responses.UpdateResult, error)
	SetRole(ctx context.Context, email, role string) (*responses.UpdateResult, error)
}

type UserUsecase interface {
	UpsertUser(ctx context.Context, email string, request *requests.UpsertUser) (*responses.UpsertUser, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	PromoteToAdmin(ctx context.Context, email string) (*responses.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}
