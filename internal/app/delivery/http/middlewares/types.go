package middlewares

import (
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(log *zap.Logger, userUsecase contracts.UserUsecase, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            log,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}
