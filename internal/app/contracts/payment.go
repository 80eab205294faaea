package contracts

import (
	"context"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/models"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) (string, error)
}

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.CreatePaymentIntent, error)
}

// PaymentGatewayService talks to the external card processor.
type PaymentGatewayService interface {
	CreateCardIntent(ctx context.Context, amountMinorUnits int64) (clientSecret string, err error)
}
