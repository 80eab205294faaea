package payments

import (
	"context"
	"math"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/responses"
)

type paymentUsecase struct {
	PaymentGateway contracts.PaymentGatewayService
}

func NewPaymentUsecase(paymentGateway contracts.PaymentGatewayService) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentGateway: paymentGateway,
	}
}

// CreatePaymentIntent converts the price into the processor's minor unit
// (cents) and returns the secret the client needs to complete the charge.
// Rounded, not truncated: 19.99 is 1999 cents, not 1998.
func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.CreatePaymentIntent, error) {
	amount := int64(math.Round(request.Price * 100))

	clientSecret, err := uc.PaymentGateway.CreateCardIntent(ctx, amount)
	if err != nil {
		return nil, err
	}

	return &responses.CreatePaymentIntent{ClientSecret: clientSecret}, nil
}
