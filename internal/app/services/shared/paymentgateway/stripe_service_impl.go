package paymentgateway

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/config"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
)

type stripeService struct {
	Client *client.API
}

func NewStripeService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	stripeClient := &client.API{}
	stripeClient.Init(internalConfig.Stripe.SecretKey, nil)
	return &stripeService{
		Client: stripeClient,
	}
}

func (s *stripeService) CreateCardIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(constvars.PaymentCurrencyUSD),
		PaymentMethodTypes: stripe.StringSlice([]string{constvars.PaymentMethodCard}),
	}

	intent, err := s.Client.PaymentIntents.New(params)
	if err != nil {
		return "", exceptions.ErrPaymentIntentCreate(err)
	}
	return intent.ClientSecret, nil
}
