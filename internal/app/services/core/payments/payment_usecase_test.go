package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
)

type MockPaymentGatewayService struct {
	mock.Mock
}

func (m *MockPaymentGatewayService) CreateCardIntent(ctx context.Context, amountMinorUnits int64) (string, error) {
	args := m.Called(ctx, amountMinorUnits)
	return args.String(0), args.Error(1)
}

func TestPaymentUsecase_CreatePaymentIntent_ConvertsToMinorUnits(t *testing.T) {
	ctx := context.Background()

	gateway := new(MockPaymentGatewayService)
	usecase := NewPaymentUsecase(gateway)

	gateway.On("CreateCardIntent", ctx, int64(3000)).Return("pi_3LHtest_secret", nil)

	response, err := usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 30})

	assert.NoError(t, err)
	assert.Equal(t, "pi_3LHtest_secret", response.ClientSecret)
	gateway.AssertExpectations(t)
}

func TestPaymentUsecase_CreatePaymentIntent_RoundsCents(t *testing.T) {
	ctx := context.Background()

	gateway := new(MockPaymentGatewayService)
	usecase := NewPaymentUsecase(gateway)

	// 19.99 in float64 is slightly below 19.99; truncation would undercharge
	// by a cent.
	gateway.On("CreateCardIntent", ctx, int64(1999)).Return("pi_3LHtest_secret", nil)

	_, err := usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 19.99})

	assert.NoError(t, err)
	gateway.AssertExpectations(t)
}

func TestPaymentUsecase_CreatePaymentIntent_GatewayError(t *testing.T) {
	ctx := context.Background()

	gateway := new(MockPaymentGatewayService)
	usecase := NewPaymentUsecase(gateway)

	gateway.On("CreateCardIntent", ctx, int64(3000)).
		Return("", exceptions.ErrPaymentIntentCreate(nil))

	response, err := usecase.CreatePaymentIntent(ctx, &requests.CreatePaymentIntent{Price: 30})

	assert.Nil(t, response)
	assert.Error(t, err)
}
