package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		PaymentUsecase: paymentUsecase,
	}
}

func (ctrl *PaymentController) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PaymentController.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.CreatePaymentIntent)
	if err := json.NewDecoder(r.Body).Decode(reqPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(reqPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PaymentUsecase.CreatePaymentIntent(ctx, reqPayload)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
