package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type ServiceController struct {
	Log            *zap.Logger
	ServiceUsecase contracts.ServiceUsecase
}

func NewServiceController(logger *zap.Logger, serviceUsecase contracts.ServiceUsecase) *ServiceController {
	return &ServiceController{
		Log:            logger,
		ServiceUsecase: serviceUsecase,
	}
}

func (ctrl *ServiceController) ListServices(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ServiceController.ListServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.ServiceUsecase.ListServices(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, services)
}

func (ctrl *ServiceController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	date := r.URL.Query().Get(constvars.URLQueryParamDate)
	ctrl.Log.Info("ServiceController.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, date),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	services, err := ctrl.ServiceUsecase.GetAvailability(ctx, date)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, services)
}
