package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/app/contracts"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/dto/requests"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DoctorController.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.ListDoctors(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, doctors)
}

func (ctrl *DoctorController) AddDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DoctorController.AddDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var rawPayload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&rawPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}
	reqPayload, err := buildCreateDoctorRequest(rawPayload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(reqPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.AddDoctor(ctx, reqPayload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func buildCreateDoctorRequest(rawPayload map[string]interface{}) (*requests.CreateDoctor, error) {
	rawJSON, err := json.Marshal(rawPayload)
	if err != nil {
		return nil, err
	}
	reqPayload := new(requests.CreateDoctor)
	if err := json.Unmarshal(rawJSON, reqPayload); err != nil {
		return nil, err
	}

	extra := make(map[string]interface{})
	for key, value := range rawPayload {
		switch key {
		case "name", "email", "specialty", "img":
		default:
			extra[key] = value
		}
	}
	reqPayload.Extra = extra
	return reqPayload, nil
}

func (ctrl *DoctorController) RemoveDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	email := chi.URLParam(r, constvars.URLParamDoctorEmail)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrURLParamMissing(nil, constvars.URLParamDoctorEmail))
		return
	}
	ctrl.Log.Info("DoctorController.RemoveDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.RemoveDoctor(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
