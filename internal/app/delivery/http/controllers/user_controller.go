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

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) UpsertUser(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	email := chi.URLParam(r, constvars.URLParamUserEmail)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrURLParamMissing(nil, constvars.URLParamUserEmail))
		return
	}
	ctrl.Log.Info("UserController.UpsertUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	// Decode into a raw map as well, so fields the struct does not model
	// still make it into the stored user.
	var rawPayload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&rawPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}
	reqPayload, err := buildUpsertUserRequest(rawPayload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.UpsertUser(ctx, email, reqPayload)
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

func buildUpsertUserRequest(rawPayload map[string]interface{}) (*requests.UpsertUser, error) {
	rawJSON, err := json.Marshal(rawPayload)
	if err != nil {
		return nil, err
	}
	reqPayload := new(requests.UpsertUser)
	if err := json.Unmarshal(rawJSON, reqPayload); err != nil {
		return nil, err
	}

	extra := make(map[string]interface{})
	for key, value := range rawPayload {
		switch key {
		case "email", "name":
		default:
			extra[key] = value
		}
	}
	reqPayload.Extra = extra
	return reqPayload, nil
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UserController.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, users)
}

func (ctrl *UserController) PromoteToAdmin(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	email := chi.URLParam(r, constvars.URLParamUserEmail)
	if email == "" {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrURLParamMissing(nil, constvars.URLParamUserEmail))
		return
	}
	ctrl.Log.Info("UserController.PromoteToAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, email),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.PromoteToAdmin(ctx, email)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}
