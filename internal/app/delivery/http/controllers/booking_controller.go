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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
	}
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	reqPayload := new(requests.CreateBooking)
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

	result, err := ctrl.BookingUsecase.CreateBooking(ctx, reqPayload)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	ctrl.Log.Info("BookingController.CreateBooking finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTreatmentKey, reqPayload.Treatment),
		zap.Bool("created", result.Success),
	)
	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func (ctrl *BookingController) ListBookingsByPatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	decodedEmail, ok := r.Context().Value(constvars.CONTEXT_DECODED_EMAIL_KEY).(string)
	if !ok || decodedEmail == "" {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrMissingDecodedEmail(nil))
		return
	}

	patient := r.URL.Query().Get(constvars.URLQueryParamPatient)
	ctrl.Log.Info("BookingController.ListBookingsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, patient),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bookings, err := ctrl.BookingUsecase.ListBookingsByPatient(ctx, decodedEmail, patient)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, bookings)
}

func (ctrl *BookingController) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	ctrl.Log.Info("BookingController.GetBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	booking, err := ctrl.BookingUsecase.GetBookingByID(ctx, bookingID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, booking)
}

func (ctrl *BookingController) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	bookingID := chi.URLParam(r, constvars.URLParamBookingID)
	ctrl.Log.Info("BookingController.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
	)

	// Decode twice: once into the typed request for validation, once into a
	// raw map so the payment log keeps the payload as submitted.
	var rawPayload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&rawPayload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, exceptions.ErrCannotParseJSON(err))
		return
	}
	reqPayload, err := buildConfirmPaymentRequest(rawPayload)
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

	result, err := ctrl.BookingUsecase.ConfirmPayment(ctx, bookingID, reqPayload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, requestID, err)
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, result)
}

func buildConfirmPaymentRequest(rawPayload map[string]interface{}) (*requests.ConfirmPayment, error) {
	rawJSON, err := json.Marshal(rawPayload)
	if err != nil {
		return nil, err
	}
	reqPayload := new(requests.ConfirmPayment)
	if err := json.Unmarshal(rawJSON, reqPayload); err != nil {
		return nil, err
	}

	extra := make(map[string]interface{})
	for key, value := range rawPayload {
		switch key {
		case "transactionId", "bookingId", "patient", "price":
		default:
			extra[key] = value
		}
	}
	reqPayload.Extra = extra
	return reqPayload, nil
}
