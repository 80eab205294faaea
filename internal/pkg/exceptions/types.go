package exceptions

import (
	"fmt"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
)

var (
	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientForbidden, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrNotAdmin = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientForbiddenRole, constvars.ErrDevRoleNotAdmin)
	}
	ErrNotBookingOwner = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientForbidden, constvars.ErrDevOwnershipMismatch)
	}
	ErrMissingDecodedEmail = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientUnauthorized, constvars.ErrDevAuthDecodedEmailLost)
	}

	// Request parsing and validation
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamMissing = func(err error, paramName string) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamMissing, paramName))
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}
	ErrDocumentNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevDBDocumentNotFound)
	}

	// Payment gateway
	ErrPaymentIntentCreate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPaymentGatewayCreateIntent)
	}
)
