package constvars

// Error messages for clients
const (
	ErrClientUnauthorized                  = "Unauthorized Access"
	ErrClientForbidden                     = "Forbidden Access"
	ErrClientForbiddenRole                 = "forbidden"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientResourceNotFound              = "the requested resource does not exist"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON        = "cannot parse JSON into struct or other data types"
	ErrDevValidationFailed       = "request body validation failed"
	ErrDevURLParamMissing        = "required URL parameter %s is missing"
	ErrDevAuthTokenMissing       = "authorization header is missing"
	ErrDevAuthTokenInvalid       = "token is invalid or already expired"
	ErrDevAuthSigningMethod      = "unexpected token signing method"
	ErrDevAuthGenerateToken      = "failed to generate access token"
	ErrDevAuthDecodedEmailLost   = "decoded email not found in request context"
	ErrDevRoleNotAdmin           = "requester has no admin role"
	ErrDevOwnershipMismatch      = "requested patient does not match token subject"
	ErrDevMissingRequestID       = "request id not found in context"
	ErrDevServerDeadlineExceeded = "server deadline exceeded on processing the request"

	ErrDevDBFailedToFindDocument     = "failed to find document(s)"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate cursor documents"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to ObjectID"
	ErrDevDBDocumentNotFound         = "no document matches the given filter"

	ErrDevPaymentGatewayCreateIntent = "payment processor failed to create the payment intent"
)
