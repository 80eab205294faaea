package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
)

// RequireAdmin gates a route on the stored role of the authenticated caller.
// An email with no user record counts as not-admin and gets the same 403.
func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		email, ok := r.Context().Value(constvars.CONTEXT_DECODED_EMAIL_KEY).(string)
		if !ok || email == "" {
			utils.BuildErrorResponse(m.Log, w, requestID, exceptions.ErrMissingDecodedEmail(nil))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		isAdmin, err := m.UserUsecase.IsAdmin(ctx, email)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, requestID, err)
			return
		}
		if !isAdmin {
			utils.BuildErrorResponse(m.Log, w, requestID, exceptions.ErrNotAdmin(nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}
