package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/exceptions"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/utils"
)

// Authenticate verifies the bearer token and attaches the decoded email to the
// request context. Both failure paths stop the chain; no handler runs after a
// 401 or 403 has been written.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, requestID, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, constvars.BearerPrefix)
		email, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, requestID, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_DECODED_EMAIL_KEY, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
