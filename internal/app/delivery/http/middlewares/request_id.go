package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/tusharpramanikbd/doctors-portal-server/internal/pkg/constvars"
)

// RequestID issues a correlation id for every request. Handlers log it and the
// error envelope echoes it so a client report can be matched to server logs.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(constvars.HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
