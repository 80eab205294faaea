package middlewares

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes a plain access log line per request.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)

			log.Printf("%s | %s ==> %s | %s", r.RemoteAddr, r.Method, r.RequestURI, duration)
		})
	}
}
