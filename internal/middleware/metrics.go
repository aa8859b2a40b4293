package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const unmatchedRoute = "UNMATCHED"

// RequestRecorder принимает измерения HTTP запросов
type RequestRecorder interface {
	RequestStarted()
	RequestFinished(method, route string, status int, duration time.Duration)
}

// Metrics учитывает число, длительность и статусы запросов.
// В метку route попадает шаблон маршрута chi, а не фактический путь.
func Metrics(recorder RequestRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder.RequestStarted()

			wrapped := newResponseWriter(w)
			next.ServeHTTP(wrapped, r)

			recorder.RequestFinished(r.Method, routePattern(r), wrapped.statusCode, time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}
