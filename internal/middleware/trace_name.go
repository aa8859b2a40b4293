package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// TraceName переименовывает текущий span в "METHOD /route/pattern" после маршрутизации
func TraceName(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)

		span := trace.SpanFromContext(r.Context())
		if !span.IsRecording() {
			return
		}
		span.SetName(r.Method + " " + routePattern(r))
	})
}
