package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDKey is the key used to store request ID in context
type RequestIDKey string

const (
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey RequestIDKey = "request_id"

	// RequestIDHeader заголовок, в котором передается идентификатор запроса
	RequestIDHeader = "X-Request-ID"

	maxRequestIDLength = 128
)

// RequestID берет идентификатор запроса из заголовка X-Request-ID или генерирует новый UUID,
// кладет его в контекст и возвращает клиенту в том же заголовке
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDContextKey).(string)
	return requestID, ok
}
