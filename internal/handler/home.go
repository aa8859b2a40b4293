package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// Home отдает приветственное сообщение
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(headerContentType, contentTypePlain)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(welcomeMessage)); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

// Ping проверка живости сервиса
func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(headerContentType, contentTypePlain)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
