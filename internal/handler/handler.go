package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/base62-shortener/internal/model"
	"github.com/avc-dev/base62-shortener/internal/usecase"
	"go.uber.org/zap"
)

const (
	msgInvalidURL     = "Invalid URL"
	msgInvalidBody    = "Invalid request body"
	msgNotFound       = "Shortened URL not found"
	msgInternalError  = "Internal server error"
	welcomeMessage    = "Welcome to the URL Shortener! Use /shorten to shorten URLs."
	contentTypeJSON   = "application/json"
	contentTypePlain  = "text/plain; charset=utf-8"
	headerContentType = "Content-Type"
)

// URLUsecase определяет операции, которые HTTP слой вызывает у usecase
type URLUsecase interface {
	CreateShortURLFromString(urlString string) (string, error)
	GetOriginalURL(code string) (string, error)
}

type Handler struct {
	usecase URLUsecase
	logger  *zap.Logger
}

func New(usecase URLUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// handleError отображает ошибки usecase на HTTP статусы
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, usecase.ErrInvalidURL):
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidURL})
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeJSON(w, http.StatusNotFound, model.ErrorResponse{Error: msgNotFound})
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{Error: msgInternalError})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
