package handler

import (
	"encoding/json"
	"net/http"

	"github.com/avc-dev/base62-shortener/internal/model"
	"go.uber.org/zap"
)

// CreateURLJSON обрабатывает POST /shorten с телом {"long_url": "..."}
// Повторный запрос с тем же URL возвращает тот же короткий URL и тот же статус 200
func (h *Handler) CreateURLJSON(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidBody})
		return
	}

	longURL, ok := request.URL()
	if !ok {
		h.writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: msgInvalidURL})
		return
	}

	shortURL, err := h.usecase.CreateShortURLFromString(longURL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, model.ShortenResponse{ShortURL: shortURL})
}
