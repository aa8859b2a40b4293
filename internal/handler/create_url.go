package handler

import (
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// maxPlainBodySize ограничивает размер тела text/plain запроса
const maxPlainBodySize = 1 << 20

// CreateURL обрабатывает POST / с URL в теле запроса (text/plain).
// Пробельные символы по краям тела (обычно завершающий перевод строки) отбрасываются.
func (h *Handler) CreateURL(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxPlainBodySize))
	if err != nil {
		h.logger.Warn("failed to read request body", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shortURL, err := h.usecase.CreateShortURLFromString(strings.TrimSpace(string(body)))
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set(headerContentType, contentTypePlain)
	w.WriteHeader(http.StatusCreated)

	if _, err := w.Write([]byte(shortURL)); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}
