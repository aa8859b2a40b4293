package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет с короткого кода на оригинальный URL.
// Для статических маршрутов, совпадающих с кодом (например /shorten), код берется из пути.
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "id")
	if code == "" {
		code = strings.TrimPrefix(req.URL.Path, "/")
	}

	originalURL, err := h.usecase.GetOriginalURL(code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}
