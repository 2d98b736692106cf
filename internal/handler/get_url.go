package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL обрабатывает переход по короткой ссылке: возвращает редирект
// на оригинальный URL и засчитывает переход
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	originalURL, err := h.usecase.GetOriginalURL(req.Context(), code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, req, originalURL, http.StatusFound)
}
