package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// CreateURLJSON обрабатывает POST запрос для создания короткого URL (JSON формат)
func (h *Handler) CreateURLJSON(w http.ResponseWriter, req *http.Request) {
	var request model.ShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		// Нечитаемое тело равнозначно запросу без URL
		h.writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	response, err := h.usecase.CreateShortURL(req.Context(), request.URL)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response)
}
