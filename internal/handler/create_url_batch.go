package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// CreateURLBatch обрабатывает POST запрос для создания нескольких коротких URL (batch формат)
func (h *Handler) CreateURLBatch(w http.ResponseWriter, req *http.Request) {
	var requests []model.BatchShortenRequest
	if err := json.NewDecoder(req.Body).Decode(&requests); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "Batch is required")
		return
	}

	responses, err := h.usecase.CreateShortURLsBatch(req.Context(), requests)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, responses)
}
