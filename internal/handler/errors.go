package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/usecase"
)

// handleError преобразует ошибки бизнес-логики в HTTP ответы.
// Непредвиденные ошибки логируются и не раскрываются клиенту
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		h.writeError(w, http.StatusBadRequest, "URL is required")
	case errors.Is(err, usecase.ErrInvalidURL):
		h.writeError(w, http.StatusBadRequest, "Invalid URL")
	case errors.Is(err, usecase.ErrEmptyBatch):
		h.writeError(w, http.StatusBadRequest, "Batch is required")
	case errors.Is(err, usecase.ErrBatchTooLarge):
		h.writeError(w, http.StatusBadRequest, "Batch is too large")
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeError(w, http.StatusNotFound, "URL not found")
	default:
		h.logger.Error("request failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// writeJSON сериализует payload в тело ответа с заданным статусом
func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, model.ErrorResponse{Error: message})
}
