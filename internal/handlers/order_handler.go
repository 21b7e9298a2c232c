package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOrder handles POST /orders
// Validation rules are applied in order and the first failing rule decides
// the 400 message. On success the new store-generated id is returned with 201.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode order request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidName):
			writeError(w, http.StatusBadRequest, "Name is required")
		case errors.Is(err, service.ErrInvalidPhone):
			writeError(w, http.StatusBadRequest, "Invalid phone number")
		case errors.Is(err, service.ErrInvalidPayload):
			writeError(w, http.StatusBadRequest, "Invalid order payload")
		case errors.Is(err, service.ErrLessonNotFound):
			writeError(w, http.StatusBadRequest, "One or more lessons not found")
		default:
			h.logger.Error("failed to create order", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"_id": id.Hex()})
	h.logger.Info("order created", "order_id", id.Hex())
}
