package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tutorly/lesson-booking/internal/service"
)

// SeedHandler exposes the administrative reseed operation
type SeedHandler struct {
	service *service.SeedService
	logger  *slog.Logger
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(service *service.SeedService, logger *slog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger,
	}
}

// Seed handles POST /seed
// Wipes lessons and orders, then reinserts the fixed catalog.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Seed(r.Context())
	if err != nil {
		h.logger.Error("failed to seed database", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to seed database")
		return
	}

	h.logger.Info("database seeded", "lessons", count)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Database seeded successfully",
		"count":   count,
	})
}
