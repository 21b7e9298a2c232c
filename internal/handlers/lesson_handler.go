package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tutorly/lesson-booking/internal/service"
)

// LessonHandler handles lesson-related HTTP requests
type LessonHandler struct {
	service *service.LessonService
	logger  *slog.Logger
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(service *service.LessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{
		service: service,
		logger:  logger,
	}
}

// ListLessons handles GET /lessons
// Returns every lesson as a JSON array, no filtering or pagination.
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := h.service.ListLessons(r.Context())
	if err != nil {
		h.logger.Error("failed to list lessons", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal Server Error",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, lessons)
}

// SearchLessons handles GET /search?q=
// An empty query returns the same set as ListLessons.
func (h *LessonHandler) SearchLessons(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	lessons, err := h.service.SearchLessons(r.Context(), query)
	if err != nil {
		h.logger.Error("failed to search lessons", "query", query, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, lessons)
}

// UpdateLesson handles PUT /lessons/{id}
// The body must be a JSON object; every key present is merged into the lesson.
// The response reports how many documents matched and were modified (0/0 for
// an unknown id).
func (h *LessonHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		h.logger.Warn("invalid lesson update body", "id", idHex, "error", err)
		writeError(w, http.StatusBadRequest, "Invalid update payload")
		return
	}

	result, err := h.service.UpdateLesson(r.Context(), idHex, fields)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidUpdate):
			writeError(w, http.StatusBadRequest, "Invalid update payload")
		case errors.Is(err, service.ErrInvalidLessonID):
			writeError(w, http.StatusBadRequest, "Invalid lesson id")
		default:
			h.logger.Error("failed to update lesson", "id", idHex, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
