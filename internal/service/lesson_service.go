package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/repository"
)

var (
	ErrInvalidLessonID = errors.New("invalid lesson id")
	ErrInvalidUpdate   = errors.New("invalid update payload")
)

// LessonService handles business logic for lessons
type LessonService struct {
	repo repository.LessonRepository
}

// NewLessonService creates a new lesson service
func NewLessonService(repo repository.LessonRepository) *LessonService {
	return &LessonService{
		repo: repo,
	}
}

// ListLessons returns every lesson
func (s *LessonService) ListLessons(ctx context.Context) ([]models.Lesson, error) {
	return s.repo.All(ctx)
}

// SearchLessons returns lessons matching the free-text query.
// An empty or whitespace-only query behaves exactly like ListLessons.
func (s *LessonService) SearchLessons(ctx context.Context, query string) ([]models.Lesson, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.All(ctx)
	}
	return s.repo.Search(ctx, query)
}

// UpdateLesson merges the given fields into the lesson identified by idHex.
// The id is immutable and store-assigned; the fields map is applied as a
// partial update, never a replace.
func (s *LessonService) UpdateLesson(ctx context.Context, idHex string, fields map[string]interface{}) (*models.UpdateResult, error) {
	if fields == nil {
		return nil, ErrInvalidUpdate
	}

	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidLessonID
	}

	return s.repo.UpdateFields(ctx, id, fields)
}
