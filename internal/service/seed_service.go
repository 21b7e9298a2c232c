package service

import (
	"context"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/repository"
)

// SeedService resets the catalog to the fixed default set
type SeedService struct {
	lessons repository.LessonRepository
	orders  repository.OrderRepository
}

// NewSeedService creates a new seed service
func NewSeedService(lessons repository.LessonRepository, orders repository.OrderRepository) *SeedService {
	return &SeedService{
		lessons: lessons,
		orders:  orders,
	}
}

// Seed wipes both collections and reinserts the default lesson catalog,
// returning the number of lessons inserted. Running it twice leaves exactly
// the catalog and no orders.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	if err := s.orders.DeleteAll(ctx); err != nil {
		return 0, err
	}
	return s.lessons.ReplaceAll(ctx, models.DefaultCatalog())
}
