package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tutorly/lesson-booking/internal/models"
)

// LessonRepository defines the interface for lesson data access
type LessonRepository interface {
	// All returns every lesson document.
	All(ctx context.Context) ([]models.Lesson, error)
	// Search returns lessons matching the free-text query: case-insensitive
	// substring on topic/location, exact equality on price/space for numeric
	// queries.
	Search(ctx context.Context, query string) ([]models.Lesson, error)
	// UpdateFields merges the given fields into the lesson with the given id.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateResult, error)
	// CountByIDs returns how many of the given ids resolve to existing lessons.
	CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	// ReplaceAll wipes the collection and inserts the given lessons, returning
	// the number inserted.
	ReplaceAll(ctx context.Context, lessons []models.Lesson) (int, error)
	// DeleteAll removes every lesson document.
	DeleteAll(ctx context.Context) error
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	// Insert stores a new order and returns its store-generated id.
	Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	// DeleteAll removes every order document.
	DeleteAll(ctx context.Context) error
}
