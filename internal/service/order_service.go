package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/repository"
)

var (
	ErrInvalidName    = errors.New("name is required")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidPayload = errors.New("invalid order payload")
	ErrLessonNotFound = errors.New("one or more lessons not found")
)

// Optional leading +, then digits, spaces or hyphens, 7-15 characters.
var phoneRegex = regexp.MustCompile(`^\+?[0-9\s-]{7,15}$`)

// OrderService handles order business logic
type OrderService struct {
	lessons  repository.LessonRepository
	orders   repository.OrderRepository
	validate *validator.Validate
}

// NewOrderService creates a new order service
func NewOrderService(lessons repository.LessonRepository, orders repository.OrderRepository) *OrderService {
	v := validator.New()
	// Registration only fails for a nil func or empty tag.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	return &OrderService{
		lessons:  lessons,
		orders:   orders,
		validate: v,
	}
}

// CreateOrder validates the request and inserts a new order, returning its
// store-generated id. Rules are checked in declaration order and the first
// failure wins. Every referenced lesson must exist; duplicates in lessonIds
// are deduplicated before the existence count but stored as given. No
// capacity check or decrement happens here.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (primitive.ObjectID, error) {
	req.Name = strings.TrimSpace(req.Name)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].StructField() {
			case "Name":
				return primitive.NilObjectID, ErrInvalidName
			case "Phone":
				return primitive.NilObjectID, ErrInvalidPhone
			}
		}
		return primitive.NilObjectID, ErrInvalidPayload
	}

	ids := make([]primitive.ObjectID, 0, len(req.LessonIDs))
	seen := make(map[primitive.ObjectID]bool, len(req.LessonIDs))
	unique := make([]primitive.ObjectID, 0, len(req.LessonIDs))

	for _, raw := range req.LessonIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return primitive.NilObjectID, ErrLessonNotFound
		}
		ids = append(ids, id)

		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	count, err := s.lessons.CountByIDs(ctx, unique)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if count != int64(len(unique)) {
		return primitive.NilObjectID, ErrLessonNotFound
	}

	order := models.Order{
		Name:      req.Name,
		Phone:     req.Phone,
		LessonIDs: ids,
		Spaces:    req.Spaces,
		CreatedAt: time.Now().UTC(),
	}

	return s.orders.Insert(ctx, order)
}
