package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRequest represents an incoming order request.
// Fields are validated in declaration order; the first failing rule decides
// the error returned to the client.
type OrderRequest struct {
	Name      string   `json:"name" validate:"required,min=2"`
	Phone     string   `json:"phone" validate:"required,phone"`
	LessonIDs []string `json:"lessonIds" validate:"required,min=1,dive,required"`
	Spaces    int      `json:"spaces" validate:"required,gt=0"`
}

// Order represents a confirmed order as persisted in the store.
type Order struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Name      string               `bson:"name" json:"name"`
	Phone     string               `bson:"phone" json:"phone"`
	LessonIDs []primitive.ObjectID `bson:"lessonIds" json:"lessonIds"`
	Spaces    int                  `bson:"spaces" json:"spaces"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}
