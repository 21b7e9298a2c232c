package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lesson represents a bookable tutoring lesson.
// The store itself is schema-less; this struct is the boundary contract.
type Lesson struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Topic    string             `bson:"topic" json:"topic"`
	Location string             `bson:"location" json:"location"`
	Price    float64            `bson:"price" json:"price"`
	Space    int                `bson:"space" json:"space"`
	Image    string             `bson:"image" json:"image"`
}

// UpdateResult reports the outcome of a partial lesson update.
// matchedCount is 0 when the id does not exist; modifiedCount is 0 when the
// update changed nothing (the two cases are not distinguished).
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}
