package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tutorly/lesson-booking/internal/models"
)

// MongoOrderRepository implements OrderRepository on the order collection
type MongoOrderRepository struct {
	coll *mongo.Collection
}

func (r *MongoOrderRepository) Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	result, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert order: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *MongoOrderRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete orders: %w", err)
	}
	return nil
}
