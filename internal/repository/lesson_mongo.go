package repository

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tutorly/lesson-booking/internal/models"
)

// MongoLessonRepository implements LessonRepository on the lesson collection
type MongoLessonRepository struct {
	coll *mongo.Collection
}

func (r *MongoLessonRepository) All(ctx context.Context) ([]models.Lesson, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoLessonRepository) Search(ctx context.Context, query string) ([]models.Lesson, error) {
	return r.find(ctx, BuildSearchFilter(query))
}

func (r *MongoLessonRepository) find(ctx context.Context, filter bson.M) ([]models.Lesson, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find lessons: %w", err)
	}

	lessons := make([]models.Lesson, 0)
	if err := cursor.All(ctx, &lessons); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}
	return lessons, nil
}

func (r *MongoLessonRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (*models.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("update lesson %s: %w", id.Hex(), err)
	}

	return &models.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *MongoLessonRepository) CountByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("count lessons: %w", err)
	}
	return count, nil
}

func (r *MongoLessonRepository) ReplaceAll(ctx context.Context, lessons []models.Lesson) (int, error) {
	if err := r.DeleteAll(ctx); err != nil {
		return 0, err
	}

	docs := make([]interface{}, 0, len(lessons))
	for _, lesson := range lessons {
		docs = append(docs, lesson)
	}

	result, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert lessons: %w", err)
	}
	return len(result.InsertedIDs), nil
}

func (r *MongoLessonRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete lessons: %w", err)
	}
	return nil
}

// BuildSearchFilter builds the lesson search filter for a non-empty query:
// case-insensitive substring match on topic and location, plus exact-equality
// alternatives on price and space when the query parses as a number. The query
// is escaped, so regex metacharacters match literally.
func BuildSearchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	alternatives := []bson.M{
		{"topic": pattern},
		{"location": pattern},
	}

	if n, err := strconv.ParseFloat(query, 64); err == nil {
		alternatives = append(alternatives, bson.M{"price": n}, bson.M{"space": n})
	}

	return bson.M{"$or": alternatives}
}
