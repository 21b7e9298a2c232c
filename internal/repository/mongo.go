package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	lessonCollection = "lesson"
	orderCollection  = "order"
)

// Store holds the single long-lived Mongo client and database handle.
// It is constructed once at startup and injected into the repositories;
// the driver manages its own connection pool underneath.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect builds the client for the given connection string and database name.
// It does not ping: an unreachable store surfaces per-operation, so the server
// can still start and serve /health while the database is down.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Lessons returns the lesson repository backed by this store.
func (s *Store) Lessons() *MongoLessonRepository {
	return &MongoLessonRepository{coll: s.db.Collection(lessonCollection)}
}

// Orders returns the order repository backed by this store.
func (s *Store) Orders() *MongoOrderRepository {
	return &MongoOrderRepository{coll: s.db.Collection(orderCollection)}
}
