package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tutorly/lesson-booking/internal/models"
	"github.com/tutorly/lesson-booking/internal/repository"
)

// Standalone reseed script: wipes the lesson collection and reinserts the
// default catalog. Orders are left untouched; use the /seed endpoint for a
// full reset.
func main() {
	_ = godotenv.Load()

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		fmt.Fprintln(os.Stderr, "Please set MONGODB_URI environment variable")
		os.Exit(1)
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "cst3144"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := repository.Connect(ctx, uri, dbName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect: %v\n", err)
		os.Exit(1)
	}

	count, err := store.Lessons().ReplaceAll(ctx, models.DefaultCatalog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to seed lessons: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Inserted %d lessons\n", count)

	if err := store.Close(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close connection: %v\n", err)
		os.Exit(1)
	}
}
