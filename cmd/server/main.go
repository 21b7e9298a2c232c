package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/tutorly/lesson-booking/internal/config"
	"github.com/tutorly/lesson-booking/internal/handlers"
	"github.com/tutorly/lesson-booking/internal/middleware"
	"github.com/tutorly/lesson-booking/internal/repository"
	"github.com/tutorly/lesson-booking/internal/service"
	"github.com/tutorly/lesson-booking/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using system environment variables")
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting lesson booking api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"db_name", cfg.Mongo.Database,
		"log_level", cfg.LogLevel,
	)
	if cfg.UsingDefaultURI() {
		log.Warn("MONGODB_URI not set, using local placeholder; do not use in production")
	}

	// Build the store once at startup; it does not dial until the first
	// operation, so a down database fails per-request, not at boot.
	store, err := repository.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Error("failed to build mongodb client", "error", err)
		os.Exit(1)
	}

	lessonRepo := store.Lessons()
	orderRepo := store.Orders()

	// Initialize services
	lessonService := service.NewLessonService(lessonRepo)
	orderService := service.NewOrderService(lessonRepo, orderRepo)
	seedService := service.NewSeedService(lessonRepo, orderRepo)

	// Initialize handlers
	lessonHandler := handlers.NewLessonHandler(lessonService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	seedHandler := handlers.NewSeedHandler(seedService, log)
	imageHandler := handlers.NewImageHandler(cfg.Images.Dir, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)

	// CORS is deliberately permissive: the frontend is served elsewhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.Health)
	r.Post("/seed", seedHandler.Seed)

	r.Get("/lessons", lessonHandler.ListLessons)
	r.Put("/lessons/{id}", lessonHandler.UpdateLesson)
	r.Get("/search", lessonHandler.SearchLessons)

	r.Post("/orders", orderHandler.CreateOrder)

	// JSON-aware single-file route, plus a plain static mount for direct links
	r.Get("/images/{file}", imageHandler.ServeImage)
	r.Handle("/images/*", imageHandler.FileServer())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not Found"}`))
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := store.Close(ctx); err != nil {
		log.Error("failed to close store", "error", err)
	}

	log.Info("server stopped gracefully")
}
