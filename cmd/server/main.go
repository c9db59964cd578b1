package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/roomstack/api/internal/config"
	"github.com/roomstack/api/internal/database"
	"github.com/roomstack/api/internal/handler"
	"github.com/roomstack/api/internal/middleware"
	"github.com/roomstack/api/internal/repository"
	"github.com/roomstack/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewPostgres(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)
	roommateRepo := repository.NewRoommateRepository(db)

	// Initialize services
	roomService := service.NewRoomService(roomRepo)
	roommateService := service.NewRoommateService(roommateRepo, roomRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	roomHandler := handler.NewRoomHandler(roomService)
	roommateHandler := handler.NewRoommateHandler(roommateService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Room endpoints
	mux.HandleFunc("GET /v1/rooms", roomHandler.List)
	mux.HandleFunc("POST /v1/rooms", roomHandler.Create)
	mux.HandleFunc("GET /v1/rooms/{roomId}", roomHandler.Get)
	mux.HandleFunc("PUT /v1/rooms/{roomId}", roomHandler.Update)
	mux.HandleFunc("DELETE /v1/rooms/{roomId}", roomHandler.Delete)

	// Roommate endpoints
	mux.HandleFunc("GET /v1/rooms/{roomId}/roommates", roommateHandler.ListByRoom)
	mux.HandleFunc("POST /v1/roommates", roommateHandler.Create)
	mux.HandleFunc("GET /v1/roommates/{roommateId}", roommateHandler.Get)
	mux.HandleFunc("DELETE /v1/roommates/{roommateId}", roommateHandler.Delete)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
