package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "dormhub-backend/internal/api/http"
	"dormhub-backend/internal/config"
	"dormhub-backend/internal/logger"
	"dormhub-backend/internal/repository/postgres"
	"dormhub-backend/internal/security"
	"dormhub-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real env vars still win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting DormHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewSendgridEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	assignmentSvc := service.NewAssignmentService(
		store.AssignmentRepository,
		store.RoomRepository,
		store.BuildingRepository,
		store.UserRepository,
		emailSvc,
	)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.AssignmentRepository,
		store.UserRepository,
		emailSvc,
	)
	roomSvc := service.NewRoomService(store.RoomRepository, store.BuildingRepository)
	buildingSvc := service.NewBuildingService(store.BuildingRepository)
	userSvc := service.NewUserService(store.UserRepository)
	deletionSvc := service.NewDeletionService(
		store.BuildingRepository,
		store.RoomRepository,
		store.AssignmentRepository,
		store.PaymentRepository,
		store.UserRepository,
	)

	// Set up HTTP router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		TokenManager:  tokenManager,
		AssignmentSvc: assignmentSvc,
		PaymentSvc:    paymentSvc,
		RoomSvc:       roomSvc,
		BuildingSvc:   buildingSvc,
		UserSvc:       userSvc,
		DeletionSvc:   deletionSvc,
	})

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down cleanly", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
