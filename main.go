package main

import (
	"log"

	api "imf-gadget-backend/cmd/api"
	authdomain "imf-gadget-backend/internal/auth/domain"
	authRepo "imf-gadget-backend/internal/auth/repository"
	authUsecase "imf-gadget-backend/internal/auth/usecase"
	gadgetdomain "imf-gadget-backend/internal/gadget/domain"
	gadgetRepo "imf-gadget-backend/internal/gadget/repository"
	"imf-gadget-backend/internal/gadget/scheduler"
	gadgetUsecase "imf-gadget-backend/internal/gadget/usecase"
	"imf-gadget-backend/pkg/config"
	"imf-gadget-backend/pkg/database"
	"imf-gadget-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(!cfg.IsProduction())
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zapLogger.Sync()
	sugar := zapLogger.Sugar()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		sugar.Fatalw("failed to connect to database", "error", err)
	}

	// Create tables idempotently on startup
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.BlacklistedToken{}, &gadgetdomain.Gadget{}); err != nil {
		sugar.Fatalw("failed to migrate database", "error", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewTokenRepository(db)
	gadgetRepository := gadgetRepo.NewGormGadgetRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenRepository, cfg)
	gadgetUsecaseInstance := gadgetUsecase.NewGadgetUsecase(gadgetRepository)

	// Background reconciliation: overdue decommissions + blacklist pruning
	sweeper := scheduler.NewSweeper(gadgetRepository, tokenRepository, cfg.JWTExpiry, sugar)
	if err := sweeper.Start(cfg.SweepSchedule); err != nil {
		sugar.Fatalw("failed to start sweeper", "error", err)
	}
	defer sweeper.Stop()

	// Initialize HTTP handler and start server
	handler := api.NewHandler(authUsecaseInstance, gadgetUsecaseInstance, cfg)

	sugar.Infow("server starting", "port", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		sugar.Fatalw("failed to start server", "error", err)
	}
}
