// Command server runs the MedCamp registration API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medcamp/medcamp-api/internal/config"
	"github.com/medcamp/medcamp-api/internal/platform/logger"
	"github.com/medcamp/medcamp-api/internal/platform/mongodb"
	stripeclient "github.com/medcamp/medcamp-api/internal/platform/stripe"
	"github.com/medcamp/medcamp-api/internal/service/auth"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database", cfg.Database.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbClient, err := mongodb.Connect(connectCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := dbClient.Disconnect(disconnectCtx); err != nil {
			log.Error("failed to disconnect from mongodb", "error", err)
		}
	}()

	if err := dbClient.EnsureIndexes(connectCtx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Signing-key misconfiguration is fatal here, never per request.
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	db := dbClient.Database()
	app := &application{
		config:        cfg,
		logger:        log,
		campStore:     mongodb.NewCampStore(db),
		joinStore:     mongodb.NewJoinStore(db),
		userStore:     mongodb.NewUserStore(db),
		paymentStore:  mongodb.NewPaymentStore(db),
		feedbackStore: mongodb.NewFeedbackStore(db),
		jwtService:    jwtService,
		intents:       stripeclient.NewIntentClient(cfg.Stripe),
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server cleanly: %w", err)
	}

	log.Info("server stopped")
	return nil
}
