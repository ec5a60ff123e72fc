package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Savio09/TSP-Solver/internal/config"
	"github.com/Savio09/TSP-Solver/internal/server"
	"github.com/Savio09/TSP-Solver/pkg/milp"
	"github.com/Savio09/TSP-Solver/pkg/tsp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	instance := tsp.SanFrancisco()
	if err := instance.Validate(); err != nil {
		logger.Fatal("invalid built-in instance", zap.Error(err))
	}

	solver := milp.NewHighsSolver(cfg.SolveTimeLimit)
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      server.New(cfg, instance, solver, logger).Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // solves run inside the request
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}
	_ = logger.Sync()
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
