package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/database"
	"github.com/Dmitrii14/enterprise-development/internal/logger"
	"github.com/Dmitrii14/enterprise-development/internal/seed"
	"github.com/Dmitrii14/enterprise-development/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format, "nonresidential-fund")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.Ping(ctx, sqlDB); err != nil {
		return err
	}
	log.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	if cfg.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		log.Info("Auto-migrated schema")
	}

	if cfg.SeedData {
		wrote, err := seed.Apply(ctx, db)
		if err != nil {
			return err
		}
		log.Info("Seed data checked", zap.Bool("inserted", wrote))
	}

	e, err := server.New(db, log, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
