package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"

	"github.com/Dmitrii14/enterprise-development/internal/config"
	"github.com/Dmitrii14/enterprise-development/internal/database"
	"github.com/Dmitrii14/enterprise-development/internal/logger"
)

func main() {
	down := flag.Bool("down", false, "roll back every migration")
	steps := flag.Int("steps", 0, "apply n migrations (negative rolls back)")
	version := flag.Bool("version", false, "print the current schema version and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zlog, err := logger.New(cfg.Log.Level, "console", "nonresidential-fund-migrate")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	driverName, err := database.SQLDriverName(cfg.Database.Driver)
	if err != nil {
		zlog.Fatal("Cannot migrate this database", zap.Error(err))
	}

	db, err := sql.Open(driverName, database.MigrationDSN(&cfg.Database))
	if err != nil {
		zlog.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zlog.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if !*down && *steps == 0 && !*version {
		if err := database.RunMigrations(db, cfg.Database.Driver, zlog); err != nil {
			zlog.Fatal("Migration failed", zap.Error(err))
		}
		return
	}

	m, err := database.NewMigrator(db, cfg.Database.Driver)
	if err != nil {
		zlog.Fatal("Failed to prepare migrations", zap.Error(err))
	}

	switch {
	case *version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return
		}
		if err != nil {
			zlog.Fatal("Failed to read version", zap.Error(err))
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
		return
	case *down:
		err = m.Down()
	default:
		err = m.Steps(*steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		zlog.Error("Migration failed", zap.Error(err))
		os.Exit(1)
	}
	zlog.Info("Migrations done")
}
