package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/irisalmeida/registra-ai/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pingAttempts = 3
	pingBackoff  = time.Second
)

// Init opens the database selected by config and verifies connectivity.
// Establishing the pool is retried with incremental backoff; once the pool
// exists, per-request failures are never retried here.
func Init(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.Default
	if !cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	gormCfg := &gorm.Config{
		Logger: gormLogger,
		// map driver duplicate-key errors onto gorm.ErrDuplicatedKey
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.DSN), gormCfg)
	case "sqlite", "":
		if mkErr := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); mkErr != nil {
			return nil, fmt.Errorf("create db dir: %w", mkErr)
		}
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Driver == "sqlite" || cfg.Driver == "" {
		// SQLite performance and reliability tuning
		_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
		_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
		_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	}

	// bounded retry for initial pool establishment only
	for attempt := 1; ; attempt++ {
		if err = sqlDB.Ping(); err == nil {
			break
		}
		if attempt >= pingAttempts {
			return nil, fmt.Errorf("ping database after %d attempts: %w", attempt, err)
		}
		wait := time.Duration(attempt) * pingBackoff
		log.Printf("database not ready (attempt %d/%d): %v, retrying in %s",
			attempt, pingAttempts, err, wait)
		time.Sleep(wait)
	}

	return db, nil
}
