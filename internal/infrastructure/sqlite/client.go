package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/planly/backend/domain"
)

const driverName = "sqlite"

// Config holds the embedded database settings.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// DSN builds the modernc.org/sqlite connection string. Foreign keys are
// enforced on every connection; the store relies on cascades.
func (c Config) DSN() string {
	busy := c.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.ToSlash(c.Path), busy.Milliseconds(),
	)
}

// Open creates and validates the process-wide database handle. The pool
// is capped at a single connection: every operation is a short-lived
// synchronous round-trip against one embedded writer.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorageUnavailable, "cannot create database directory", err)
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeStorageUnavailable, "cannot open database", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, domain.WrapError(domain.ErrCodeStorageUnavailable, "cannot reach database", err)
	}

	logger.Info("connected to sqlite", zap.String("path", cfg.Path))
	return db, nil
}

// Close releases the handle and logs the result.
func Close(db *sql.DB, logger *zap.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		if logger != nil {
			logger.Warn("sqlite close failed", zap.Error(err))
		}
		return
	}
	if logger != nil {
		logger.Info("sqlite closed")
	}
}
