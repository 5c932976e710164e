package sqlite

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Default list seeded at store initialization. Exactly one list carries
// the is_default flag; it is never deletable.
const (
	inboxName  = "Inbox"
	inboxIcon  = "📥"
	inboxColor = "#6366f1"
)

// RunMigrations brings the schema up to date and seeds the default list.
// It runs on a dedicated connection so the main handle stays untouched.
func RunMigrations(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return err
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrateUp(db); err != nil {
		return err
	}
	if err := seedDefaultList(db); err != nil {
		return err
	}

	logger.Info("database migrations applied", zap.String("path", cfg.Path))
	return nil
}

// Reset drops every table and rebuilds the schema with the seeded
// default list. Destructive; intended for tests and local development.
func Reset(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return err
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		db.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		db.Close()
		return err
	}
	if err := m.Drop(); err != nil {
		db.Close()
		return err
	}
	if err := db.Close(); err != nil {
		return err
	}

	logger.Info("database dropped", zap.String("path", cfg.Path))
	return RunMigrations(cfg, logger)
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func seedDefaultList(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM lists WHERE is_default = 1").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	_, err := db.Exec(`
	INSERT INTO lists (id, name, icon, color, is_default, created_at, updated_at)
	VALUES (?, ?, ?, ?, 1, ?, ?)
	`, uuid.NewString(), inboxName, inboxIcon, inboxColor, now, now)
	return err
}
