package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/seastartup/dashboard-e2e/internal/config"
)

// DB is the results store opened by Connect
var DB *sql.DB

// Driver is the config.ResultsDriver* value DB was opened with
var Driver string

// Open opens and pings the results store described by cfg
func Open(cfg *config.ResultsConfig) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.ResultsDriverPostgres:
		db, err = sql.Open("postgres", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// Configure connection pool
		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)
	case config.ResultsDriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		db, err = sql.Open("sqlite", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	default:
		return nil, fmt.Errorf("unsupported results driver %q", cfg.Driver)
	}

	// Verify connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Connect opens the results store into DB
func Connect(cfg *config.ResultsConfig) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}
	DB = db
	Driver = cfg.Driver
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		err := DB.Close()
		DB = nil
		return err
	}
	return nil
}
