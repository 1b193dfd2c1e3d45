package database

import (
	"database/sql"
	"fmt"

	"github.com/seastartup/dashboard-e2e/internal/config"
)

const createRunsTable = `
	CREATE TABLE IF NOT EXISTS test_runs (
		id VARCHAR(36) PRIMARY KEY,
		base_url VARCHAR(255) NOT NULL,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		passed INTEGER NOT NULL DEFAULT 0,
		failed INTEGER NOT NULL DEFAULT 0,
		skipped INTEGER NOT NULL DEFAULT 0
	)`

const createResultsTable = `
	CREATE TABLE IF NOT EXISTS scenario_results (
		id VARCHAR(36) PRIMARY KEY,
		run_id VARCHAR(36) NOT NULL REFERENCES test_runs(id) ON DELETE CASCADE,
		suite VARCHAR(255) NOT NULL,
		scenario VARCHAR(255) NOT NULL,
		status VARCHAR(20) NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		duration_ms BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	)`

var createIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_test_runs_started_at ON test_runs(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_scenario_results_run_id ON scenario_results(run_id)`,
	`CREATE INDEX IF NOT EXISTS idx_scenario_results_status ON scenario_results(status)`,
}

// Migrate creates the results tables. The DDL is shared by both drivers.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if driver == config.ResultsDriverSQLite {
		if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	statements := append([]string{createRunsTable, createResultsTable}, createIndexes...)
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// RunMigrations migrates the store opened by Connect
func RunMigrations() error {
	return Migrate(DB, Driver)
}
