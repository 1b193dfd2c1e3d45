package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/database"
	"github.com/seastartup/dashboard-e2e/internal/models"
)

// ErrRunNotFound is returned when a run id matches no row
var ErrRunNotFound = errors.New("run not found")

// ResultRepository handles database operations for runs and scenario results
type ResultRepository struct {
	db     *sql.DB
	driver string
}

// NewResultRepository creates a repository on the store opened by database.Connect
func NewResultRepository() *ResultRepository {
	return &ResultRepository{
		db:     database.DB,
		driver: database.Driver,
	}
}

// NewResultRepositoryWithDB creates a repository with a specific database connection
func NewResultRepositoryWithDB(db *sql.DB, driver string) *ResultRepository {
	return &ResultRepository{
		db:     db,
		driver: driver,
	}
}

// rebind rewrites $n placeholders into sqlite's ?n form
func (r *ResultRepository) rebind(query string) string {
	if r.driver == config.ResultsDriverSQLite {
		return strings.ReplaceAll(query, "$", "?")
	}
	return query
}

// CreateRun inserts a new run
func (r *ResultRepository) CreateRun(run *models.Run) error {
	query := r.rebind(`
		INSERT INTO test_runs (id, base_url, started_at, passed, failed, skipped)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)

	_, err := r.db.Exec(query,
		run.ID,
		run.BaseURL,
		run.StartedAt.UTC(),
		run.Passed,
		run.Failed,
		run.Skipped,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// FinishRun stores the end time and totals of a run
func (r *ResultRepository) FinishRun(run *models.Run) error {
	query := r.rebind(`
		UPDATE test_runs
		SET finished_at = $1, passed = $2, failed = $3, skipped = $4
		WHERE id = $5
	`)

	result, err := r.db.Exec(query, run.FinishedAt.UTC(), run.Passed, run.Failed, run.Skipped, run.ID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrRunNotFound
	}

	return nil
}

// CreateResult inserts a finished scenario result
func (r *ResultRepository) CreateResult(result *models.ScenarioResult) error {
	query := r.rebind(`
		INSERT INTO scenario_results (id, run_id, suite, scenario, status, error, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`)

	_, err := r.db.Exec(query,
		result.ID,
		result.RunID,
		result.Suite,
		result.Scenario,
		string(result.Status),
		result.Error,
		result.Duration.Milliseconds(),
		result.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create scenario result: %w", err)
	}

	return nil
}

// GetRun retrieves a run by id
func (r *ResultRepository) GetRun(id string) (*models.Run, error) {
	query := r.rebind(`
		SELECT id, base_url, started_at, finished_at, passed, failed, skipped
		FROM test_runs
		WHERE id = $1
	`)

	run, err := scanRun(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// ListRecentRuns returns the latest runs, newest first
func (r *ResultRepository) ListRecentRuns(limit int) ([]*models.Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := r.rebind(`
		SELECT id, base_url, started_at, finished_at, passed, failed, skipped
		FROM test_runs
		ORDER BY started_at DESC
		LIMIT $1
	`)

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return runs, nil
}

// ListResultsByRun returns the results of a run in recording order
func (r *ResultRepository) ListResultsByRun(runID string) ([]*models.ScenarioResult, error) {
	query := r.rebind(`
		SELECT id, run_id, suite, scenario, status, error, duration_ms, created_at
		FROM scenario_results
		WHERE run_id = $1
		ORDER BY created_at ASC, suite ASC, scenario ASC
	`)

	rows, err := r.db.Query(query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenario results: %w", err)
	}
	defer rows.Close()

	var results []*models.ScenarioResult
	for rows.Next() {
		var (
			result     models.ScenarioResult
			status     string
			durationMs int64
		)
		if err := rows.Scan(
			&result.ID,
			&result.RunID,
			&result.Suite,
			&result.Scenario,
			&status,
			&result.Error,
			&durationMs,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan scenario result: %w", err)
		}
		result.Status = models.ResultStatus(status)
		result.Duration = time.Duration(durationMs) * time.Millisecond
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list scenario results: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*models.Run, error) {
	var (
		run      models.Run
		finished sql.NullTime
	)
	if err := row.Scan(
		&run.ID,
		&run.BaseURL,
		&run.StartedAt,
		&finished,
		&run.Passed,
		&run.Failed,
		&run.Skipped,
	); err != nil {
		return nil, err
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}
	return &run, nil
}
