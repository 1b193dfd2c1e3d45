package config

import "fmt"

// Results store drivers
const (
	ResultsDriverNone     = ""
	ResultsDriverPostgres = "postgres"
	ResultsDriverSQLite   = "sqlite"
)

// ResultsConfig selects where scenario outcomes are recorded
type ResultsConfig struct {
	Driver     string
	SQLitePath string
	Postgres   *PostgresConfig
}

// LoadResultsConfig loads the results store configuration from environment
// variables. An empty RESULTS_DRIVER disables recording.
func LoadResultsConfig(getenv func(string) string) (*ResultsConfig, error) {
	config := &ResultsConfig{
		Driver: getenv("RESULTS_DRIVER"),
	}

	switch config.Driver {
	case ResultsDriverNone:
	case ResultsDriverSQLite:
		config.SQLitePath = orDefault(getenv("RESULTS_SQLITE_PATH"), "test-results/results.db")
	case ResultsDriverPostgres:
		pg, err := LoadPostgresConfig(getenv)
		if err != nil {
			return nil, fmt.Errorf("failed to load postgres config: %w", err)
		}
		config.Postgres = pg
	default:
		return nil, fmt.Errorf("RESULTS_DRIVER must be postgres or sqlite: got %q", config.Driver)
	}

	return config, nil
}

// Enabled reports whether outcomes are recorded
func (c *ResultsConfig) Enabled() bool {
	return c.Driver != ResultsDriverNone
}

// DSN returns the data source name for database/sql
func (c *ResultsConfig) DSN() string {
	switch c.Driver {
	case ResultsDriverPostgres:
		return c.Postgres.ConnectionString()
	case ResultsDriverSQLite:
		return "file:" + c.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	default:
		return ""
	}
}
