//go:build e2e

package e2e

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/seastartup/dashboard-e2e/internal/browser"
	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/database"
	"github.com/seastartup/dashboard-e2e/internal/logging"
	"github.com/seastartup/dashboard-e2e/internal/repository"
	"github.com/seastartup/dashboard-e2e/internal/services"
	"github.com/seastartup/dashboard-e2e/internal/suite"
)

var (
	cfg      *config.SuiteConfig
	logger   *log.Logger
	driver   *browser.Runtime
	avatars  services.AvatarClient
	reporter services.ReportService
)

// open gives every suite its own browser context and page
func open(name string) (*suite.Fixtures, error) {
	session, err := driver.NewSession(name)
	if err != nil {
		return nil, err
	}
	return suite.NewFixtures(session, cfg, avatars, logger.WithPrefix(name)), nil
}

// TestMain starts the browser, the avatar client and the run report for all suites
func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	// .env in the repo root or next to the tests; real environment wins
	for _, name := range []string{"../.env", ".env"} {
		_ = godotenv.Load(name)
	}

	var err error
	cfg, err = config.LoadSuiteConfig(os.Getenv)
	if err != nil {
		log.Error("invalid suite configuration", "err", err)
		return 1
	}
	logger = logging.New(logging.Options{Level: cfg.LogLevel, Prefix: "e2e", ReportTimestamp: true})

	results, err := config.LoadResultsConfig(os.Getenv)
	if err != nil {
		logger.Error("invalid results configuration", "err", err)
		return 1
	}

	var repo services.ResultRepository
	if results.Enabled() {
		if err := database.Connect(results); err != nil {
			logger.Error("failed to connect to results store", "err", err)
			return 1
		}
		defer database.Close()
		if err := database.RunMigrations(); err != nil {
			logger.Error("failed to run database migrations", "err", err)
			return 1
		}
		repo = repository.NewResultRepository()
	}
	reporter = services.NewReportService(repo, logger)
	if _, err := reporter.StartRun(cfg.BaseURL); err != nil {
		logger.Error("failed to start run", "err", err)
		return 1
	}

	avatars, err = services.NewAvatarClient(cfg.AvatarURL, logger)
	if err != nil {
		logger.Error("failed to create avatar client", "err", err)
		return 1
	}
	defer func() {
		if err := avatars.Cleanup(); err != nil {
			logger.Warn("could not remove avatars", "dir", avatars.Dir(), "err", err)
		}
	}()

	driver, err = browser.Start(cfg, logger)
	if err != nil {
		logger.Error("failed to start browser", "err", err)
		return 1
	}
	defer func() {
		if err := driver.Stop(); err != nil {
			logger.Warn("could not stop browser", "err", err)
		}
	}()

	code := m.Run()

	if _, err := reporter.FinishRun(); err != nil {
		logger.Error("failed to finish run", "err", err)
	}
	return code
}
