package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/seastartup/dashboard-e2e/internal/browser"
	internalcli "github.com/seastartup/dashboard-e2e/internal/cli"
	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/database"
	"github.com/seastartup/dashboard-e2e/internal/logging"
	"github.com/seastartup/dashboard-e2e/internal/repository"
)

var version = "0.1.0"

func newLogger() *log.Logger {
	return logging.New(logging.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Prefix: "dashboard-e2e",
	})
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Install the Playwright driver and browsers",
		ArgsUsage: "[browser...]",
		Action: func(c *cli.Context) error {
			browsers := c.Args().Slice()
			if len(browsers) == 0 {
				if b := os.Getenv("BROWSER"); b != "" {
					browsers = []string{strings.ToLower(b)}
				}
			}
			if err := browser.Install(browsers...); err != nil {
				return err
			}
			newLogger().Info("browsers installed", "browsers", browsers)
			return nil
		},
	}
}

// CheckCommand returns the check command
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate configuration and check that the dashboard is reachable",
		Action: func(c *cli.Context) error {
			logger := newLogger()

			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid suite configuration: %w", err)
			}
			results, err := config.LoadResultsConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid results configuration: %w", err)
			}

			ctx, stop := internalcli.WithShutdown(c.Context, nil, logger)
			defer stop()

			report, err := internalcli.Check(ctx, nil, cfg, results, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "ok: %s answered %d in %s (results: %s)\n",
				report.URL, report.Status, report.Latency.Round(time.Millisecond), report.Results)
			return nil
		},
	}
}

// CleanupCommand returns the cleanup command
func CleanupCommand() *cli.Command {
	return &cli.Command{
		Name:  "cleanup",
		Usage: "Delete programs left behind by interrupted runs",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid suite configuration: %w", err)
			}
			logger := logging.New(logging.Options{Level: cfg.LogLevel, Prefix: "cleanup"})

			ctx, stop := internalcli.WithShutdown(c.Context, nil, logger)
			defer stop()

			deleted, err := internalcli.Cleanup(ctx, cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "deleted %d program(s) named %q\n", deleted, cfg.TestProgramName)
			return nil
		},
	}
}

// HistoryCommand returns the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recently recorded runs, or the scenarios of one run",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "run",
				Usage: "id of the run to show scenario results for",
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Value:   10,
				Usage:   "number of runs to show",
			},
		},
		Action: func(c *cli.Context) error {
			results, err := config.LoadResultsConfig(os.Getenv)
			if err != nil {
				return fmt.Errorf("invalid results configuration: %w", err)
			}
			if !results.Enabled() {
				return fmt.Errorf("RESULTS_DRIVER is not set, no runs are recorded")
			}

			if err := database.Connect(results); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			repo := repository.NewResultRepository()
			if id := c.String("run"); id != "" {
				return internalcli.RunDetail(c.App.Writer, repo, id, time.Now())
			}
			return internalcli.History(c.App.Writer, repo, c.Int("limit"), time.Now())
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		newLogger().Debug(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "dashboard-e2e",
		Usage:   "Browser test suite tooling for the program dashboard",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			CheckCommand(),
			CleanupCommand(),
			HistoryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		newLogger().Fatal(err)
	}
}
