package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/database"
)

// SignInPath is the page probed by Check and opened by every suite
const SignInPath = "/signin"

// CheckReport describes a successful configuration check
type CheckReport struct {
	URL     string
	Status  int
	Latency time.Duration
	Results string
}

// Check verifies that the dashboard answers on its sign-in page and, when
// result recording is enabled, that the results store can be opened
func Check(ctx context.Context, client *http.Client, cfg *config.SuiteConfig, results *config.ResultsConfig, logger *log.Logger) (*CheckReport, error) {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	report := &CheckReport{URL: cfg.URL(SignInPath), Results: "disabled"}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, report.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dashboard unreachable at %s: %w", report.URL, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	report.Status = resp.StatusCode
	report.Latency = time.Since(start)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("dashboard returned %d for %s", resp.StatusCode, report.URL)
	}
	logger.Info("dashboard reachable", "url", report.URL, "status", report.Status, "latency", report.Latency.Round(time.Millisecond))

	if results != nil && results.Enabled() {
		db, err := database.Open(results)
		if err != nil {
			return nil, fmt.Errorf("results store: %w", err)
		}
		db.Close()
		report.Results = results.Driver
		logger.Info("results store reachable", "driver", results.Driver)
	}

	return report, nil
}
