package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// RunLister lists recorded runs, newest first
type RunLister interface {
	ListRecentRuns(limit int) ([]*models.Run, error)
}

// RunReader loads one recorded run and its scenario results
type RunReader interface {
	GetRun(id string) (*models.Run, error)
	ListResultsByRun(runID string) ([]*models.ScenarioResult, error)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	passedStyle  = cellStyle.Foreground(lipgloss.Color("2"))
	failedStyle  = cellStyle.Foreground(lipgloss.Color("1"))
	runningStyle = cellStyle.Foreground(lipgloss.Color("3"))
)

// History writes the most recent runs as a table
func History(w io.Writer, repo RunLister, limit int, now time.Time) error {
	runs, err := repo.ListRecentRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "no runs recorded")
		return err
	}
	_, err = fmt.Fprintln(w, RenderHistory(runs, now))
	return err
}

// RenderHistory renders runs as a bordered table
func RenderHistory(runs []*models.Run, now time.Time) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			humanize.RelTime(run.StartedAt, now, "ago", "from now"),
			runDuration(run),
			strconv.Itoa(run.Passed),
			strconv.Itoa(run.Failed),
			strconv.Itoa(run.Skipped),
			runState(run),
			run.BaseURL,
		})
	}

	const stateCol = 6
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RUN", "STARTED", "DURATION", "PASSED", "FAILED", "SKIPPED", "STATE", "BASE URL").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != stateCol || row < 0 || row >= len(rows) {
				return cellStyle
			}
			switch rows[row][stateCol] {
			case "passed":
				return passedStyle
			case "failed":
				return failedStyle
			default:
				return runningStyle
			}
		}).
		String()
}

// RunDetail writes the summary of one run followed by its scenario results
func RunDetail(w io.Writer, repo RunReader, id string, now time.Time) error {
	run, err := repo.GetRun(id)
	if err != nil {
		return fmt.Errorf("failed to get run %s: %w", id, err)
	}
	results, err := repo.ListResultsByRun(run.ID)
	if err != nil {
		return fmt.Errorf("failed to list results of run %s: %w", id, err)
	}
	if _, err := fmt.Fprintln(w, RenderHistory([]*models.Run{run}, now)); err != nil {
		return err
	}
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no scenarios recorded")
		return err
	}
	_, err = fmt.Fprintln(w, RenderResults(results))
	return err
}

// RenderResults renders scenario results in the order they were recorded
func RenderResults(results []*models.ScenarioResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Suite,
			r.Scenario,
			string(r.Status),
			r.Duration.Round(time.Millisecond).String(),
			r.Error,
		})
	}

	const statusCol = 2
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SUITE", "SCENARIO", "STATUS", "DURATION", "ERROR").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col != statusCol || row < 0 || row >= len(rows) {
				return cellStyle
			}
			switch models.ResultStatus(rows[row][statusCol]) {
			case models.ResultStatusPassed:
				return passedStyle
			case models.ResultStatusFailed:
				return failedStyle
			default:
				return runningStyle
			}
		}).
		String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runDuration(run *models.Run) string {
	if !run.IsFinished() {
		return "-"
	}
	return run.Duration().Round(time.Second).String()
}

func runState(run *models.Run) string {
	switch {
	case !run.IsFinished():
		return "running"
	case run.Failed > 0:
		return "failed"
	default:
		return "passed"
	}
}
