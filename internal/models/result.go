package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ResultStatus represents valid scenario result states
type ResultStatus string

// Result statuses
const (
	ResultStatusPending ResultStatus = "pending"
	ResultStatusPassed  ResultStatus = "passed"
	ResultStatusFailed  ResultStatus = "failed"
	ResultStatusSkipped ResultStatus = "skipped"
)

// Run is one execution of the browser suite against a base URL
type Run struct {
	ID         string
	BaseURL    string
	StartedAt  time.Time
	FinishedAt time.Time
	Passed     int
	Failed     int
	Skipped    int
}

// ScenarioResult records how a single scenario ended
type ScenarioResult struct {
	ID        string
	RunID     string
	Suite     string
	Scenario  string
	Status    ResultStatus
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Domain errors
var (
	ErrInvalidRunID            = errors.New("run id cannot be empty")
	ErrInvalidSuite            = errors.New("suite name cannot be empty")
	ErrInvalidScenario         = errors.New("scenario name cannot be empty")
	ErrInvalidBaseURL          = errors.New("base url cannot be empty")
	ErrInvalidStatusTransition = errors.New("invalid result status transition")
)

// NewRun starts a new run against baseURL
func NewRun(baseURL string) (*Run, error) {
	if baseURL == "" {
		return nil, ErrInvalidBaseURL
	}
	return &Run{
		ID:        uuid.New().String(),
		BaseURL:   baseURL,
		StartedAt: time.Now(),
	}, nil
}

// Count adds a finished result to the run totals
func (r *Run) Count(result *ScenarioResult) {
	switch result.Status {
	case ResultStatusPassed:
		r.Passed++
	case ResultStatusFailed:
		r.Failed++
	case ResultStatusSkipped:
		r.Skipped++
	}
}

// Finish stamps the run end time
func (r *Run) Finish() {
	r.FinishedAt = time.Now()
}

// IsFinished returns true once Finish has been called
func (r *Run) IsFinished() bool {
	return !r.FinishedAt.IsZero()
}

// Total returns the number of recorded results
func (r *Run) Total() int {
	return r.Passed + r.Failed + r.Skipped
}

// Duration returns the wall time of a finished run
func (r *Run) Duration() time.Duration {
	if !r.IsFinished() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// NewScenarioResult creates a pending result with validation
func NewScenarioResult(runID, suite, scenario string) (*ScenarioResult, error) {
	if err := validateResultInput(runID, suite, scenario); err != nil {
		return nil, err
	}

	return &ScenarioResult{
		ID:        uuid.New().String(),
		RunID:     runID,
		Suite:     suite,
		Scenario:  scenario,
		Status:    ResultStatusPending,
		CreatedAt: time.Now(),
	}, nil
}

func validateResultInput(runID, suite, scenario string) error {
	if runID == "" {
		return ErrInvalidRunID
	}
	if suite == "" {
		return ErrInvalidSuite
	}
	if scenario == "" {
		return ErrInvalidScenario
	}
	return nil
}

// Pass marks the result as passed
func (r *ScenarioResult) Pass(d time.Duration) error {
	if r.Status != ResultStatusPending {
		return fmt.Errorf("%w: cannot pass result with status %s", ErrInvalidStatusTransition, r.Status)
	}
	r.Status = ResultStatusPassed
	r.Duration = d
	return nil
}

// Fail marks the result as failed with the failure message
func (r *ScenarioResult) Fail(d time.Duration, cause error) error {
	if r.Status != ResultStatusPending {
		return fmt.Errorf("%w: cannot fail result with status %s", ErrInvalidStatusTransition, r.Status)
	}
	if cause == nil {
		return errors.New("failure cause cannot be nil")
	}
	r.Status = ResultStatusFailed
	r.Error = cause.Error()
	r.Duration = d
	return nil
}

// Skip marks the result as skipped, e.g. when suite setup failed
func (r *ScenarioResult) Skip(reason string) error {
	if r.Status != ResultStatusPending {
		return fmt.Errorf("%w: cannot skip result with status %s", ErrInvalidStatusTransition, r.Status)
	}
	r.Status = ResultStatusSkipped
	r.Error = reason
	return nil
}

// IsPending returns true if the scenario has not finished
func (r *ScenarioResult) IsPending() bool {
	return r.Status == ResultStatusPending
}

// IsPassed returns true if the scenario passed
func (r *ScenarioResult) IsPassed() bool {
	return r.Status == ResultStatusPassed
}

// IsFailed returns true if the scenario failed
func (r *ScenarioResult) IsFailed() bool {
	return r.Status == ResultStatusFailed
}
