package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// ErrNoActiveRun is returned when results are recorded outside a run
var ErrNoActiveRun = errors.New("no active run")

// ResultRepository defines the interface for result persistence
type ResultRepository interface {
	CreateRun(run *models.Run) error
	FinishRun(run *models.Run) error
	CreateResult(result *models.ScenarioResult) error
}

// ReportService tracks one run and the outcome of each scenario in it
type ReportService interface {
	StartRun(baseURL string) (*models.Run, error)
	Begin(suite, scenario string) (*models.ScenarioResult, error)
	Record(result *models.ScenarioResult) error
	FinishRun() (*models.Run, error)
}

// ReportServiceImpl implements ReportService. A nil repository keeps the
// totals in memory only.
type ReportServiceImpl struct {
	resultRepo ResultRepository
	logger     *log.Logger

	mu  sync.Mutex
	run *models.Run
}

// NewReportService creates a new report service
func NewReportService(resultRepo ResultRepository, logger *log.Logger) ReportService {
	return &ReportServiceImpl{
		resultRepo: resultRepo,
		logger:     logger,
	}
}

// StartRun opens a new run against baseURL
func (s *ReportServiceImpl) StartRun(baseURL string) (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != nil && !s.run.IsFinished() {
		return nil, fmt.Errorf("run %s is still active", s.run.ID)
	}

	run, err := models.NewRun(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}

	if s.resultRepo != nil {
		if err := s.resultRepo.CreateRun(run); err != nil {
			return nil, fmt.Errorf("failed to create run: %w", err)
		}
	}

	s.run = run
	if s.logger != nil {
		s.logger.Info("run started", "id", run.ID, "base_url", baseURL)
	}
	return run, nil
}

// Begin creates a pending result for a scenario of the active run
func (s *ReportServiceImpl) Begin(suite, scenario string) (*models.ScenarioResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil || s.run.IsFinished() {
		return nil, ErrNoActiveRun
	}

	result, err := models.NewScenarioResult(s.run.ID, suite, scenario)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario result: %w", err)
	}
	return result, nil
}

// Record stores a finished result and adds it to the run totals
func (s *ReportServiceImpl) Record(result *models.ScenarioResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil || s.run.IsFinished() || result.RunID != s.run.ID {
		return ErrNoActiveRun
	}
	if result.IsPending() {
		return fmt.Errorf("%w: cannot record pending result", models.ErrInvalidStatusTransition)
	}

	if s.resultRepo != nil {
		if err := s.resultRepo.CreateResult(result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}
	}

	s.run.Count(result)
	return nil
}

// FinishRun closes the active run and stores its totals
func (s *ReportServiceImpl) FinishRun() (*models.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil || s.run.IsFinished() {
		return nil, ErrNoActiveRun
	}

	s.run.Finish()
	if s.resultRepo != nil {
		if err := s.resultRepo.FinishRun(s.run); err != nil {
			return s.run, fmt.Errorf("failed to finish run: %w", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("run finished",
			"id", s.run.ID,
			"passed", s.run.Passed,
			"failed", s.run.Failed,
			"skipped", s.run.Skipped,
			"duration", s.run.Duration().Round(time.Millisecond),
		)
	}
	return s.run, nil
}
