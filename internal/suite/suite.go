// Package suite sequences browser scenarios the way the dashboard suites
// expect: one shared page per suite, hooks around the whole suite and around
// every scenario, and each outcome reported to a Recorder.
package suite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// Step is a hook or scenario body acting on the suite's fixtures
type Step func(ctx context.Context, f *Fixtures) error

// Hooks run around the suite and around each scenario. Nil hooks are skipped.
type Hooks struct {
	BeforeAll  Step
	BeforeEach Step
	AfterEach  Step
	AfterAll   Step
}

// Scenario is one named check of a suite
type Scenario struct {
	Name string
	Run  Step
}

// Suite is an ordered list of scenarios sharing one page
type Suite struct {
	Name      string
	Hooks     Hooks
	Scenarios []Scenario
}

// Opener creates the fixtures of a suite on a fresh browser context
type Opener func(suite string) (*Fixtures, error)

// Recorder receives the outcome of every scenario
type Recorder interface {
	Begin(suite, scenario string) (*models.ScenarioResult, error)
	Record(result *models.ScenarioResult) error
}

// Run plays the suite as subtests of t. A failed beforeAll fails t and skips
// every scenario. afterEach and afterAll run even when earlier steps failed.
func (s *Suite) Run(t *testing.T, open Opener, rec Recorder) {
	t.Helper()
	ctx := t.Context()
	start := time.Now()

	f, err := s.setUp(ctx, open)
	if f != nil {
		defer func() {
			if err := s.tearDown(ctx, f); err != nil {
				t.Errorf("%s teardown: %v", s.Name, err)
			}
			f.logger().Info("suite finished", "suite", s.Name, "duration", time.Since(start).Round(time.Millisecond))
		}()
	}
	if err != nil {
		t.Errorf("%s setup: %v", s.Name, err)
		logger := log.Default()
		if f != nil {
			logger = f.logger()
		}
		s.skipAll(t, logger, rec, err)
		return
	}

	for _, sc := range s.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			result := s.begin(f.logger(), rec, sc.Name)
			began := time.Now()

			err := s.playScenario(t.Context(), f, sc)
			s.finish(f.logger(), rec, sc.Name, result, time.Since(began), err)

			require.NoError(t, err)
		})
	}
}

// setUp opens the fixtures and runs beforeAll. The fixtures are returned
// whenever they were opened so that they can be torn down.
func (s *Suite) setUp(ctx context.Context, open Opener) (*Fixtures, error) {
	f, err := open(s.Name)
	if err != nil {
		return nil, fmt.Errorf("open fixtures: %w", err)
	}
	f.logger().Info("suite started", "suite", s.Name, "scenarios", len(s.Scenarios))

	if err := call(ctx, s.Hooks.BeforeAll, f); err != nil {
		f.screenshot("before all")
		return f, fmt.Errorf("beforeAll: %w", err)
	}
	return f, nil
}

// tearDown runs afterAll and closes the fixtures
func (s *Suite) tearDown(ctx context.Context, f *Fixtures) error {
	var errs []error
	if err := call(ctx, s.Hooks.AfterAll, f); err != nil {
		errs = append(errs, fmt.Errorf("afterAll: %w", err))
	}
	if err := f.close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// playScenario runs beforeEach, the body and afterEach. The body is skipped
// when beforeEach fails; afterEach always runs.
func (s *Suite) playScenario(ctx context.Context, f *Fixtures, sc Scenario) error {
	err := call(ctx, s.Hooks.BeforeEach, f)
	if err != nil {
		err = fmt.Errorf("beforeEach: %w", err)
	} else {
		err = call(ctx, sc.Run, f)
	}
	if err != nil {
		f.screenshot(sc.Name)
	}

	if aerr := call(ctx, s.Hooks.AfterEach, f); aerr != nil {
		err = errors.Join(err, fmt.Errorf("afterEach: %w", aerr))
	}
	return err
}

func (s *Suite) skipAll(t *testing.T, logger *log.Logger, rec Recorder, cause error) {
	reason := fmt.Sprintf("suite setup failed: %v", cause)
	for _, sc := range s.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			logger.Warn("scenario skipped", "suite", s.Name, "scenario", sc.Name, "reason", reason)
			if result := s.begin(logger, rec, sc.Name); result != nil {
				if err := result.Skip(reason); err == nil {
					s.record(logger, rec, result)
				}
			}
			t.Skip(reason)
		})
	}
}

func (s *Suite) begin(logger *log.Logger, rec Recorder, scenario string) *models.ScenarioResult {
	logger.Debug("scenario started", "suite", s.Name, "scenario", scenario)
	if rec == nil {
		return nil
	}
	result, err := rec.Begin(s.Name, scenario)
	if err != nil {
		logger.Warn("could not begin result", "scenario", scenario, "err", err)
		return nil
	}
	return result
}

func (s *Suite) finish(logger *log.Logger, rec Recorder, scenario string, result *models.ScenarioResult, d time.Duration, err error) {
	if err != nil {
		logger.Error("scenario failed", "suite", s.Name, "scenario", scenario, "duration", d.Round(time.Millisecond), "err", err)
	} else {
		logger.Info("scenario passed", "suite", s.Name, "scenario", scenario, "duration", d.Round(time.Millisecond))
	}
	if result == nil {
		return
	}

	var serr error
	if err != nil {
		serr = result.Fail(d, err)
	} else {
		serr = result.Pass(d)
	}
	if serr != nil {
		logger.Warn("could not complete result", "scenario", result.Scenario, "err", serr)
		return
	}
	s.record(logger, rec, result)
}

func (s *Suite) record(logger *log.Logger, rec Recorder, result *models.ScenarioResult) {
	if err := rec.Record(result); err != nil {
		logger.Warn("could not record result", "scenario", result.Scenario, "err", err)
	}
}

func call(ctx context.Context, step Step, f *Fixtures) error {
	if step == nil {
		return nil
	}
	return step(ctx, f)
}
