//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/seastartup/dashboard-e2e/internal/models"
	"github.com/seastartup/dashboard-e2e/internal/repository/testutil"
)

func TestResultRepository_CreateRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB, testDB.Driver)

	run, err := models.NewRun("http://localhost:3000")
	if err != nil {
		t.Fatalf("NewRun() error = %v", err)
	}

	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("CreateRun() error = %v", err)
	}

	retrieved, err := repo.GetRun(run.ID)
	if err != nil {
		t.Fatalf("Failed to retrieve created run: %v", err)
	}
	if retrieved.BaseURL != run.BaseURL {
		t.Errorf("BaseURL mismatch: got %v, want %v", retrieved.BaseURL, run.BaseURL)
	}
	if retrieved.IsFinished() {
		t.Error("Run should not be finished")
	}
}

func TestResultRepository_DuplicateRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB, testDB.Driver)

	run := &models.Run{ID: uuid.New().String(), BaseURL: "http://localhost:3000", StartedAt: time.Now()}
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("Failed to create first run: %v", err)
	}

	if err := repo.CreateRun(run); err == nil {
		t.Error("Expected error when creating run with duplicate id, got nil")
	}
}

func TestResultRepository_FinishRun_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB, testDB.Driver)

	run, _ := models.NewRun("http://localhost:3000")
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	tests := []struct {
		name    string
		run     *models.Run
		wantErr error
	}{
		{
			name:    "finish existing run",
			run:     &models.Run{ID: run.ID, FinishedAt: time.Now(), Passed: 4, Failed: 1},
			wantErr: nil,
		},
		{
			name:    "finish unknown run",
			run:     &models.Run{ID: uuid.New().String(), FinishedAt: time.Now()},
			wantErr: ErrRunNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.FinishRun(tt.run)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FinishRun() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			retrieved, err := repo.GetRun(tt.run.ID)
			if err != nil {
				t.Fatalf("Failed to retrieve finished run: %v", err)
			}
			if !retrieved.IsFinished() {
				t.Error("Run should be finished")
			}
			if retrieved.Passed != 4 || retrieved.Failed != 1 {
				t.Errorf("Totals mismatch: passed=%d failed=%d", retrieved.Passed, retrieved.Failed)
			}
		})
	}
}

func TestResultRepository_Results_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	defer testDB.Teardown(t)

	repo := NewResultRepositoryWithDB(testDB.DB, testDB.Driver)

	run, _ := models.NewRun("http://localhost:3000")
	if err := repo.CreateRun(run); err != nil {
		t.Fatalf("Failed to create run: %v", err)
	}

	result, _ := models.NewScenarioResult(run.ID, "Edit Program General Information", "Edit Program Name (Success)")
	if err := result.Pass(3 * time.Second); err != nil {
		t.Fatalf("Pass() error = %v", err)
	}
	if err := repo.CreateResult(result); err != nil {
		t.Fatalf("CreateResult() error = %v", err)
	}

	results, err := repo.ListResultsByRun(run.ID)
	if err != nil {
		t.Fatalf("ListResultsByRun() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].Duration != 3*time.Second {
		t.Errorf("Duration mismatch: got %v, want 3s", results[0].Duration)
	}
	if results[0].Status != models.ResultStatusPassed {
		t.Errorf("Status mismatch: got %v, want %v", results[0].Status, models.ResultStatusPassed)
	}
}

func TestResultRepository_SchemaIsolation_Integration(t *testing.T) {
	testDB1 := testutil.SetupTestDatabase(t)
	defer testDB1.Teardown(t)

	testDB2 := testutil.SetupTestDatabase(t)
	defer testDB2.Teardown(t)

	repo1 := NewResultRepositoryWithDB(testDB1.DB, testDB1.Driver)
	repo2 := NewResultRepositoryWithDB(testDB2.DB, testDB2.Driver)

	run, _ := models.NewRun("http://localhost:3000")
	if err := repo1.CreateRun(run); err != nil {
		t.Fatalf("Failed to create run in first database: %v", err)
	}

	if _, err := repo1.GetRun(run.ID); err != nil {
		t.Errorf("Run should exist in first database: %v", err)
	}

	if _, err := repo2.GetRun(run.ID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run should not exist in second database, got %v", err)
	}
}
