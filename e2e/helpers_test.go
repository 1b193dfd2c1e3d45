//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"

	"github.com/seastartup/dashboard-e2e/internal/models"
	"github.com/seastartup/dashboard-e2e/internal/suite"
)

// named appends the outcome label the way scenario names carry it
func named(base string, outcome models.Outcome) string {
	return fmt.Sprintf("%s (%s)", base, outcome.Label())
}

// title turns a form value such as "open_registration" into "Open Registration"
func title(value string) string {
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func characters(n int) string {
	if n == 1 {
		return "1 Character"
	}
	return fmt.Sprintf("%d Characters", n)
}

// deleteTestPrograms removes every program created under the test name
func deleteTestPrograms(ctx context.Context, f *suite.Fixtures) error {
	n, err := f.DeleteProgram.DeleteAll(ctx, f.Config.TestProgramName)
	if n > 0 {
		f.Logger.Debug("deleted test programs", "count", n)
	}
	return err
}

// openEdit opens the edit form of the configured program
func openEdit(ctx context.Context, f *suite.Fixtures) error {
	return f.EditProgram.Open(f.Config.EditProgramSlug)
}

func openRequirements(ctx context.Context, f *suite.Fixtures) error {
	return f.EditProgram.OpenRequirements()
}

func openFeatures(ctx context.Context, f *suite.Fixtures) error {
	return f.EditProgram.OpenFeatures()
}
