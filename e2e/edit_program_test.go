//go:build e2e

package e2e

import (
	"context"
	"testing"

	"github.com/seastartup/dashboard-e2e/internal/fixtures"
	"github.com/seastartup/dashboard-e2e/internal/models"
	"github.com/seastartup/dashboard-e2e/internal/suite"
)

func editInformation(in models.EditProgramInput, rule models.SlugRule) suite.Step {
	return func(ctx context.Context, f *suite.Fixtures) error {
		if err := f.EditProgram.EditInformation(ctx, in); err != nil {
			return err
		}
		return f.EditProgram.Submit(in.ExpectedOutcome(rule))
	}
}

func editRequirements(in models.EditRequirementsInput) suite.Step {
	return func(ctx context.Context, f *suite.Fixtures) error {
		if err := f.EditProgram.EditRequirements(in); err != nil {
			return err
		}
		return f.EditProgram.SubmitSuccess()
	}
}

func editFeatures(in models.EditProgramFeatures) suite.Step {
	return func(ctx context.Context, f *suite.Fixtures) error {
		if err := f.EditProgram.EditFeatures(in); err != nil {
			return err
		}
		return f.EditProgram.SubmitSuccess()
	}
}

// reopen opens the configured program again after a cancelled edit
func reopen(f *suite.Fixtures) error {
	if err := f.Programs.GoTo(); err != nil {
		return err
	}
	return f.EditProgram.Open(f.Config.EditProgramSlug)
}

// cancelInformationEdit types a name, cancels and checks the name was not saved
func cancelInformationEdit(ctx context.Context, f *suite.Fixtures) error {
	name := fixtures.Discarded.Name
	if err := f.EditProgram.EditInformation(ctx, models.EditProgramInput{Name: &name}); err != nil {
		return err
	}
	if err := f.EditProgram.Cancel(); err != nil {
		return err
	}
	if err := reopen(f); err != nil {
		return err
	}
	return f.EditProgram.ExpectNameDiscarded(name)
}

// cancelRequirementsEdit adds a requirement, cancels and checks the
// requirement list is unchanged
func cancelRequirementsEdit(ctx context.Context, f *suite.Fixtures) error {
	before, err := f.EditProgram.RequirementCount()
	if err != nil {
		return err
	}
	r := fixtures.ValidRequirement()
	if err := f.EditProgram.EditRequirements(models.EditRequirementsInput{Add: &r}); err != nil {
		return err
	}
	if err := f.EditProgram.Cancel(); err != nil {
		return err
	}
	if err := reopen(f); err != nil {
		return err
	}
	if err := f.EditProgram.OpenRequirements(); err != nil {
		return err
	}
	return f.EditProgram.ExpectRequirementCount(before)
}

// cancelFeaturesEdit types a colour, cancels and checks it was not saved
func cancelFeaturesEdit(ctx context.Context, f *suite.Fixtures) error {
	color := fixtures.Discarded.Color
	if err := f.EditProgram.EditFeatures(models.EditProgramFeatures{Color: &color}); err != nil {
		return err
	}
	if err := f.EditProgram.Cancel(); err != nil {
		return err
	}
	if err := reopen(f); err != nil {
		return err
	}
	if err := f.EditProgram.OpenFeatures(); err != nil {
		return err
	}
	return f.EditProgram.ExpectColorDiscarded(color)
}

// editSlugAndRestore saves a new slug, then puts the configured slug back so
// that the remaining scenarios still find the program
func editSlugAndRestore(ctx context.Context, f *suite.Fixtures) error {
	if err := editInformation(models.EditProgramInput{Slug: models.String(fixtures.ProgramEdit.Slug)}, f.Config.SlugRule)(ctx, f); err != nil {
		return err
	}
	if err := f.Programs.GoTo(); err != nil {
		return err
	}
	if err := f.EditProgram.Open(fixtures.ProgramEdit.Slug); err != nil {
		return err
	}
	return editInformation(models.EditProgramInput{Slug: models.String(f.Config.EditProgramSlug)}, f.Config.SlugRule)(ctx, f)
}

// TestEditProgramGeneralInformation exercises the General Information section
// Feature: Edit program
//
//	Scenario Outline: Change one general field
//	  Given I opened the edit form of the configured program
//	  When I change <field>
//	  And I save the changes
//	  Then I should see "Success!" unless the slug is too short
//
//	Scenario: Cancel an edit
//	  Given I typed a new name into the edit form
//	  When I cancel
//	  Then I am back on the Programs list
//	  And reopening the program does not show the typed name
func TestEditProgramGeneralInformation(t *testing.T) {
	hooks := suite.DashboardHooks(suite.Programs)
	hooks.BeforeEach = suite.Steps(suite.NavigateTo(suite.Programs), openEdit)

	s := &suite.Suite{Name: "Edit Program (General Information Section)", Hooks: hooks}

	add := func(base string, in models.EditProgramInput) {
		s.Scenarios = append(s.Scenarios, suite.Scenario{
			Name: named(base, in.ExpectedOutcome(cfg.SlugRule)),
			Run:  editInformation(in, cfg.SlugRule),
		})
	}

	add("Edit Program Name", models.EditProgramInput{Name: models.String(fixtures.ProgramEdit.Name)})
	for n := 1; n <= 5; n++ {
		add("Edit Program Name Input "+characters(n), models.EditProgramInput{Name: models.String(fixtures.Characters.OfLength(n))})
	}
	add("Edit Program Short Name", models.EditProgramInput{ShortName: models.String(fixtures.ProgramEdit.ShortName)})
	s.Scenarios = append(s.Scenarios, suite.Scenario{
		Name: named("Edit Program Slug", models.OutcomeSaved),
		Run:  editSlugAndRestore,
	})
	for n := 1; n <= 5; n++ {
		add("Edit Program Slug Input "+characters(n), models.EditProgramInput{Slug: models.String(fixtures.Characters.OfLength(n))})
	}
	add("Edit Program Timezone", models.EditProgramInput{Timezone: models.String(fixtures.ProgramEdit.Timezone)})
	add("Edit Program Start Date", models.EditProgramInput{StartDate: fixtures.Program.StartDate})
	add("Edit Program End Date", models.EditProgramInput{EndDate: fixtures.Program.EndDate})
	add("Edit Program Revision Date", models.EditProgramInput{RevisionDate: fixtures.Program.RevisionDate})
	add("Edit Program Location", models.EditProgramInput{Location: models.String(fixtures.ProgramEdit.Location)})
	add("Edit Program Description", models.EditProgramInput{Description: models.String(fixtures.ProgramEdit.Description)})
	for _, typ := range models.ProgramTypes {
		add("Edit Program Type To "+title(string(typ)), models.EditProgramInput{Type: typ})
	}
	for _, status := range models.ProgramStatuses {
		add("Edit Program Status To "+title(string(status)), models.EditProgramInput{Status: status})
	}
	add("Edit Program Logo", models.EditProgramInput{Logo: true})
	add("Edit Program Banner", models.EditProgramInput{Banner: true})
	s.Scenarios = append(s.Scenarios, suite.Scenario{Name: "Cancel Edit Program (Success)", Run: cancelInformationEdit})

	s.Run(t, open, reporter)
}

// TestEditProgramRequirements exercises the Program Requirements section
// Feature: Edit program requirements
//
//	Scenario Outline: Add or remove a requirement
//	  Given I opened the Program Requirements section of the configured program
//	  When I add a <variant> requirement or remove an existing one
//	  And I save the changes
//	  Then I should see "Success!"
func TestEditProgramRequirements(t *testing.T) {
	hooks := suite.DashboardHooks(suite.Programs)
	hooks.BeforeEach = suite.Steps(suite.NavigateTo(suite.Programs), openEdit, openRequirements)

	s := &suite.Suite{Name: "Edit Program (Program Requirements Section)", Hooks: hooks}

	add := func(base string, mod func(r *models.RequirementInput)) {
		r := fixtures.ValidRequirement(mod)
		s.Scenarios = append(s.Scenarios, suite.Scenario{
			Name: named(base, models.OutcomeSaved),
			Run:  editRequirements(models.EditRequirementsInput{Add: &r}),
		})
	}

	for _, ft := range models.FieldTypes {
		add("Add Requirement With "+string(ft)+" Field Type", func(r *models.RequirementInput) { r.FieldType = ft })
	}
	for _, ft := range []models.FieldType{models.FieldTypeRadioButton, models.FieldTypeSelection} {
		add("Add Requirement With Remove Value In "+string(ft)+" Field Type", func(r *models.RequirementInput) {
			r.FieldType = ft
			r.Values = []string{fixtures.Requirement.RadioValue}
			r.RemoveValue = true
		})
	}
	for _, target := range models.OrganizationTargets {
		add("Add Requirement With Organization Target "+string(target), func(r *models.RequirementInput) { r.OrganizationTarget = target })
	}
	for _, rt := range models.RequirementTypes {
		add("Add Requirement With Requirement Type "+string(rt), func(r *models.RequirementInput) { r.RequirementType = rt })
	}
	for _, vis := range models.VisibilityTypes {
		add("Add Requirement With Visibility Type "+string(vis), func(r *models.RequirementInput) { r.Visibility = vis })
	}
	add("Add Requirement With Remove Requirement", func(r *models.RequirementInput) { r.Remove = true })

	s.Scenarios = append(s.Scenarios,
		suite.Scenario{
			Name: named("Remove Requirement", models.OutcomeSaved),
			Run:  editRequirements(models.EditRequirementsInput{RemoveExisting: true}),
		},
		suite.Scenario{Name: "Cancel Edit Program Requirement (Success)", Run: cancelRequirementsEdit},
	)

	s.Run(t, open, reporter)
}

// TestEditProgramFeatures exercises the Program Features section
// Feature: Edit program features
//
//	Scenario Outline: Change one feature
//	  Given I opened the Program Features section of the configured program
//	  When I change <feature>
//	  And I save the changes
//	  Then I should see "Success!"
func TestEditProgramFeatures(t *testing.T) {
	hooks := suite.DashboardHooks(suite.Programs)
	hooks.BeforeEach = suite.Steps(suite.NavigateTo(suite.Programs), openEdit, openFeatures)

	purpose := fixtures.Requirement.PurposeName
	cases := []struct {
		name string
		in   models.EditProgramFeatures
	}{
		{"Edit Program Meeting Purpose Name", models.EditProgramFeatures{PurposeName: &purpose}},
		{"Add Program Meeting Purpose", models.EditProgramFeatures{AddPurpose: true, PurposeName: &purpose}},
		{"Add Program Meeting Purpose Then Remove", models.EditProgramFeatures{AddPurpose: true, PurposeName: &purpose, RemovePurpose: true}},
		{"Remove Program Meeting Purpose", models.EditProgramFeatures{RemovePurpose: true}},
		{"Edit Program Color", models.EditProgramFeatures{Color: models.String(fixtures.Colors.Secondary)}},
		{"Edit Program Visibility", models.EditProgramFeatures{ToggleVisibility: true}},
		{"Edit Program Matchmaking", models.EditProgramFeatures{ToggleMatchmaking: true}},
		{"Edit Program Notification", models.EditProgramFeatures{ToggleNotification: true}},
		{"Edit Program Sponsor", models.EditProgramFeatures{ToggleSponsor: true}},
	}

	s := &suite.Suite{Name: "Edit Program (Program Features Section)", Hooks: hooks}
	for _, c := range cases {
		s.Scenarios = append(s.Scenarios, suite.Scenario{
			Name: named(c.name, models.OutcomeSaved),
			Run:  editFeatures(c.in),
		})
	}
	s.Scenarios = append(s.Scenarios, suite.Scenario{Name: "Cancel Edit Program Features (Success)", Run: cancelFeaturesEdit})

	s.Run(t, open, reporter)
}
