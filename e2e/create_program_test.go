//go:build e2e

package e2e

import (
	"context"
	"testing"

	"github.com/seastartup/dashboard-e2e/internal/fixtures"
	"github.com/seastartup/dashboard-e2e/internal/models"
	"github.com/seastartup/dashboard-e2e/internal/suite"
)

// createCase is one submission of the create-program form
type createCase struct {
	name  string
	input models.ProgramInput
}

// createStep opens the form, fills in and expects the banner the slug rule
// predicts for it
func createStep(in models.ProgramInput, rule models.SlugRule) suite.Step {
	return func(ctx context.Context, f *suite.Fixtures) error {
		if err := f.CreateProgram.Open(); err != nil {
			return err
		}
		if err := f.CreateProgram.Fill(ctx, in); err != nil {
			return err
		}
		return f.CreateProgram.Submit(in.ExpectedOutcome(rule))
	}
}

func requirement(mod func(r *models.RequirementInput)) func(p *models.ProgramInput) {
	return func(p *models.ProgramInput) {
		p.Requirements = []models.RequirementInput{fixtures.ValidRequirement(mod)}
	}
}

func createCases() []createCase {
	valid := fixtures.ValidProgram
	cases := []createCase{
		{"Create Program Input All", valid(func(p *models.ProgramInput) {
			p.Visible = models.Bool(true)
			p.Matchmaking = models.Bool(true)
			p.Notification = models.Bool(true)
			p.Requirements = []models.RequirementInput{fixtures.ValidRequirement()}
		})},
		{"Create Program Without Name", valid(func(p *models.ProgramInput) { p.Name = fixtures.Empty.Name })},
		{"Create Program Without Short Name", valid(func(p *models.ProgramInput) { p.ShortName = fixtures.Empty.ShortName })},
		{"Create Program Without Slug", valid(func(p *models.ProgramInput) { p.Slug = fixtures.Empty.Slug })},
	}

	for n := 1; n <= 5; n++ {
		slug := fixtures.Characters.OfLength(n)
		cases = append(cases, createCase{
			"Create Program With Slug " + characters(n),
			valid(func(p *models.ProgramInput) { p.Slug = slug }),
		})
	}

	cases = append(cases,
		createCase{"Create Program Without Timezone", valid(func(p *models.ProgramInput) { p.Timezone = fixtures.Empty.Timezone })},
		createCase{"Create Program With Default Start Date", valid(func(p *models.ProgramInput) { p.StartDate = fixtures.Empty.Date })},
		createCase{"Create Program With Default End Date", valid(func(p *models.ProgramInput) { p.EndDate = fixtures.Empty.Date })},
		createCase{"Create Program With Default Revision Date", valid(func(p *models.ProgramInput) { p.RevisionDate = fixtures.Empty.Date })},
		createCase{"Create Program Without Location", valid(func(p *models.ProgramInput) { p.Location = fixtures.Empty.Location })},
		createCase{"Create Program Without Description", valid(func(p *models.ProgramInput) { p.Description = fixtures.Empty.Description })},
	)

	for _, typ := range models.ProgramTypes {
		cases = append(cases, createCase{
			"Create Program With Type " + title(string(typ)),
			valid(func(p *models.ProgramInput) { p.Type = typ }),
		})
	}
	for _, status := range models.ProgramStatuses {
		cases = append(cases, createCase{
			"Create Program With Status " + title(string(status)),
			valid(func(p *models.ProgramInput) { p.Status = status }),
		})
	}

	cases = append(cases,
		createCase{"Create Program With Visible To User is Visible", valid(func(p *models.ProgramInput) { p.Visible = models.Bool(true) })},
		createCase{"Create Program With Visible To User is Hidden", valid(func(p *models.ProgramInput) { p.Visible = models.Bool(false) })},
		createCase{"Create Program With Matchmaking Feature is Enabled", valid(func(p *models.ProgramInput) { p.Matchmaking = models.Bool(true) })},
		createCase{"Create Program With Matchmaking Feature is Disabled", valid(func(p *models.ProgramInput) { p.Matchmaking = models.Bool(false) })},
		createCase{"Create Program With Notification Feature is Enabled", valid(func(p *models.ProgramInput) { p.Notification = models.Bool(true) })},
		createCase{"Create Program With Notification Feature is Disabled", valid(func(p *models.ProgramInput) { p.Notification = models.Bool(false) })},
		createCase{"Create Program Without Logo", valid(func(p *models.ProgramInput) { p.Logo = false })},
		createCase{"Create Program Without Banner", valid(func(p *models.ProgramInput) { p.Banner = false })},
		createCase{"Create Program With Custom Colors", valid(func(p *models.ProgramInput) { p.Color = fixtures.Colors.Primary })},
	)

	for _, ft := range models.FieldTypes {
		cases = append(cases, createCase{
			"Create Program With Add Requirement " + string(ft) + " Field Type",
			valid(requirement(func(r *models.RequirementInput) { r.FieldType = ft })),
		})
	}
	for _, ft := range []models.FieldType{models.FieldTypeRadioButton, models.FieldTypeSelection} {
		cases = append(cases, createCase{
			"Create Program With Remove Value In " + string(ft) + " Field Type",
			valid(requirement(func(r *models.RequirementInput) {
				r.FieldType = ft
				r.Values = []string{fixtures.Requirement.RadioValue}
				r.RemoveValue = true
			})),
		})
	}
	for _, target := range models.OrganizationTargets {
		cases = append(cases, createCase{
			"Create Program With Organization Target " + string(target),
			valid(requirement(func(r *models.RequirementInput) { r.OrganizationTarget = target })),
		})
	}
	for _, rt := range models.RequirementTypes {
		cases = append(cases, createCase{
			"Create Program With Requirement Type " + string(rt),
			valid(requirement(func(r *models.RequirementInput) { r.RequirementType = rt })),
		})
	}
	for _, vis := range models.VisibilityTypes {
		cases = append(cases, createCase{
			"Create Program With Visibility Type " + string(vis),
			valid(requirement(func(r *models.RequirementInput) { r.Visibility = vis })),
		})
	}

	return append(cases,
		createCase{"Create Program With Requirement Remove", valid(requirement(func(r *models.RequirementInput) { r.Remove = true }))},
		createCase{"Create Program With Add Meeting Purpose", valid(func(p *models.ProgramInput) {
			p.Matchmaking = models.Bool(true)
			p.Purposes = []models.PurposeInput{{Name: "Business"}}
		})},
		createCase{"Create Program With Meeting Purpose Remove", valid(func(p *models.ProgramInput) {
			p.Matchmaking = models.Bool(true)
			p.Purposes = []models.PurposeInput{{Remove: true}}
		})},
		createCase{"Create Program With Add Member As Program Manager", valid(func(p *models.ProgramInput) { p.AddAsManager = true })},
	)
}

// TestCreatePrograms exercises the create-program form
// Feature: Create program
//
//	Scenario Outline: Submit the create form
//	  Given I am on the Programs list
//	  When I open "Create New Program"
//	  And I fill in the <variant> values
//	  And I submit the form
//	  Then I should see the banner predicted for the values
//	  And leftover "Test Program" records are deleted afterwards
func TestCreatePrograms(t *testing.T) {
	hooks := suite.DashboardHooks(suite.Programs)
	hooks.BeforeAll = suite.Steps(suite.SignIn, deleteTestPrograms)
	hooks.AfterEach = suite.Steps(suite.Reload, deleteTestPrograms)
	hooks.AfterAll = suite.Steps(deleteTestPrograms, suite.SignOut)

	s := &suite.Suite{
		Name:  "Create Programs",
		Hooks: hooks,
		Scenarios: []suite.Scenario{
			{Name: "Go To Programs", Run: suite.NavigateTo(suite.Programs)},
		},
	}
	for _, c := range createCases() {
		s.Scenarios = append(s.Scenarios, suite.Scenario{
			Name: named(c.name, c.input.ExpectedOutcome(cfg.SlugRule)),
			Run:  createStep(c.input, cfg.SlugRule),
		})
	}
	s.Scenarios = append(s.Scenarios, suite.Scenario{
		Name: named("Create Program Without Input All", models.OutcomeNameRequired),
		Run: func(ctx context.Context, f *suite.Fixtures) error {
			if err := f.CreateProgram.Open(); err != nil {
				return err
			}
			return f.CreateProgram.SubmitNameFailed()
		},
	})

	s.Run(t, open, reporter)
}
