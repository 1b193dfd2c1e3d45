package pages

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// CreateProgram is the Create New Program form of the Programs section
type CreateProgram struct {
	programForm
	requirements requirementForm
	purposes     purposeForm

	open         playwright.Locator
	visible      playwright.Locator
	matchmaking  playwright.Locator
	notification playwright.Locator
	manager      playwright.Locator
	submit       playwright.Locator
}

// NewCreateProgram binds the create form to page. images supplies the logo
// and banner uploads.
func NewCreateProgram(page playwright.Page, images ImageSource, timeoutMillis float64) *CreateProgram {
	b := newBase(page, timeoutMillis)
	return &CreateProgram{
		programForm:  newProgramForm(b, images, page.GetByTestId("program-location-input")),
		requirements: newRequirementForm(b),
		purposes:     newPurposeForm(b),
		open:         page.GetByTestId("button-create-program"),
		visible: page.GetByRole(*playwright.AriaRoleSwitch, playwright.PageGetByRoleOptions{
			Name: "Visible",
		}),
		matchmaking:  page.Locator("#matchmaking"),
		notification: page.Locator("#notification-feature"),
		manager: page.GetByRole(*playwright.AriaRoleSwitch, playwright.PageGetByRoleOptions{
			Name: "Toggle add as program manager",
		}).First(),
		submit: page.GetByTestId("button-submit-create-program"),
	}
}

// Open opens the create form from the Programs list
func (c *CreateProgram) Open() error {
	if err := click(c.open, "create program"); err != nil {
		return err
	}
	return c.expectVisible(c.heading("Create New Program"), "create program heading")
}

// Fill types every field of in into the open form. Name, short name and
// slug are always written; optional fields left at their zero value are
// skipped.
func (c *CreateProgram) Fill(ctx context.Context, in models.ProgramInput) error {
	if err := fill(c.name, in.Name, "program name"); err != nil {
		return err
	}
	if err := fill(c.shortName, in.ShortName, "program short name"); err != nil {
		return err
	}
	if err := fill(c.slug, in.Slug, "program slug"); err != nil {
		return err
	}
	if in.Timezone != "" {
		if err := c.pickTimezone(in.Timezone); err != nil {
			return err
		}
	}
	if err := c.dates(in.StartDate, in.EndDate, in.RevisionDate); err != nil {
		return err
	}
	if in.Location != "" {
		if err := fill(c.location, in.Location, "program location"); err != nil {
			return err
		}
	}
	if in.Description != "" {
		if err := fill(c.description, in.Description, "program description"); err != nil {
			return err
		}
	}
	if err := c.programType(in.Type); err != nil {
		return err
	}
	if err := c.programStatus(in.Status); err != nil {
		return err
	}
	if err := c.switches(in); err != nil {
		return err
	}
	if err := c.uploadImages(ctx, in.Logo, in.Banner); err != nil {
		return err
	}
	if in.Color != "" {
		if err := fill(c.color, in.Color, "program color"); err != nil {
			return err
		}
	}
	for _, r := range in.Requirements {
		if err := c.AddRequirement(r); err != nil {
			return err
		}
	}
	for _, p := range in.Purposes {
		if err := c.AddPurpose(p); err != nil {
			return err
		}
	}
	if in.AddAsManager {
		return click(c.manager, "add as program manager")
	}
	return nil
}

func (c *CreateProgram) switches(in models.ProgramInput) error {
	for _, s := range []struct {
		want *bool
		l    playwright.Locator
		what string
	}{
		{in.Visible, c.visible, "visibility"},
		{in.Matchmaking, c.matchmaking, "matchmaking"},
		{in.Notification, c.notification, "notification"},
	} {
		if s.want == nil {
			continue
		}
		if err := setSwitch(s.l, *s.want, s.what); err != nil {
			return err
		}
	}
	return nil
}

// AddRequirement adds one registration requirement and checks it in the
// form preview
func (c *CreateProgram) AddRequirement(r models.RequirementInput) error {
	return c.requirements.addRequirement(r)
}

// AddPurpose adds one meeting purpose, removing it again when p.Remove is set
func (c *CreateProgram) AddPurpose(p models.PurposeInput) error {
	return c.purposes.addPurpose(p)
}

// RemoveRequirement adds an empty requirement card and removes it
func (c *CreateProgram) RemoveRequirement() error {
	if err := click(c.requirements.add, "add requirement"); err != nil {
		return err
	}
	return click(c.requirements.remove, "remove requirement")
}

// Submit submits the form and expects the banner of want
func (c *CreateProgram) Submit(want models.Outcome) error {
	banner := want.Banner()
	if banner == "" {
		return fmt.Errorf("no banner for outcome %q", want)
	}
	if err := click(c.submit, "submit program"); err != nil {
		return err
	}
	return c.expectVisible(c.page.GetByText(banner).First(), fmt.Sprintf("%s banner", want))
}

// SubmitSuccess submits and expects the created banner
func (c *CreateProgram) SubmitSuccess() error {
	return c.Submit(models.OutcomeCreated)
}

// SubmitNameFailed submits and expects the name validation banner
func (c *CreateProgram) SubmitNameFailed() error {
	return c.Submit(models.OutcomeNameRequired)
}

// SubmitSlugFailed submits and expects the slug validation banner
func (c *CreateProgram) SubmitSlugFailed() error {
	return c.Submit(models.OutcomeSlugTooShort)
}

// SubmitError submits and expects the generic error banner
func (c *CreateProgram) SubmitError() error {
	return c.Submit(models.OutcomeError)
}
