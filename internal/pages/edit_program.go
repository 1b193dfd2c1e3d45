package pages

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// EditProgram is the Edit Program screen reached from a program card
type EditProgram struct {
	programForm
	requirements requirementForm
	purposes     purposeForm

	configure    playwright.Locator
	detail       playwright.Locator
	save         playwright.Locator
	cancel       playwright.Locator
	saved        playwright.Locator
	visible      playwright.Locator
	matchmaking  playwright.Locator
	notification playwright.Locator
	sponsor      playwright.Locator
}

// NewEditProgram binds the edit screen to page
func NewEditProgram(page playwright.Page, images ImageSource, timeoutMillis float64) *EditProgram {
	b := newBase(page, timeoutMillis)
	location := page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{Name: "Location"})
	return &EditProgram{
		programForm:  newProgramForm(b, images, location),
		requirements: newRequirementForm(b),
		purposes:     newPurposeForm(b),
		configure:    page.GetByTestId("dropdown-configure-program"),
		detail:       page.GetByTestId("dropdown-program-detail"),
		save:         b.button("Save Changes"),
		cancel:       b.button("Cancel"),
		saved:        page.GetByRole(*playwright.AriaRoleMain).GetByText(models.OutcomeSaved.Banner()),
		visible: page.GetByRole(*playwright.AriaRoleSwitch, playwright.PageGetByRoleOptions{
			Name: "Visible",
		}),
		matchmaking:  page.Locator("#matchmaking"),
		notification: page.Locator("#notification-feature"),
		sponsor: page.GetByRole(*playwright.AriaRoleSwitch, playwright.PageGetByRoleOptions{
			Name: "Sponsor",
		}),
	}
}

// CardTestID is the data-testid of the program card for slug
func CardTestID(slug string) string {
	return "card-program-" + slug
}

// Open opens the edit form of the program with slug from the Programs list
func (e *EditProgram) Open(slug string) error {
	if err := click(e.page.GetByTestId(CardTestID(slug)), "program card "+slug); err != nil {
		return err
	}
	if err := click(e.configure, "configure program"); err != nil {
		return err
	}
	if err := click(e.detail, "program detail"); err != nil {
		return err
	}
	return e.expectVisible(e.heading("Edit Program"), "edit program heading")
}

func (e *EditProgram) openTab(name string, ready playwright.Locator) error {
	tab := e.page.GetByRole(*playwright.AriaRoleTab, playwright.PageGetByRoleOptions{Name: name})
	if err := click(tab, name+" tab"); err != nil {
		return err
	}
	return e.expectVisible(ready, name+" section")
}

// OpenRequirements switches the open edit form to Program Requirements
func (e *EditProgram) OpenRequirements() error {
	return e.openTab("Program Requirements", e.requirements.add)
}

// OpenFeatures switches the open edit form to Program Features
func (e *EditProgram) OpenFeatures() error {
	return e.openTab("Program Features", e.purposes.add)
}

// EditInformation applies a sparse update to the General Information section
func (e *EditProgram) EditInformation(ctx context.Context, in models.EditProgramInput) error {
	for _, f := range []struct {
		value *string
		l     playwright.Locator
		what  string
	}{
		{in.Name, e.name, "program name"},
		{in.ShortName, e.shortName, "program short name"},
		{in.Slug, e.slug, "program slug"},
		{in.Location, e.location, "program location"},
		{in.Description, e.description, "program description"},
	} {
		if f.value == nil {
			continue
		}
		if err := fill(f.l, *f.value, f.what); err != nil {
			return err
		}
	}
	if in.Timezone != nil {
		if err := e.pickTimezone(*in.Timezone); err != nil {
			return err
		}
	}
	if err := e.dates(in.StartDate, in.EndDate, in.RevisionDate); err != nil {
		return err
	}
	if err := e.programType(in.Type); err != nil {
		return err
	}
	if err := e.programStatus(in.Status); err != nil {
		return err
	}
	return e.uploadImages(ctx, in.Logo, in.Banner)
}

// EditRequirements applies an update to the Program Requirements section
func (e *EditProgram) EditRequirements(in models.EditRequirementsInput) error {
	if in.RemoveExisting {
		if err := e.requirements.removeFirst(); err != nil {
			return err
		}
	}
	if in.Add != nil {
		return e.requirements.addRequirement(*in.Add)
	}
	return nil
}

// EditFeatures applies an update to the Program Features section. Without
// AddPurpose the purpose name renames the last existing purpose.
func (e *EditProgram) EditFeatures(in models.EditProgramFeatures) error {
	if in.AddPurpose {
		if err := click(e.purposes.add, "add purpose"); err != nil {
			return err
		}
	}
	if in.PurposeName != nil {
		if err := fill(e.purposes.name, *in.PurposeName, "meeting purpose"); err != nil {
			return err
		}
	}
	if in.RemovePurpose {
		if err := click(e.purposes.remove, "remove purpose"); err != nil {
			return err
		}
	}
	if in.Color != nil {
		if err := fill(e.color, *in.Color, "program color"); err != nil {
			return err
		}
	}
	for _, t := range []struct {
		on   bool
		l    playwright.Locator
		what string
	}{
		{in.ToggleVisibility, e.visible, "visibility"},
		{in.ToggleMatchmaking, e.matchmaking, "matchmaking"},
		{in.ToggleNotification, e.notification, "notification"},
		{in.ToggleSponsor, e.sponsor, "sponsor"},
	} {
		if !t.on {
			continue
		}
		if err := click(t.l, t.what); err != nil {
			return err
		}
	}
	return nil
}

// Submit saves the changes and expects the banner of want
func (e *EditProgram) Submit(want models.Outcome) error {
	if err := click(e.save, "save changes"); err != nil {
		return err
	}
	if want == models.OutcomeSaved {
		return e.expectVisible(e.saved, "saved banner")
	}
	banner := want.Banner()
	if banner == "" {
		return fmt.Errorf("no banner for outcome %q", want)
	}
	return e.expectVisible(e.page.GetByText(banner).First(), fmt.Sprintf("%s banner", want))
}

// SubmitSuccess saves and expects the success banner
func (e *EditProgram) SubmitSuccess() error {
	return e.Submit(models.OutcomeSaved)
}

// SubmitFailed saves and expects the slug validation banner
func (e *EditProgram) SubmitFailed() error {
	return e.Submit(models.OutcomeSlugTooShort)
}

// ExpectNameDiscarded asserts the open form does not show name
func (e *EditProgram) ExpectNameDiscarded(name string) error {
	return e.expectValueNot(e.name, name, "program name")
}

// ExpectColorDiscarded asserts the open features section does not show color
func (e *EditProgram) ExpectColorDiscarded(color string) error {
	return e.expectValueNot(e.color, color, "program color")
}

// RequirementCount counts the requirement cards of the open requirements
// section
func (e *EditProgram) RequirementCount() (int, error) {
	n, err := e.requirements.label.Count()
	if err != nil {
		return 0, fmt.Errorf("count requirements: %w", err)
	}
	return n, nil
}

// ExpectRequirementCount asserts the open requirements section lists n
// requirements
func (e *EditProgram) ExpectRequirementCount(n int) error {
	return e.expectCount(e.requirements.label, n, "requirements")
}

// Cancel leaves the form without saving and expects the Programs list with
// no success banner
func (e *EditProgram) Cancel() error {
	if err := click(e.cancel, "cancel"); err != nil {
		return err
	}
	if err := e.expectVisible(e.heading(SectionPrograms.Heading), "programs heading"); err != nil {
		return err
	}
	return e.expectCount(e.saved, 0, "saved banners")
}
