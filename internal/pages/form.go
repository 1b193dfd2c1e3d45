package pages

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/fixtures"
	"github.com/seastartup/dashboard-e2e/internal/models"
)

// maxMonthsAhead bounds the date picker navigation
const maxMonthsAhead = 24

// programForm holds the general information controls shared by the create
// and edit screens
type programForm struct {
	base
	images ImageSource

	name        playwright.Locator
	shortName   playwright.Locator
	slug        playwright.Locator
	timezone    playwright.Locator
	location    playwright.Locator
	description playwright.Locator
	nextMonth   playwright.Locator
	logo        playwright.Locator
	banner      playwright.Locator
	color       playwright.Locator
}

func newProgramForm(b base, images ImageSource, location playwright.Locator) programForm {
	page := b.page
	return programForm{
		base:        b,
		images:      images,
		name:        page.GetByTestId("program-name-input"),
		shortName:   page.GetByTestId("program-short-name-input"),
		slug:        page.GetByTestId("program-slug-input"),
		timezone:    page.GetByTestId("program-timezone-button"),
		location:    location,
		description: page.GetByTestId("program-description-input"),
		nextMonth:   b.button("Go to the Next Month"),
		logo:        b.button("Program Logo"),
		banner:      b.button("Program Banner"),
		color:       page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{Name: "Program Color"}),
	}
}

func (f programForm) pickTimezone(tz string) error {
	if err := click(f.timezone, "timezone picker"); err != nil {
		return err
	}
	return click(f.page.GetByTestId("timezone-item-"+tz), fmt.Sprintf("timezone %q", tz))
}

// pickDate opens the date picker behind testID and advances month by month
// until the day cell for day is shown
func (f programForm) pickDate(testID string, day time.Time) error {
	if err := click(f.page.GetByTestId(testID), testID); err != nil {
		return err
	}
	if err := f.expectVisible(f.nextMonth, "date picker"); err != nil {
		return err
	}

	name := fixtures.DayButtonName(day)
	cell := f.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: prefixText(name),
	}).First()

	for i := 0; i <= maxMonthsAhead; i++ {
		visible, err := cell.IsVisible()
		if err != nil {
			return fmt.Errorf("look up day %q: %w", name, err)
		}
		if visible {
			if err := click(cell, "day "+name); err != nil {
				return err
			}
			return f.dismiss()
		}
		if err := click(f.nextMonth, "next month"); err != nil {
			return err
		}
	}
	return fmt.Errorf("day %q not found within %d months", name, maxMonthsAhead)
}

func (f programForm) upload(ctx context.Context, target playwright.Locator, what string) error {
	if f.images == nil {
		return fmt.Errorf("upload %s: no image source", what)
	}
	path, err := f.images.Download(ctx)
	if err != nil {
		return fmt.Errorf("upload %s: %w", what, err)
	}
	if err := target.SetInputFiles(path); err != nil {
		return fmt.Errorf("upload %s: %w", what, err)
	}
	return nil
}

func (f programForm) dates(start, end, revision time.Time) error {
	for _, d := range []struct {
		testID string
		day    time.Time
	}{
		{"program-start-date", start},
		{"program-end-date", end},
		{"program-revision-end-date", revision},
	} {
		if d.day.IsZero() {
			continue
		}
		if err := f.pickDate(d.testID, d.day); err != nil {
			return err
		}
	}
	return nil
}

func (f programForm) programType(t models.ProgramType) error {
	if t == "" {
		return nil
	}
	return click(f.page.GetByTestId("program-type-"+string(t)), "program type "+string(t))
}

func (f programForm) programStatus(s models.ProgramStatus) error {
	if s == "" {
		return nil
	}
	return click(f.page.GetByTestId("program-status-"+string(s)), "program status "+string(s))
}

func (f programForm) uploadImages(ctx context.Context, logo, banner bool) error {
	if logo {
		if err := f.upload(ctx, f.logo, "logo"); err != nil {
			return err
		}
	}
	if banner {
		if err := f.upload(ctx, f.banner, "banner"); err != nil {
			return err
		}
	}
	return nil
}

// requirementForm drives the registration requirement builder
type requirementForm struct {
	base
	add          playwright.Locator
	label        playwright.Locator
	value        playwright.Locator
	removeValue  playwright.Locator
	preview      playwright.Locator
	previewTitle playwright.Locator
	closePreview playwright.Locator
	remove       playwright.Locator
}

func newRequirementForm(b base) requirementForm {
	page := b.page
	return requirementForm{
		base: b,
		add:  b.button("Add Requirement"),
		label: page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
			Name:  "Label",
			Exact: playwright.Bool(true),
		}),
		value: page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
			Name: "Radio button value",
		}).Last(),
		removeValue: page.Locator("#radio-selection-value-0").
			GetByRole(*playwright.AriaRoleButton).Last(),
		preview: b.button("Registration Form Preview"),
		previewTitle: page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
			Name: "Registration Form Preview",
		}),
		closePreview: page.Locator("div").
			Filter(playwright.LocatorFilterOptions{HasText: exactText("CloseView As all organization")}).
			GetByRole(*playwright.AriaRoleButton),
		remove: b.button("Remove"),
	}
}

// addRequirement fills a new requirement, checks it in the preview and
// optionally removes it again
func (f requirementForm) addRequirement(r models.RequirementInput) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("requirement %q: %w", r.Label, err)
	}
	if err := click(f.add, "add requirement"); err != nil {
		return err
	}
	if err := fill(f.label, r.Label, "requirement label"); err != nil {
		return err
	}
	if err := click(f.radioIn(string(r.FieldType)), "field type "+string(r.FieldType)); err != nil {
		return err
	}
	target := f.page.GetByRole(*playwright.AriaRoleCheckbox, playwright.PageGetByRoleOptions{
		Name: string(r.OrganizationTarget),
	})
	if err := click(target, "organization target "+string(r.OrganizationTarget)); err != nil {
		return err
	}
	if err := click(f.radioIn(string(r.RequirementType)), "requirement type "+string(r.RequirementType)); err != nil {
		return err
	}
	if err := click(f.radioIn(string(r.Visibility)), "visibility "+string(r.Visibility)); err != nil {
		return err
	}

	if r.FieldType.NeedsValues() {
		addValue := f.button(r.FieldType.AddValueLabel())
		for _, v := range r.Values {
			if err := click(addValue, r.FieldType.AddValueLabel()); err != nil {
				return err
			}
			if err := fill(f.value, v, "requirement value"); err != nil {
				return err
			}
		}
		if r.RemoveValue {
			if err := click(f.removeValue, "remove value"); err != nil {
				return err
			}
		}
	}

	if err := click(f.preview, "registration form preview"); err != nil {
		return err
	}
	if err := f.expectVisible(f.previewTitle, "registration form preview"); err != nil {
		return err
	}
	if err := click(f.closePreview, "close preview"); err != nil {
		return err
	}

	if r.Remove {
		return click(f.remove, "remove requirement")
	}
	return nil
}

// removeFirst deletes the first requirement card on the form
func (f requirementForm) removeFirst() error {
	return click(f.remove.First(), "remove requirement")
}

// purposeForm drives the matchmaking meeting purposes
type purposeForm struct {
	base
	add    playwright.Locator
	name   playwright.Locator
	remove playwright.Locator
}

func newPurposeForm(b base) purposeForm {
	return purposeForm{
		base: b,
		add:  b.button("Add Purpose"),
		name: b.page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
			Name: "Enter meeting purpose",
		}).Last(),
		remove: b.page.Locator("button:has(svg.lucide.lucide-trash2)").Last(),
	}
}

func (f purposeForm) addPurpose(p models.PurposeInput) error {
	if err := click(f.add, "add purpose"); err != nil {
		return err
	}
	if p.Name != "" {
		if err := fill(f.name, p.Name, "meeting purpose"); err != nil {
			return err
		}
	}
	if p.Remove {
		return click(f.remove, "remove purpose")
	}
	return nil
}
