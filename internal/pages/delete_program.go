package pages

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// maxDeletes bounds DeleteAll against a list that never shrinks
const maxDeletes = 50

// DeleteProgram removes programs through the configure dropdown of their card
type DeleteProgram struct {
	base
	programs  *Sidebar
	configure playwright.Locator
	delete    playwright.Locator
	confirm   playwright.Locator
	submit    playwright.Locator
	deleted   playwright.Locator
}

// NewDeleteProgram binds the delete flow to page
func NewDeleteProgram(page playwright.Page, timeoutMillis float64) *DeleteProgram {
	return &DeleteProgram{
		base:      newBase(page, timeoutMillis),
		programs:  NewSidebar(page, SectionPrograms, timeoutMillis),
		configure: page.GetByTestId("dropdown-configure-program"),
		delete:    page.GetByTestId("dropdown-program-delete"),
		confirm:   page.GetByTestId("program-delete-name-input"),
		submit:    page.GetByTestId("program-delete-submit"),
		deleted:   page.GetByText(models.OutcomeDeleted.Banner()),
	}
}

// cards matches the program cards showing exactly name
func (d *DeleteProgram) cards(name string) playwright.Locator {
	return d.page.Locator("[data-testid^='card-program-']").Filter(playwright.LocatorFilterOptions{
		Has: d.page.GetByText(name, playwright.PageGetByTextOptions{Exact: playwright.Bool(true)}),
	})
}

// DeleteAll deletes every program card named name and returns how many were
// deleted. It starts and ends on the Programs list and stops before the next
// card once ctx is done.
func (d *DeleteProgram) DeleteAll(ctx context.Context, name string) (int, error) {
	deleted := 0
	for deleted < maxDeletes {
		if err := ctx.Err(); err != nil {
			return deleted, err
		}
		if err := d.programs.GoTo(); err != nil {
			return deleted, err
		}
		cards := d.cards(name)
		n, err := cards.Count()
		if err != nil {
			return deleted, fmt.Errorf("count %q cards: %w", name, err)
		}
		if n == 0 {
			return deleted, nil
		}
		if err := d.deleteCard(cards.First(), name); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, fmt.Errorf("%q still listed after %d deletes", name, maxDeletes)
}

func (d *DeleteProgram) deleteCard(card playwright.Locator, name string) error {
	if err := click(card, "program card "+name); err != nil {
		return err
	}
	if err := click(d.configure, "configure program"); err != nil {
		return err
	}
	if err := click(d.delete, "delete program"); err != nil {
		return err
	}
	if err := fill(d.confirm, name, "delete confirmation"); err != nil {
		return err
	}
	if err := click(d.submit, "confirm delete"); err != nil {
		return err
	}
	return d.expectVisible(d.deleted.First(), "deleted banner")
}

// ExpectAbsent asserts that no card named name is listed
func (d *DeleteProgram) ExpectAbsent(name string) error {
	if err := d.programs.GoTo(); err != nil {
		return err
	}
	return d.expectCount(d.cards(name), 0, fmt.Sprintf("%q cards", name))
}
