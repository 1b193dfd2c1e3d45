// Package pages wraps the dashboard screens in page objects. Every action
// performs a fixed interaction sequence, asserts its visible post-condition
// and returns an error instead of retrying.
package pages

import (
	"context"
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// ImageSource provides local image files for upload inputs
type ImageSource interface {
	Download(ctx context.Context) (string, error)
}

type base struct {
	page   playwright.Page
	expect playwright.PlaywrightAssertions
}

func newBase(page playwright.Page, timeoutMillis float64) base {
	return base{
		page:   page,
		expect: playwright.NewPlaywrightAssertions(timeoutMillis),
	}
}

func (b base) expectVisible(l playwright.Locator, what string) error {
	if err := b.expect.Locator(l).ToBeVisible(); err != nil {
		return fmt.Errorf("%s not visible: %w", what, err)
	}
	return nil
}

func (b base) expectCount(l playwright.Locator, n int, what string) error {
	if err := b.expect.Locator(l).ToHaveCount(n); err != nil {
		return fmt.Errorf("expected %d %s: %w", n, what, err)
	}
	return nil
}

func (b base) expectValueNot(l playwright.Locator, value, what string) error {
	if err := b.expect.Locator(l).Not().ToHaveValue(value); err != nil {
		return fmt.Errorf("%s still shows %q: %w", what, value, err)
	}
	return nil
}

func (b base) heading(name string) playwright.Locator {
	return b.page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
		Name:  name,
		Exact: playwright.Bool(true),
	})
}

func (b base) button(name string) playwright.Locator {
	return b.page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: name})
}

// radioIn finds the radio inside the div whose whole text is label
func (b base) radioIn(label string) playwright.Locator {
	return b.page.Locator("div").
		Filter(playwright.LocatorFilterOptions{HasText: exactText(label)}).
		GetByRole(*playwright.AriaRoleRadio)
}

// dismiss clicks the page background to close open popovers
func (b base) dismiss() error {
	return click(b.page.Locator("html"), "page background")
}

func click(l playwright.Locator, what string) error {
	if err := l.Click(); err != nil {
		return fmt.Errorf("click %s: %w", what, err)
	}
	return nil
}

func fill(l playwright.Locator, value, what string) error {
	if err := l.Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", what, err)
	}
	return nil
}

// setSwitch drives a switch to the wanted state, clicking only when needed
func setSwitch(l playwright.Locator, on bool, what string) error {
	checked, err := switchState(l)
	if err != nil {
		return fmt.Errorf("read %s: %w", what, err)
	}
	if checked == on {
		return nil
	}
	return click(l, what)
}

func switchState(l playwright.Locator) (bool, error) {
	v, err := l.GetAttribute("aria-checked")
	if err != nil {
		return false, err
	}
	if v == "" {
		if v, err = l.GetAttribute("data-state"); err != nil {
			return false, err
		}
	}
	return isOn(v), nil
}

func isOn(attr string) bool {
	return attr == "true" || attr == "checked"
}

func exactText(s string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(s) + "$")
}

func prefixText(s string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(s))
}
