package pages

import (
	"regexp"

	"github.com/playwright-community/playwright-go"
)

const (
	signInHeading   = "Sign in to your account"
	overviewHeading = "Overview"
)

// Login is the sign-in screen
type Login struct {
	base
	email    playwright.Locator
	password playwright.Locator
	submit   playwright.Locator
}

// NewLogin binds the sign-in screen to page
func NewLogin(page playwright.Page, timeoutMillis float64) *Login {
	return &Login{
		base:     newBase(page, timeoutMillis),
		email:    page.GetByTestId("signin-email-input"),
		password: page.GetByTestId("signin-password-input"),
		submit:   page.GetByTestId("signin-submit"),
	}
}

// Login signs in and waits for the Overview dashboard
func (l *Login) Login(email, password string) error {
	if err := l.expectVisible(l.page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
		Name: signInHeading,
	}), "sign-in heading"); err != nil {
		return err
	}
	if err := fill(l.email, email, "email"); err != nil {
		return err
	}
	if err := fill(l.password, password, "password"); err != nil {
		return err
	}
	if err := click(l.submit, "sign-in button"); err != nil {
		return err
	}
	return l.expectVisible(l.heading(overviewHeading), "overview heading")
}

var profileButtonName = regexp.MustCompile(`Profile Picture$`)

// Logout is the profile menu of the dashboard header
type Logout struct {
	base
	profile playwright.Locator
	signout playwright.Locator
}

// NewLogout binds the profile menu to page
func NewLogout(page playwright.Page, timeoutMillis float64) *Logout {
	return &Logout{
		base: newBase(page, timeoutMillis),
		profile: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
			Name: profileButtonName,
		}),
		signout: page.GetByRole(*playwright.AriaRoleMenuitem, playwright.PageGetByRoleOptions{
			Name: "Signout",
		}),
	}
}

// Logout signs out through the profile menu and waits for the sign-in screen
func (l *Logout) Logout() error {
	if err := click(l.profile, "profile menu"); err != nil {
		return err
	}
	if err := click(l.signout, "signout"); err != nil {
		return err
	}
	return l.expectVisible(l.page.GetByRole(*playwright.AriaRoleHeading, playwright.PageGetByRoleOptions{
		Name: signInHeading,
	}), "sign-in heading")
}
