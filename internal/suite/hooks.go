package suite

import (
	"context"

	"github.com/seastartup/dashboard-e2e/internal/pages"
)

// SignIn opens /signin and logs in with the configured account
func SignIn(ctx context.Context, f *Fixtures) error {
	return f.SignIn()
}

// SignOut logs out through the profile menu
func SignOut(ctx context.Context, f *Fixtures) error {
	return f.Logout.Logout()
}

// Reload reloads the shared page
func Reload(ctx context.Context, f *Fixtures) error {
	return f.Session.Reload()
}

// NavigateTo returns a step clicking the sidebar link picked from f
func NavigateTo(section func(f *Fixtures) *pages.Sidebar) Step {
	return func(ctx context.Context, f *Fixtures) error {
		return section(f).GoTo()
	}
}

// Steps runs steps in order and stops at the first error
func Steps(steps ...Step) Step {
	return func(ctx context.Context, f *Fixtures) error {
		for _, step := range steps {
			if err := call(ctx, step, f); err != nil {
				return err
			}
		}
		return nil
	}
}

// DashboardHooks are the hooks shared by the dashboard suites: sign in once,
// open section before each scenario, reload after it and sign out at the end
func DashboardHooks(section func(f *Fixtures) *pages.Sidebar) Hooks {
	return Hooks{
		BeforeAll:  SignIn,
		BeforeEach: NavigateTo(section),
		AfterEach:  Reload,
		AfterAll:   SignOut,
	}
}

// Sidebar pickers for DashboardHooks and NavigateTo
var (
	Overview      = func(f *Fixtures) *pages.Sidebar { return f.Overview }
	Programs      = func(f *Fixtures) *pages.Sidebar { return f.Programs }
	Organizations = func(f *Fixtures) *pages.Sidebar { return f.Organizations }
)
