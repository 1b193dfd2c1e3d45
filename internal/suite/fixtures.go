package suite

import (
	"github.com/charmbracelet/log"
	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/browser"
	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/pages"
)

// Fixtures are the page objects of one suite, all bound to its shared page
type Fixtures struct {
	Config *config.SuiteConfig
	Logger *log.Logger

	Session *browser.Session
	Page    playwright.Page

	Login  *pages.Login
	Logout *pages.Logout

	Overview      *pages.Sidebar
	Programs      *pages.Sidebar
	Organizations *pages.Sidebar

	CreateProgram *pages.CreateProgram
	EditProgram   *pages.EditProgram
	DeleteProgram *pages.DeleteProgram
}

// NewFixtures builds every page object on the session's page
func NewFixtures(session *browser.Session, cfg *config.SuiteConfig, images pages.ImageSource, logger *log.Logger) *Fixtures {
	page := session.Page
	timeout := cfg.TimeoutMillis()
	return &Fixtures{
		Config:        cfg,
		Logger:        logger,
		Session:       session,
		Page:          page,
		Login:         pages.NewLogin(page, timeout),
		Logout:        pages.NewLogout(page, timeout),
		Overview:      pages.NewSidebar(page, pages.SectionOverview, timeout),
		Programs:      pages.NewSidebar(page, pages.SectionPrograms, timeout),
		Organizations: pages.NewSidebar(page, pages.SectionOrganizations, timeout),
		CreateProgram: pages.NewCreateProgram(page, images, timeout),
		EditProgram:   pages.NewEditProgram(page, images, timeout),
		DeleteProgram: pages.NewDeleteProgram(page, timeout),
	}
}

// SignIn opens the sign-in page and logs in with the configured account
func (f *Fixtures) SignIn() error {
	if err := f.Session.Goto("/signin"); err != nil {
		return err
	}
	return f.Login.Login(f.Config.Email, f.Config.Password)
}

func (f *Fixtures) screenshot(scenario string) {
	if f.Session == nil {
		return
	}
	if _, err := f.Session.Screenshot(scenario); err != nil {
		f.logger().Error("screenshot failed", "scenario", scenario, "err", err)
	}
}

func (f *Fixtures) close() error {
	if f.Session == nil {
		return nil
	}
	return f.Session.Close()
}

func (f *Fixtures) logger() *log.Logger {
	if f.Logger == nil {
		return log.Default()
	}
	return f.Logger
}
