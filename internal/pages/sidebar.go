package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Section is a sidebar entry of the dashboard
type Section struct {
	Link    string
	Heading string
}

// Sidebar sections
var (
	SectionOverview      = Section{Link: "overview", Heading: "Overview"}
	SectionPrograms      = Section{Link: "programs", Heading: "Programs"}
	SectionOrganizations = Section{Link: "organizations", Heading: "Organizations"}
)

// TestID is the data-testid of the section's sidebar link
func (s Section) TestID() string {
	return "sidebar-link-" + s.Link
}

// Sidebar navigates to one dashboard section
type Sidebar struct {
	base
	section Section
	link    playwright.Locator
}

// NewSidebar binds the link of section to page
func NewSidebar(page playwright.Page, section Section, timeoutMillis float64) *Sidebar {
	return &Sidebar{
		base:    newBase(page, timeoutMillis),
		section: section,
		link:    page.GetByTestId(section.TestID()),
	}
}

// GoTo clicks the sidebar link and waits for the section heading
func (s *Sidebar) GoTo() error {
	if err := click(s.link, fmt.Sprintf("sidebar link %q", s.section.Link)); err != nil {
		return err
	}
	return s.expectVisible(s.heading(s.section.Heading), s.section.Heading+" heading")
}
