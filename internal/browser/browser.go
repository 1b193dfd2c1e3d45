// Package browser owns the Playwright driver, the launched browser and the
// per-suite context and page.
package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/playwright-community/playwright-go"

	"github.com/seastartup/dashboard-e2e/internal/config"
)

// Viewport every suite page is opened with
var Viewport = playwright.Size{Width: 1280, Height: 720}

// Runtime is a running Playwright driver with one launched browser
type Runtime struct {
	Browser playwright.Browser

	pw     *playwright.Playwright
	cfg    *config.SuiteConfig
	logger *log.Logger
}

// Install downloads the driver and the named browsers
func Install(browsers ...string) error {
	if len(browsers) == 0 {
		browsers = []string{config.BrowserChromium}
	}
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("could not install playwright browsers: %w", err)
	}
	return nil
}

// Start runs the driver and launches the configured browser
func Start(cfg *config.SuiteConfig, logger *log.Logger) (*Runtime, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browserType, err := browserTypeFor(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(LaunchOptions(cfg))
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", cfg.Browser, err)
	}

	logger.Info("browser launched", "browser", cfg.Browser, "headless", cfg.Headless, "version", b.Version())

	return &Runtime{
		Browser: b,
		pw:      pw,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func browserTypeFor(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// LaunchOptions maps the suite config onto browser launch options
func LaunchOptions(cfg *config.SuiteConfig) playwright.BrowserTypeLaunchOptions {
	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}
	return opts
}

// ContextOptions maps the suite config onto browser context options
func ContextOptions(cfg *config.SuiteConfig) playwright.BrowserNewContextOptions {
	viewport := Viewport
	return playwright.BrowserNewContextOptions{
		BaseURL:  playwright.String(cfg.BaseURL),
		Viewport: &viewport,
	}
}

// NewSession opens a fresh context and page for one suite
func (r *Runtime) NewSession(name string) (*Session, error) {
	ctx, err := r.Browser.NewContext(ContextOptions(r.cfg))
	if err != nil {
		return nil, fmt.Errorf("could not create context: %w", err)
	}
	ctx.SetDefaultTimeout(r.cfg.TimeoutMillis())

	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("could not create page: %w", err)
	}
	page.SetDefaultTimeout(r.cfg.TimeoutMillis())

	return &Session{
		Name:    name,
		Context: ctx,
		Page:    page,
		cfg:     r.cfg,
		logger:  r.logger.WithPrefix(name),
	}, nil
}

// Stop closes the browser and the driver
func (r *Runtime) Stop() error {
	var errs []error
	if r.Browser != nil {
		if err := r.Browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("could not close browser: %w", err))
		}
	}
	if r.pw != nil {
		if err := r.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("could not stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Session is the context and page shared by the scenarios of one suite
type Session struct {
	Name    string
	Context playwright.BrowserContext
	Page    playwright.Page

	cfg    *config.SuiteConfig
	logger *log.Logger
}

// Goto navigates to a path relative to the base URL
func (s *Session) Goto(path string) error {
	if _, err := s.Page.Goto(s.cfg.URL(path)); err != nil {
		return fmt.Errorf("could not navigate to %s: %w", path, err)
	}
	return nil
}

// Reload reloads the current page
func (s *Session) Reload() error {
	if _, err := s.Page.Reload(); err != nil {
		return fmt.Errorf("could not reload page: %w", err)
	}
	return nil
}

// Screenshot saves a full-page screenshot named after the scenario when
// screenshots are enabled, and returns its path
func (s *Session) Screenshot(scenario string) (string, error) {
	if !s.cfg.Screenshots {
		return "", nil
	}

	path := ScreenshotPath(s.cfg.ArtifactDir, s.Name, scenario, time.Now())
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("could not create screenshot directory: %w", err)
	}

	if _, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("could not take screenshot: %w", err)
	}

	s.logger.Warn("screenshot saved", "scenario", scenario, "path", path)
	return path, nil
}

// Close closes the session's context and every page in it
func (s *Session) Close() error {
	if err := s.Context.Close(); err != nil {
		return fmt.Errorf("could not close context: %w", err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

// ScreenshotPath builds dir/screenshots/<suite>/<scenario>_<unix>.png
func ScreenshotPath(dir, suite, scenario string, at time.Time) string {
	return filepath.Join(dir, "screenshots", slugify(suite), fmt.Sprintf("%s_%d.png", slugify(scenario), at.Unix()))
}

func slugify(s string) string {
	s = unsafeChars.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "unnamed"
	}
	return s
}
