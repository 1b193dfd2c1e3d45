package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/seastartup/dashboard-e2e/internal/models"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// SuiteConfig holds configuration for the browser suites
type SuiteConfig struct {
	Email    string
	Password string
	BaseURL  string

	Browser     string
	Headless    bool
	SlowMo      time.Duration
	Timeout     time.Duration
	Screenshots bool
	ArtifactDir string

	SlugRule        models.SlugRule
	EditProgramSlug string
	TestProgramName string
	AvatarURL       string

	LogLevel string
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		Email:           getenv("EMAIL"),
		Password:        getenv("PASSWORD"),
		BaseURL:         strings.TrimRight(orDefault(getenv("BASE_URL"), "http://localhost:3000"), "/"),
		Browser:         strings.ToLower(orDefault(getenv("BROWSER"), BrowserChromium)),
		ArtifactDir:     orDefault(getenv("ARTIFACT_DIR"), "test-results"),
		EditProgramSlug: orDefault(getenv("EDIT_PROGRAM_SLUG"), "qwertyuiop"),
		TestProgramName: orDefault(getenv("TEST_PROGRAM_NAME"), "Test Program"),
		AvatarURL:       orDefault(getenv("AVATAR_URL"), "https://i.pravatar.cc/300"),
		LogLevel:        orDefault(getenv("LOG_LEVEL"), "info"),
		SlugRule:        models.DefaultSlugRule,
	}

	// Validate required fields
	if config.Email == "" {
		return nil, fmt.Errorf("EMAIL is required")
	}
	if config.Password == "" {
		return nil, fmt.Errorf("PASSWORD is required")
	}

	if _, err := url.ParseRequestURI(config.BaseURL); err != nil {
		return nil, fmt.Errorf("BASE_URL is invalid: %w", err)
	}

	switch config.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("BROWSER must be one of chromium, firefox, webkit: got %q", config.Browser)
	}

	var err error
	if config.Headless, err = parseBool("HEADLESS", getenv("HEADLESS"), true); err != nil {
		return nil, err
	}
	if config.Screenshots, err = parseBool("SCREENSHOTS", getenv("SCREENSHOTS"), true); err != nil {
		return nil, err
	}
	if config.SlowMo, err = parseDuration("SLOW_MO", getenv("SLOW_MO"), 0); err != nil {
		return nil, err
	}
	if config.Timeout, err = parseDuration("E2E_TIMEOUT", getenv("E2E_TIMEOUT"), 10*time.Second); err != nil {
		return nil, err
	}
	if config.Timeout <= 0 {
		return nil, fmt.Errorf("E2E_TIMEOUT must be positive")
	}

	if v := getenv("SLUG_MIN_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("SLUG_MIN_LENGTH must be a positive integer: got %q", v)
		}
		config.SlugRule = models.SlugRule{MinLength: n}
	}

	return config, nil
}

// URL joins path onto the base URL
func (c *SuiteConfig) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// TimeoutMillis returns the timeout in the unit Playwright expects
func (c *SuiteConfig) TimeoutMillis() float64 {
	return float64(c.Timeout.Milliseconds())
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func parseBool(key, value string, fallback bool) (bool, error) {
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: got %q", key, value)
	}
	return b, nil
}

// parseDuration accepts Go durations ("250ms") and bare milliseconds ("250")
func parseDuration(key, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: got %q", key, value)
	}
	return d, nil
}
