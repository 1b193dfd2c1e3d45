package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/seastartup/dashboard-e2e/internal/browser"
	"github.com/seastartup/dashboard-e2e/internal/config"
	"github.com/seastartup/dashboard-e2e/internal/pages"
)

// Cleanup signs in with the configured account and deletes every program
// left behind under cfg.TestProgramName. It returns the number deleted.
// Cancelling ctx closes the browser session, which aborts the pending
// interaction.
func Cleanup(ctx context.Context, cfg *config.SuiteConfig, logger *log.Logger) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	rt, err := browser.Start(cfg, logger)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err := rt.Stop(); err != nil {
			logger.Error("could not stop browser", "err", err)
		}
	}()

	session, err := rt.NewSession("cleanup")
	if err != nil {
		return 0, err
	}
	defer session.Close()

	abort := context.AfterFunc(ctx, func() {
		logger.Warn("cleanup interrupted, closing browser session")
		if err := session.Close(); err != nil {
			logger.Debug("could not close session", "err", err)
		}
	})
	defer abort()

	timeout := cfg.TimeoutMillis()
	if err := session.Goto(SignInPath); err != nil {
		return 0, err
	}
	if err := pages.NewLogin(session.Page, timeout).Login(cfg.Email, cfg.Password); err != nil {
		return 0, fmt.Errorf("sign in: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	deleted, err := pages.NewDeleteProgram(session.Page, timeout).DeleteAll(ctx, cfg.TestProgramName)
	if ctx.Err() != nil {
		return deleted, fmt.Errorf("cleanup interrupted after %d delete(s): %w", deleted, ctx.Err())
	}
	if err != nil {
		return deleted, fmt.Errorf("delete %q: %w", cfg.TestProgramName, err)
	}
	logger.Info("cleanup finished", "program", cfg.TestProgramName, "deleted", deleted)

	if err := pages.NewLogout(session.Page, timeout).Logout(); err != nil {
		logger.Warn("could not sign out", "err", err)
	}
	return deleted, nil
}
