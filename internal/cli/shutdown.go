// Package cli holds the actions behind the dashboard-e2e commands.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
)

// WithShutdown returns a context that is cancelled when a signal arrives on
// shutdown. If shutdown is nil, a new channel is registered with
// signal.Notify for SIGINT and SIGTERM. The returned stop function releases
// the signal registration and cancels the context.
func WithShutdown(parent context.Context, shutdown chan os.Signal, logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	registered := false
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		registered = true
	}

	go func() {
		select {
		case sig := <-shutdown:
			logger.Warn("received signal, stopping", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		if registered {
			signal.Stop(shutdown)
		}
		cancel()
	}
}
