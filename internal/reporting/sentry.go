// Package reporting forwards resolver failures and panics to Sentry.
// Every function is a no-op until Init has been called with a DSN.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowGraph/internal/apperrors"
	"github.com/Belphemur/ShowGraph/internal/config"
)

const flushTimeout = 2 * time.Second

// Init configures the global Sentry client. It returns a flush function to defer in main.
func Init(cfg *config.Config) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		AttachStacktrace: true,
	})
	if err != nil {
		return func() {}, fmt.Errorf("sentry init failed: %w", err)
	}

	return func() { sentry.Flush(flushTimeout) }, nil
}

// CaptureException reports err on the hub attached to ctx, falling back to the global hub.
// Client mistakes (unknown show, missing argument) are not reported.
func CaptureException(ctx context.Context, err error) {
	if err == nil || !Reportable(err) {
		return
	}
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// Reportable reports whether err signals a server-side problem worth an event.
func Reportable(err error) bool {
	return !errors.Is(err, &apperrors.ErrNotFound{}) &&
		!errors.Is(err, &apperrors.ErrMissingArgument{}) &&
		!errors.Is(err, context.Canceled)
}

// Panic reports a recovered panic value.
func Panic(ctx context.Context, value interface{}) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.Recover(value)
}
