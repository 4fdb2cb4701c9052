// Package monitoring forwards operational messages and errors to Sentry.
// When no DSN is configured the captures are no-ops.
package monitoring

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"
)

type config struct {
	Dsn         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// Init configures the Sentry client from the environment. Call once at
// process start, before any Message or Error.
func Init() error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("monitoring config: %w", err)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Dsn,
		Environment: cfg.Environment,
	})
	if err != nil {
		return fmt.Errorf("sentry initialize failed: %w", err)
	}
	return nil
}

func Message(msg string) {
	sentry.CaptureMessage(msg)
}

func Error(err error) {
	sentry.CaptureException(err)
}
