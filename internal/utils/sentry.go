package utils

import (
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// InitSentry initializes Sentry for error tracking. It reports whether Sentry
// is enabled; an empty DSN leaves it disabled.
func InitSentry(cfg config.SentryConfig) (bool, error) {
	if cfg.DSN == "" {
		logrus.Info("SENTRY_DSN not set, error tracking disabled")
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return false, err
	}

	logrus.WithField("environment", cfg.Environment).Info("Sentry initialized")
	return true, nil
}

// FlushSentry waits for buffered events to be delivered
func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
