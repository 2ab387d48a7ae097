package report

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"

	"logwatch/internal/config"
	"logwatch/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Reporter forwards fatal setup errors to sentry when a DSN is configured.
// Without LOGWATCH_SENTRY_DSN it is a no-op, so local use never phones home.
type Reporter struct {
	enabled bool
	log     logger.Logger
}

// Init configures sentry from the environment
func Init(log logger.Logger) *Reporter {
	r := &Reporter{log: log.WithComponent("REPORT")}

	dsn := os.Getenv("LOGWATCH_SENTRY_DSN")
	if dsn == "" {
		return r
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     dsn,
		Release: "logwatch@" + config.Version,
	})
	if err != nil {
		r.log.Debug().Err(err).Msg("Sentry init failed, error reporting disabled")
		return r
	}

	r.enabled = true

	return r
}

// CaptureErr records a fatal error
func (r *Reporter) CaptureErr(err error) {
	if !r.enabled || err == nil {
		return
	}

	sentry.CaptureException(err)
}

// Flush drains pending events before process exit
func (r *Reporter) Flush() {
	if !r.enabled {
		return
	}

	sentry.Flush(flushTimeout)
}
