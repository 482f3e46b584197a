// Package exceptions reports SDK-level failures to an external error
// tracker. The transport calls the configured Reporter for transport and
// API errors; by default nothing is reported.
package exceptions

import (
	"time"

	"github.com/getsentry/sentry-go"
)

const defaultFlushTimeout = time.Second * 5

// Reporter sends exceptions to an external source
type Reporter interface {
	ReportException(err error)
}

// ReporterFunc adapts a function to the Reporter interface
type ReporterFunc func(err error)

func (f ReporterFunc) ReportException(err error) { f(err) }

// NoopReporter is a no-op exception reporter
type NoopReporter struct{}

// ReportException does nothing
func (r *NoopReporter) ReportException(_ error) {}

// SentryReporter sends error information to Sentry
type SentryReporter struct{}

// NewSentryReporter initializes Sentry and returns a SentryReporter
func NewSentryReporter(dsn, env string) (*SentryReporter, error) {
	err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: env})
	if err != nil {
		return nil, err
	}

	return &SentryReporter{}, nil
}

// ReportException will send errors to Sentry
func (r *SentryReporter) ReportException(err error) {
	sentry.CaptureException(err)
	sentry.Flush(defaultFlushTimeout)
}
