// Package telemetry reports errors and panics to Sentry. Every function is
// safe to call when Sentry is disabled.
package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
)

const flushTimeout = 2 * time.Second

// Init configures the Sentry SDK. An empty dsn leaves Sentry disabled and
// reports false.
func Init(dsn, environment, release string) (bool, error) {
	if dsn == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		AttachStacktrace: true,
		Tags:             map[string]string{"service": "olympia"},
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			return scrub(event)
		},
	})
	if err != nil {
		return false, fmt.Errorf("sentry init: %w", err)
	}
	return true, nil
}

// CaptureError sends err with tags, using the request hub carried by ctx when present.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

// Middleware attaches a per-request hub and reports panics before re-raising
// them to the outer recoverer.
func Middleware(next http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         flushTimeout,
	}).Handle(next)
}

// Flush waits for buffered events to be sent.
func Flush() {
	sentry.Flush(flushTimeout)
}

// scrub drops the visitor cookie and client address from outgoing events.
func scrub(event *sentry.Event) *sentry.Event {
	if event == nil {
		return nil
	}
	event.User.IPAddress = ""
	if event.Request != nil {
		event.Request.Cookies = ""
		for k := range event.Request.Headers {
			if k == "Cookie" || k == "Authorization" {
				event.Request.Headers[k] = "[redacted]"
			}
		}
	}
	return event
}
