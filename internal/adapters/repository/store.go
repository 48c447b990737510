// Package repository keeps the per-visitor view state: the fetch state of
// every view a visitor has open, evicted once the visitor goes idle.
package repository

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/okian/olympia/internal/domain/fetch"
	"github.com/okian/olympia/internal/domain/model"
)

// Visitor is the view state of one browser session.
type Visitor struct {
	ID          string
	Disciplines fetch.Resource[[]model.Discipline]
	Countries   fetch.Resource[model.CountryPage]
	Events      fetch.Resource[model.EventPage]

	lastSeen atomic.Int64
}

// LastSeen returns the time of the visitor's latest request.
func (v *Visitor) LastSeen() time.Time {
	return time.Unix(0, v.lastSeen.Load())
}

func (v *Visitor) touch(now time.Time) {
	v.lastSeen.Store(now.UnixNano())
}

// Store provides access to visitor state.
type Store interface {
	// Touch returns the visitor with id, creating it when unknown, and marks it active.
	Touch(ctx context.Context, id string) *Visitor

	// Get returns the visitor with id without marking it active.
	// Returns ErrNotFound if the visitor is unknown.
	Get(ctx context.Context, id string) (*Visitor, error)

	// Sweep removes visitors idle for longer than idle and returns how many were removed.
	Sweep(ctx context.Context, idle time.Duration) int

	// Count returns the number of tracked visitors.
	Count(ctx context.Context) int
}
