// Package fetch holds the loading/success/failure state of one view's data
// and guarantees that only the latest request may write it.
package fetch

import (
	"context"
	"sync"
)

// Ticket identifies one issued request.
type Ticket struct {
	Version uint64
	Key     int
}

// State is a snapshot of a Resource. Key is the key Data was loaded for and
// is zero when nothing is loaded.
type State[T any] struct {
	Loading bool
	Loaded  bool
	Data    T
	Err     error
	Key     int
	Version uint64
}

// Resource is the fetch state of one view. The zero value is ready to use
// and starts in the loading state.
type Resource[T any] struct {
	mu      sync.Mutex
	version uint64
	settled uint64
	dataKey int
	data    T
	err     error
	loaded  bool
}

// Begin issues a new request token for key, superseding any in-flight one.
func (r *Resource[T]) Begin(key int) Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version++
	return Ticket{Version: r.version, Key: key}
}

// Resolve applies data if t is the latest unsettled ticket.
func (r *Resource[T]) Resolve(t Ticket, data T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.current(t) {
		return false
	}
	r.settled = t.Version
	r.data = data
	r.dataKey = t.Key
	r.err = nil
	r.loaded = true
	return true
}

// Fail records err if t is the latest unsettled ticket. Previously loaded
// data is discarded.
func (r *Resource[T]) Fail(t Ticket, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.current(t) {
		return false
	}
	var zero T
	r.settled = t.Version
	r.data = zero
	r.dataKey = 0
	r.err = err
	r.loaded = false
	return true
}

// Snapshot returns the current state.
func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State[T]{
		Loading: r.settled != r.version || r.version == 0,
		Loaded:  r.loaded,
		Data:    r.data,
		Err:     r.err,
		Key:     r.dataKey,
		Version: r.version,
	}
}

func (r *Resource[T]) current(t Ticket) bool {
	return t.Version == r.version && r.settled != t.Version
}

// Abandon settles t without touching data, for requests whose view went away.
func (r *Resource[T]) Abandon(t Ticket) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.current(t) {
		return false
	}
	r.settled = t.Version
	return true
}

// Load runs fn as a new request for key and settles the resource with its
// outcome. applied is false when a newer request superseded this one; the
// outcome is still returned so the caller may render it. When ctx ends
// first the request is abandoned and ctx.Err() is returned.
func Load[T any](ctx context.Context, r *Resource[T], key int, fn func(context.Context) (T, error)) (data T, applied bool, err error) {
	t := r.Begin(key)
	data, err = fn(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		r.Abandon(t)
		var zero T
		return zero, false, ctxErr
	}
	if err != nil {
		return data, r.Fail(t, err), err
	}
	return data, r.Resolve(t, data), nil
}
