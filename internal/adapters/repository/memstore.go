package repository

import (
	"context"
	"sync"
	"time"

	"github.com/okian/olympia/pkg/metrics"
)

// MemoryStore is an in-memory Store guarded by a RWMutex.
type MemoryStore struct {
	mu          sync.RWMutex
	byID        map[string]*Visitor
	now         func() time.Time
	maxVisitors int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byID:        make(map[string]*Visitor),
		now:         time.Now,
		maxVisitors: 100_000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Touch implements Store.
func (s *MemoryStore) Touch(_ context.Context, id string) *Visitor {
	now := s.now()

	s.mu.RLock()
	v, ok := s.byID[id]
	s.mu.RUnlock()
	if ok {
		v.touch(now)
		return v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Lost the race to another request of the same visitor.
	if v, ok := s.byID[id]; ok {
		v.touch(now)
		return v
	}
	if len(s.byID) >= s.maxVisitors {
		s.evictOldestLocked()
	}
	v = &Visitor{ID: id}
	v.touch(now)
	s.byID[id] = v
	metrics.UpdateActiveVisitors(len(s.byID))
	return v
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, id string) (*Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Sweep implements Store.
func (s *MemoryStore) Sweep(_ context.Context, idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, v := range s.byID {
		if v.LastSeen().Before(cutoff) {
			delete(s.byID, id)
			removed++
		}
	}
	if removed > 0 {
		metrics.RecordVisitorsSwept(removed)
	}
	metrics.UpdateActiveVisitors(len(s.byID))
	return removed
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

func (s *MemoryStore) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, v := range s.byID {
		if seen := v.LastSeen(); oldestID == "" || seen.Before(oldest) {
			oldestID, oldest = id, seen
		}
	}
	if oldestID != "" {
		delete(s.byID, oldestID)
		metrics.RecordVisitorsSwept(1)
	}
}
