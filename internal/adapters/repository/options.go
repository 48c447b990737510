package repository

import "time"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithClock replaces the time source used for activity tracking.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxVisitors caps the number of tracked visitors. When full, the
// least recently seen visitor is evicted to make room.
func WithMaxVisitors(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.maxVisitors = n
		}
	}
}
