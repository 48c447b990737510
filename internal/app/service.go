// Package service assembles the Olympic Games views from a Source and the
// per-visitor state kept in the repository.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okian/olympia/internal/adapters/repository"
	"github.com/okian/olympia/internal/domain/pagination"
	"github.com/okian/olympia/pkg/logger"
	"github.com/okian/olympia/pkg/metrics"
	"github.com/okian/olympia/pkg/telemetry"
)

// Service implements the dependencies of the site and API handlers.
type Service struct {
	mu sync.RWMutex

	source Source
	store  repository.Store

	// Configuration
	pagerWindow    int
	gamesStartPage int
	visitorTTL     time.Duration
	sweepInterval  time.Duration

	// State
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the visitor store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPagerWindow sets how many page buttons the pager shows.
func WithPagerWindow(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.pagerWindow = size
		}
	}
}

// WithGamesStartPage sets the page the games tab opens on.
func WithGamesStartPage(page int) Option {
	return func(s *Service) {
		if page > 0 {
			s.gamesStartPage = page
		}
	}
}

// WithVisitorTTL sets how long an idle visitor's state is kept.
func WithVisitorTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.visitorTTL = ttl
		}
	}
}

// WithSweepInterval sets how often idle visitors are evicted.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sweepInterval = d
		}
	}
}

// New constructs a Service reading from source.
func New(source Source, opts ...Option) *Service {
	s := &Service{
		source:         source,
		pagerWindow:    pagination.DefaultWindow,
		gamesStartPage: 1,
		visitorTTL:     30 * time.Minute,
		sweepInterval:  time.Minute,
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	return s
}

// GamesStartPage returns the page the games tab opens on.
func (s *Service) GamesStartPage() int { return s.gamesStartPage }

// Start launches the idle visitor sweep.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.stopCh = make(chan struct{})
	s.wg.Add(1)
	go s.sweepLoop(ctx, s.stopCh)

	s.started = true
	s.logger.Info(ctx, "viewer service started",
		logger.Duration("visitorTTL", s.visitorTTL),
		logger.Duration("sweepInterval", s.sweepInterval),
		logger.Int("pagerWindow", s.pagerWindow),
	)
	return nil
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	close(s.stopCh)
	s.started = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info(context.Background(), "viewer service stopped")
}

func (s *Service) sweepLoop(ctx context.Context, stop <-chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stop:
			return
		case <-ticker.C:
			if n := s.store.Sweep(ctx, s.visitorTTL); n > 0 {
				s.logger.Debug(ctx, "swept idle visitors", logger.Int("count", n))
			}
		}
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visitors := s.store.Count(context.Background())
	metrics.UpdateActiveVisitors(visitors)

	return map[string]interface{}{
		"started":        s.started,
		"activeVisitors": visitors,
		"pagerWindow":    s.pagerWindow,
		"gamesStartPage": s.gamesStartPage,
		"visitorTTL":     s.visitorTTL.String(),
	}
}

// report logs an upstream failure and forwards it to Sentry. Cancellations
// are the requesting view going away and are not reported.
func (s *Service) report(ctx context.Context, view string, err error) {
	if errors.Is(err, context.Canceled) || (errors.Is(err, context.DeadlineExceeded) && ctx.Err() != nil) {
		s.logger.Debug(ctx, "view request abandoned", logger.String("view", view), logger.Error(err))
		return
	}
	s.logger.Warn(ctx, "view load failed", logger.String("view", view), logger.Error(err))
	telemetry.CaptureError(ctx, err, map[string]string{"view": view})
}
