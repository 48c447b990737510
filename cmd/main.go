package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/okian/olympia/internal/adapters/codante"
	"github.com/okian/olympia/internal/adapters/http/api"
	"github.com/okian/olympia/internal/adapters/http/site"
	"github.com/okian/olympia/internal/adapters/http/swagger"
	"github.com/okian/olympia/internal/adapters/repository"
	app "github.com/okian/olympia/internal/app"
	"github.com/okian/olympia/internal/config"
	"github.com/okian/olympia/pkg/logger"
	"github.com/okian/olympia/pkg/metrics"
	"github.com/okian/olympia/pkg/telemetry"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 30 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	nanosecondsPerMillisecond = 1e6
)

// release is stamped at build time with -ldflags "-X main.release=...".
var release = "dev"

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (.env -> defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if cfg.LogFormat != "text" {
		if err := logger.InitWith(os.Stdout, cfg.LogFormat); err != nil {
			os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
			return
		}
	}
	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	enabled, err := telemetry.Init(cfg.SentryDSN, cfg.Environment, release)
	if err != nil {
		loggerInstance.Warn(ctx, "sentry disabled", logger.Error(err))
	}
	if enabled {
		defer telemetry.Flush()
	}
	loggerInstance.Info(ctx, "error reporting", logger.Bool("sentry", enabled))

	svc, err := newService(cfg, loggerInstance)
	if err != nil {
		loggerInstance.Error(ctx, "failed to create service", logger.Error(err))
		return
	}
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Error(ctx, "failed to start service", logger.Error(err))
		return
	}
	defer svc.Stop()

	if metrics.Enabled() {
		go startSystemMetricsUpdater(ctx, metrics.RefreshInterval())
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(ctx, cfg, svc, loggerInstance),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	// Start the HTTP server
	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService wires the upstream client and visitor store into the viewer service.
func newService(cfg *config.Config, l logger.Logger) (*app.Service, error) {
	client, err := codante.New(cfg.APIBaseURL,
		codante.WithTimeout(cfg.RequestTimeout()),
		codante.WithUserAgent(cfg.UserAgent),
		codante.WithRateLimit(cfg.UpstreamRPS, cfg.UpstreamBurst),
		codante.WithLogger(l.Named("codante")),
	)
	if err != nil {
		return nil, err
	}
	return app.New(client,
		app.WithLogger(l.Named("service")),
		app.WithStore(repository.NewMemoryStore()),
		app.WithPagerWindow(cfg.PagerWindow),
		app.WithGamesStartPage(cfg.GamesStartPage),
		app.WithVisitorTTL(cfg.VisitorTTL()),
		app.WithSweepInterval(cfg.VisitorSweep()),
	), nil
}

// newRouter mounts the site, API and docs routes behind the shared middleware.
func newRouter(ctx context.Context, cfg *config.Config, svc *app.Service, l logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(telemetry.Middleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout() + 5*time.Second))

	swagger.Register(ctx, r)
	api.NewServer(svc, svc).Register(ctx, r)
	site.New(svc,
		site.WithLogger(l.Named("site")),
		site.WithSecureCookie(cfg.Environment == "production"),
	).Register(ctx, r)

	return r
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
