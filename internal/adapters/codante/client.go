// Package codante is the HTTP client for the public olympic-games API.
package codante

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/okian/olympia/internal/domain/model"
	"github.com/okian/olympia/pkg/logger"
	"github.com/okian/olympia/pkg/metrics"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Upstream resources.
const (
	ResourceDisciplines = "disciplines"
	ResourceCountries   = "countries"
	ResourceEvents      = "events"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "olympia/1.0"
	maxBodyBytes     = 8 << 20
)

// Client issues one GET per call against the olympic-games API.
// Identical concurrent GETs share a single upstream request.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	timeout    time.Duration
	userAgent  string
	limiter    *rate.Limiter
	group      singleflight.Group
	logger     logger.Logger
}

// New creates a client rooted at baseURL, e.g. https://apis.codante.io/olympic-games.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    u,
		timeout:    defaultTimeout,
		userAgent:  defaultUserAgent,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Disciplines returns every discipline of the Games.
func (c *Client) Disciplines(ctx context.Context) ([]model.Discipline, error) {
	var env disciplinesEnvelope
	if err := c.get(ctx, ResourceDisciplines, 0, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Countries returns one page of the medal table. page < 1 requests the default page.
func (c *Client) Countries(ctx context.Context, page int) (model.CountryPage, error) {
	var env countriesEnvelope
	if err := c.get(ctx, ResourceCountries, page, &env); err != nil {
		return model.CountryPage{}, err
	}
	meta := env.Meta
	if meta.CurrentPage < 1 {
		meta.CurrentPage = max(page, 1)
	}
	meta.LastPage = lastPage(env.Links, env.Meta)
	return model.CountryPage{Countries: env.Data, Meta: meta}, nil
}

// Events returns one page of events. The total page count is read from the
// page parameter of the envelope's last link.
func (c *Client) Events(ctx context.Context, page int) (model.EventPage, error) {
	var env eventsEnvelope
	if err := c.get(ctx, ResourceEvents, page, &env); err != nil {
		return model.EventPage{}, err
	}
	current := env.Meta.CurrentPage
	if current < 1 {
		current = max(page, 1)
	}
	return model.EventPage{
		Events:   env.Data,
		Page:     current,
		LastPage: lastPage(env.Links, env.Meta),
	}, nil
}

func (c *Client) endpoint(resource string, page int) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + resource
	if page > 0 {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// get fetches resource and decodes the body into out. The caller returns as
// soon as its own ctx is done even when the shared request keeps running.
func (c *Client) get(ctx context.Context, resource string, page int, out any) error {
	target := c.endpoint(resource, page)

	ch := c.group.DoChan(target, func() (interface{}, error) {
		// The shared request must not die with whichever caller started it.
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		return c.fetch(fctx, resource, target)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.RecordUpstreamCoalesced(resource)
		}
		if res.Err != nil {
			return res.Err
		}
		if err := json.Unmarshal(res.Val.([]byte), out); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, resource, err)
		}
		return nil
	}
}

func (c *Client) fetch(ctx context.Context, resource, target string) ([]byte, error) {
	waitStart := time.Now()
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s: rate limit: %w", ErrRequest, resource, err)
	}
	metrics.RecordUpstreamThrottle(float64(time.Since(waitStart).Microseconds()) / 1000)

	start := time.Now()
	body, err := c.do(ctx, target)
	latency := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.RecordUpstreamRequest(resource, "error", latency)
		c.logger.Warn(ctx, "upstream request failed",
			logger.String("resource", resource),
			logger.String("url", target),
			logger.Error(err),
		)
		return nil, err
	}
	metrics.RecordUpstreamRequest(resource, "ok", latency)
	c.logger.Debug(ctx, "upstream request done",
		logger.String("resource", resource),
		logger.String("url", target),
		logger.Float64("latency_ms", latency),
	)
	return body, nil
}

func (c *Client) do(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrRequest, err)
	}
	return body, nil
}
