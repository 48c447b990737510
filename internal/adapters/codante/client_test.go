package codante

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsBody = `{
  "data": [
    {"id": 7, "day": "2024-07-27", "discipline_name": "Judo", "detailed_event_name": "Men -60kg",
     "status": "Finished", "is_live": 0, "is_medal_event": 1,
     "competitors": [{"competitor_name": "A", "country_id": "BRA", "position": 2, "result_winnerLoserTie": "L"},
                     {"competitor_name": "B", "country_id": "JPN", "position": 1, "result_winnerLoserTie": "W"}]}
  ],
  "links": {"first": "https://x/olympic-games/events?page=1", "last": "https://x/olympic-games/events?page=42", "prev": null, "next": "https://x/olympic-games/events?page=2"},
  "meta": {"current_page": 1, "last_page": 40}
}`

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/olympic-games", opts...)
	require.NoError(t, err)
	return c
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New("olympic-games")
	require.Error(t, err)
}

func TestEvents_ParsesLastPageFromLinks(t *testing.T) {
	var gotPath, gotPage, gotUA string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotPage = r.URL.Query().Get("page")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(eventsBody))
	}), WithUserAgent("olympia-test"))

	page, err := c.Events(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "/olympic-games/events", gotPath)
	assert.Equal(t, "3", gotPage)
	assert.Equal(t, "olympia-test", gotUA)
	assert.Equal(t, 42, page.LastPage)
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Events, 1)
	ev := page.Events[0]
	assert.Equal(t, 7, ev.ID)
	assert.True(t, bool(ev.IsMedalEvent))
	assert.False(t, bool(ev.IsLive))
	assert.Len(t, ev.Competitors, 2)
}

func TestEvents_LastPageFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"meta", `{"data": [], "links": {"last": null}, "meta": {"last_page": 5}}`, 5},
		{"none", `{"data": []}`, 1},
		{"bad link", `{"data": [], "links": {"last": "https://x/events?page=abc"}, "meta": {"last_page": 9}}`, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			page, err := c.Events(context.Background(), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, page.LastPage)
			assert.Equal(t, 1, page.Page)
		})
	}
}

func TestEvents_OmitsPageWhenZero(t *testing.T) {
	var rawQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	_, err := c.Events(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, rawQuery)
}

func TestDisciplines(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/olympic-games/disciplines", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": [{"id": "ATH", "name": "Athletics", "pictogram_url": "https://p/ath.svg"}, {"id": 12, "name": "Judo"}]}`))
	}))

	ds, err := c.Disciplines(context.Background())
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, "ATH", string(ds[0].ID))
	assert.Equal(t, "12", string(ds[1].ID))
	assert.Equal(t, "Judo", ds[1].Name)
}

func TestCountries(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"data": [{"id": "BRA", "name": "Brasil", "gold_medals": 3, "total_medals": 20, "rank": 20}],
			"links": {"last": "https://x/countries?page=5"}, "meta": {"current_page": 2, "last_page": 5, "total": 90}}`))
	}))

	page, err := c.Countries(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Countries, 1)
	assert.Equal(t, "Brasil", page.Countries[0].Name)
	assert.Equal(t, 3, page.Countries[0].GoldMedals)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 5, page.Meta.LastPage)
	assert.Equal(t, 90, page.Meta.Total)
}

func TestErrors(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		_, err := c.Events(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedStatus)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("decode", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"data": [`))
		}))
		_, err := c.Disciplines(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("transport", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		base := srv.URL
		srv.Close()
		c, err := New(base)
		require.NoError(t, err)
		_, err = c.Countries(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRequest)
	})
}

func TestConcurrentIdenticalRequestsAreCoalesced(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write([]byte(eventsBody))
	}))

	const callers = 5
	var wg sync.WaitGroup
	results := make([]int, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			page, err := c.Events(context.Background(), 1)
			results[i] = page.LastPage
			errs[i] = err
		}(i)
	}

	require.Eventually(t, func() bool { return hits.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), hits.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, 42, results[i])
	}
}

func TestCallerReturnsWhenContextDone(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := c.Events(ctx, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestRateLimiterWaitsForTokens(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	}), WithRateLimit(20, 1))

	start := time.Now()
	for page := 1; page <= 3; page++ {
		_, err := c.Events(context.Background(), page)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
}
