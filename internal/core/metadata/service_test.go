package metadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractor/internal/core/search"
	"extractor/internal/domain"
	"extractor/internal/platform/metrics"
)

type fakeProvider struct {
	mu      sync.Mutex
	queries []string
	results map[string][]search.Result
	errs    map[string]error
	delay   time.Duration
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Search(ctx context.Context, query string) (*search.Response, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return &search.Response{Query: query, Provider: "fake", Results: f.results[query]}, nil
}

func (f *fakeProvider) seen() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

func failingSite(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(provider search.Provider, searchTimeout time.Duration) *Service {
	return NewService(Config{DirectTimeout: 200 * time.Millisecond, SearchTimeout: searchTimeout}, provider, metrics.New())
}

func TestFetchUsesDirectWithoutSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(acmePage))
	}))
	defer server.Close()

	provider := &fakeProvider{}
	fragment, err := newTestService(provider, time.Second).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, domain.ScrapedFragment{
		Title:     "Acme AI",
		Snippet:   "Acme AI writes blog posts.",
		Link:      server.URL,
		Thumbnail: "",
	}, fragment)
	assert.Empty(t, provider.seen())
}

func TestFetchFallsBackInQueryOrder(t *testing.T) {
	server := failingSite(t)
	queries, err := SearchQueries(server.URL)
	require.NoError(t, err)

	provider := &fakeProvider{results: map[string][]search.Result{
		queries[2]: {
			{Title: "Acme AI", Snippet: "Acme AI writes blog posts.", Link: "https://acme.ai"},
			{Title: "Ignored"},
		},
	}}
	fragment, err := newTestService(provider, time.Second).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, queries, provider.seen())
	assert.Equal(t, domain.ScrapedFragment{
		Title:   "Acme AI",
		Snippet: "Acme AI writes blog posts.",
		Link:    "https://acme.ai",
	}, fragment)
}

func TestFetchStopsAtFirstSearchHit(t *testing.T) {
	server := failingSite(t)
	queries, err := SearchQueries(server.URL)
	require.NoError(t, err)

	provider := &fakeProvider{results: map[string][]search.Result{
		queries[0]: {{Title: "Acme AI", Thumbnail: "https://img/acme.png"}},
		queries[1]: {{Title: "never used"}},
	}}
	fragment, err := newTestService(provider, time.Second).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, queries[:1], provider.seen())
	assert.Equal(t, "https://img/acme.png", fragment.Thumbnail)
}

func TestFetchSkipsFailingQuery(t *testing.T) {
	server := failingSite(t)
	queries, err := SearchQueries(server.URL)
	require.NoError(t, err)

	provider := &fakeProvider{
		errs:    map[string]error{queries[0]: errors.New("serpapi status 500: upstream")},
		results: map[string][]search.Result{queries[1]: {{Snippet: "writes blog posts"}}},
	}
	fragment, err := newTestService(provider, time.Second).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "writes blog posts", fragment.Snippet)
	assert.Equal(t, queries[:2], provider.seen())
}

func TestFetchFailsWhenEverythingFails(t *testing.T) {
	server := failingSite(t)
	provider := &fakeProvider{}

	_, err := newTestService(provider, time.Second).Fetch(context.Background(), server.URL)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Len(t, fetchErr.Attempts, 2)
	assert.Contains(t, fetchErr.Attempts[0].Error(), "direct: unexpected status 503")
	assert.Contains(t, err.Error(), "search: no organic results for 3 queries")
	assert.Len(t, provider.seen(), 3)
}

func TestSearchFallbackTimeoutStopsQueries(t *testing.T) {
	server := failingSite(t)
	provider := &fakeProvider{delay: 80 * time.Millisecond}

	_, err := newTestService(provider, 120*time.Millisecond).Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "search fallback timed out")
	assert.Len(t, provider.seen(), 2)
}

func TestSearchFallbackCallerCancellation(t *testing.T) {
	provider := &fakeProvider{delay: 200 * time.Millisecond}
	strategy := NewSearchFallbackStrategy(provider, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(30*time.Millisecond, cancel)
	_, err := strategy.Fetch(ctx, "https://acme.example")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "search fallback interrupted")
	assert.NotContains(t, err.Error(), "timed out")
	assert.Len(t, provider.seen(), 1)
}

func TestSearchFallbackConfigurationError(t *testing.T) {
	server := failingSite(t)
	provider := &fakeProvider{errs: map[string]error{}}
	queries, err := SearchQueries(server.URL)
	require.NoError(t, err)
	provider.errs[queries[0]] = domain.MissingSetting("SERPAPI_API_KEY")

	_, err = newTestService(provider, time.Second).Fetch(context.Background(), server.URL)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, provider.seen(), 1)
}

func TestFetchRejectsEmptyURL(t *testing.T) {
	provider := &fakeProvider{}
	_, err := newTestService(provider, time.Second).Fetch(context.Background(), " ")

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, err, domain.ErrEmptyURL)
	assert.Empty(t, provider.seen())
}

func TestServiceStrategyOrder(t *testing.T) {
	assert.Equal(t, []string{StrategyDirect, StrategySearch}, newTestService(&fakeProvider{}, time.Second).Strategies())

	withRenderer := NewService(Config{RenderFallback: true}, &fakeProvider{}, nil)
	assert.Equal(t, []string{StrategyDirect, StrategyRendered, StrategySearch}, withRenderer.Strategies())
}

func TestChainRejectsEmptyFragment(t *testing.T) {
	empty := strategyFunc{name: "empty", fn: func(ctx context.Context, url string) (domain.ScrapedFragment, error) {
		return domain.ScrapedFragment{Link: url}, nil
	}}
	good := strategyFunc{name: "good", fn: func(ctx context.Context, url string) (domain.ScrapedFragment, error) {
		return domain.ScrapedFragment{Title: "Acme", Link: url}, nil
	}}

	fragment, err := NewChain(nil, empty, good).Fetch(context.Background(), "https://acme.ai")
	require.NoError(t, err)
	assert.Equal(t, "Acme", fragment.Title)
}

type strategyFunc struct {
	name string
	fn   func(ctx context.Context, url string) (domain.ScrapedFragment, error)
}

func (s strategyFunc) Name() string { return s.name }

func (s strategyFunc) Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	return s.fn(ctx, url)
}
