package metadata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"extractor/internal/core/search"
	"extractor/internal/domain"
	"extractor/internal/logger"
)

const StrategySearch = "search"

// SearchFallbackStrategy asks a search provider about the site and uses the first organic result.
type SearchFallbackStrategy struct {
	provider search.Provider
	timeout  time.Duration
	log      *logger.Logger
}

func NewSearchFallbackStrategy(provider search.Provider, timeout time.Duration) *SearchFallbackStrategy {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &SearchFallbackStrategy{provider: provider, timeout: timeout, log: logger.New("SearchFallback")}
}

func (s *SearchFallbackStrategy) Name() string { return StrategySearch }

func (s *SearchFallbackStrategy) Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	if s.provider == nil {
		return domain.ScrapedFragment{}, domain.MissingSetting("SERPAPI_API_KEY")
	}
	queries, err := SearchQueries(url)
	if err != nil {
		return domain.ScrapedFragment{}, err
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var lastErr error
	for _, q := range queries {
		if ctx.Err() != nil {
			return domain.ScrapedFragment{}, s.stopError(parent, ctx)
		}
		resp, err := s.provider.Search(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return domain.ScrapedFragment{}, s.stopError(parent, ctx)
			}
			var cfgErr *domain.ConfigurationError
			if errors.As(err, &cfgErr) {
				return domain.ScrapedFragment{}, err
			}
			s.log.LogWarnf("query %q failed: %v", q, err)
			lastErr = fmt.Errorf("query %q: %w", q, err)
			continue
		}
		if len(resp.Results) == 0 {
			s.log.LogDebugf("query %q returned no organic results", q)
			continue
		}

		first := resp.Results[0]
		s.log.Info().Str("url", url).Str("query", q).Str("link", first.Link).Msg("search fallback hit")
		return domain.ScrapedFragment{
			Title:     first.Title,
			Snippet:   first.Snippet,
			Link:      first.Link,
			Thumbnail: first.Thumbnail,
		}, nil
	}

	if lastErr != nil {
		return domain.ScrapedFragment{}, lastErr
	}
	return domain.ScrapedFragment{}, fmt.Errorf("no organic results for %d queries", len(queries))
}

// stopError reports why the query loop ended early: the strategy's own deadline or the caller's context.
func (s *SearchFallbackStrategy) stopError(parent, ctx context.Context) error {
	if err := parent.Err(); err != nil {
		return fmt.Errorf("search fallback interrupted: %w", err)
	}
	return fmt.Errorf("search fallback timed out after %s: %w", s.timeout, ctx.Err())
}
