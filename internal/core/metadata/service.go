package metadata

import (
	"context"
	"time"

	"extractor/internal/core/search"
	"extractor/internal/domain"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
)

type Config struct {
	UserAgent      string
	DirectTimeout  time.Duration
	MaxRedirects   int
	MaxBodyBytes   int64
	SearchTimeout  time.Duration
	RenderFallback bool
	RenderTimeout  time.Duration
}

// Service resolves a URL to a ScrapedFragment: direct fetch first, then the optional renderer, then search.
type Service struct {
	chain *Chain
	log   *logger.Logger
}

func NewService(cfg Config, provider search.Provider, m *metrics.Metrics) *Service {
	strategies := []Strategy{
		NewDirectFetchStrategy(DirectConfig{
			UserAgent:    cfg.UserAgent,
			Timeout:      cfg.DirectTimeout,
			MaxRedirects: cfg.MaxRedirects,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}),
	}
	if cfg.RenderFallback {
		strategies = append(strategies, NewRenderedFetchStrategy(cfg.RenderTimeout))
	}
	strategies = append(strategies, NewSearchFallbackStrategy(provider, cfg.SearchTimeout))
	return NewServiceWithStrategies(m, strategies...)
}

func NewServiceWithStrategies(m *metrics.Metrics, strategies ...Strategy) *Service {
	return &Service{chain: NewChain(m, strategies...), log: logger.New("Fetcher")}
}

func (s *Service) Strategies() []string { return s.chain.Names() }

// Fetch normalizes the URL and runs the strategy chain. Failures are *domain.FetchError.
func (s *Service) Fetch(ctx context.Context, rawURL string) (domain.ScrapedFragment, error) {
	url, err := NormalizeURL(rawURL)
	if err != nil {
		return domain.ScrapedFragment{}, &domain.FetchError{URL: rawURL, Attempts: []error{err}}
	}
	s.log.LogDebugf("fetching metadata for %s", url)
	return s.chain.Fetch(ctx, url)
}
