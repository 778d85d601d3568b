package metadata

import (
	"context"
	"errors"
	"fmt"

	"extractor/internal/domain"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
)

var errNoMetadata = errors.New("no title or description found")

// Strategy is one way of turning a normalized URL into a fragment.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error)
}

// Chain runs strategies in order and stops at the first usable fragment.
type Chain struct {
	strategies []Strategy
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewChain(m *metrics.Metrics, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, metrics: m, log: logger.New("FetchChain")}
}

func (c *Chain) Names() []string {
	names := make([]string, 0, len(c.strategies))
	for _, s := range c.strategies {
		names = append(names, s.Name())
	}
	return names
}

func (c *Chain) Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	attempts := make([]error, 0, len(c.strategies))

	for i, strategy := range c.strategies {
		if err := ctx.Err(); err != nil {
			attempts = append(attempts, fmt.Errorf("%s: %w", strategy.Name(), err))
			break
		}
		c.log.Debug().Str("url", url).Int("attempt", i+1).Str("strategy", strategy.Name()).Msg("attempt fetch")

		fragment, err := strategy.Fetch(ctx, url)
		if err == nil && !fragment.Usable() {
			err = errNoMetadata
		}
		if err == nil {
			c.metrics.StrategyResult(strategy.Name(), "success")
			c.log.Info().Str("url", url).Str("strategy", strategy.Name()).Msg("fetch succeeded")
			return fragment, nil
		}

		c.metrics.StrategyResult(strategy.Name(), "failure")
		c.log.Info().Str("url", url).Str("strategy", strategy.Name()).Str("error", err.Error()).Msg("fetch attempt failed")
		attempts = append(attempts, fmt.Errorf("%s: %w", strategy.Name(), err))
	}

	return domain.ScrapedFragment{}, &domain.FetchError{URL: url, Attempts: attempts}
}
