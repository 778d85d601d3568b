package extract

import (
	"context"
	"time"

	"extractor/internal/core/metadata"
	"extractor/internal/domain"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
)

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (domain.ScrapedFragment, error)
}

type Normalizer interface {
	Normalize(ctx context.Context, url string, fragment domain.ScrapedFragment) (domain.ToolRecord, error)
}

// Service runs fetch then normalize for a single URL. Nothing is cached or retried.
type Service struct {
	fetcher    Fetcher
	normalizer Normalizer
	metrics    *metrics.Metrics
	log        *logger.Logger
}

func NewService(fetcher Fetcher, normalizer Normalizer, m *metrics.Metrics) *Service {
	return &Service{
		fetcher:    fetcher,
		normalizer: normalizer,
		metrics:    m,
		log:        logger.New("Extract"),
	}
}

// Extract returns the normalized record for rawURL, or a *domain.ExtractionError naming the failed stage.
func (s *Service) Extract(ctx context.Context, rawURL string) (domain.ToolRecord, error) {
	start := time.Now()

	url, err := metadata.NormalizeURL(rawURL)
	if err != nil {
		return domain.ToolRecord{}, s.fail(domain.StageFetch, &domain.FetchError{URL: rawURL, Attempts: []error{err}})
	}

	fragment, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return domain.ToolRecord{}, s.fail(domain.StageFetch, err)
	}
	s.metrics.StageResult(string(domain.StageFetch), "success")

	record, err := s.normalizer.Normalize(ctx, url, fragment)
	if err != nil {
		return domain.ToolRecord{}, s.fail(domain.StageNormalize, err)
	}
	s.metrics.StageResult(string(domain.StageNormalize), "success")

	s.log.Success().Str("url", url).Str("name", record.Name).Dur("took", time.Since(start)).Msg("extraction complete")
	return record, nil
}

func (s *Service) fail(stage domain.Stage, err error) error {
	s.metrics.StageResult(string(stage), "failure")
	s.log.Warn().Str("stage", string(stage)).Err(err).Msg("extraction failed")
	return &domain.ExtractionError{Stage: stage, Err: err}
}
