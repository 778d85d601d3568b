package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"

	"extractor/internal/config"
	"extractor/internal/core/extract"
	"extractor/internal/core/metadata"
	"extractor/internal/core/normalize"
	"extractor/internal/core/search"
	"extractor/internal/core/taxonomy"
	"extractor/internal/logger"
	"extractor/internal/platform/eino"
	"extractor/internal/platform/metrics"
)

type pipeline struct {
	taxonomy   *taxonomy.Taxonomy
	normalizer *normalize.Service
	extract    *extract.Service
}

func loadTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	tx, err := taxonomy.Load(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %s: %w", cfg.TaxonomyFile, err)
	}
	return tx, nil
}

// buildPipeline wires fetcher and normalizer from cfg. Missing credentials do not fail here;
// they surface as configuration errors when a request needs them.
func buildPipeline(ctx context.Context, cfg config.Config, m *metrics.Metrics, log *logger.Logger) (*pipeline, error) {
	tx, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, err
	}

	provider := search.NewSerpAPI(search.SerpAPIConfig{
		BaseURL: cfg.SerpAPIBaseURL,
		APIKey:  cfg.SerpAPIKey,
	})
	fetcher := metadata.NewService(metadata.Config{
		UserAgent:      cfg.UserAgent,
		DirectTimeout:  cfg.DirectFetchTimeout,
		MaxRedirects:   cfg.MaxRedirects,
		MaxBodyBytes:   cfg.MaxBodyBytes,
		SearchTimeout:  cfg.SearchTimeout,
		RenderFallback: cfg.RenderFallback,
		RenderTimeout:  cfg.RenderTimeout,
	}, provider, m)

	var chatModel model.BaseChatModel
	chatModel, err = eino.NewChatModel(ctx, eino.Config{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.GeminiAPIKey,
		Model:    cfg.DefaultLLMModel,
	})
	if err != nil {
		log.LogWarnf("chat model unavailable, normalization will fail: %v", err)
		chatModel = nil
	}
	normalizer := normalize.NewService(normalize.Config{
		APIKey:  cfg.GeminiAPIKey,
		Timeout: cfg.LLMTimeout,
	}, chatModel, tx, m)

	return &pipeline{
		taxonomy:   tx,
		normalizer: normalizer,
		extract:    extract.NewService(fetcher, normalizer, m),
	}, nil
}
