package normalize

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	gemini "github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"extractor/internal/core/taxonomy"
	"extractor/internal/domain"
	"extractor/internal/logger"
	"extractor/internal/platform/metrics"
	"extractor/prompts"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultTemperature = float32(0.1)
)

type Config struct {
	APIKey  string
	Timeout time.Duration
	// Temperature defaults to DefaultTemperature when nil; zero is a valid setting.
	Temperature *float32
}

// Service turns a scraped fragment into a ToolRecord through the chat model.
type Service struct {
	cfg      Config
	model    model.BaseChatModel
	prompts  *prompts.SystemPrompts
	taxonomy *taxonomy.Taxonomy
	metrics  *metrics.Metrics
	log      *logger.Logger
}

func NewService(cfg Config, chatModel model.BaseChatModel, tx *taxonomy.Taxonomy, m *metrics.Metrics) *Service {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Temperature == nil {
		t := DefaultTemperature
		cfg.Temperature = &t
	}
	if tx == nil {
		tx = taxonomy.Default()
	}
	return &Service{
		cfg:      cfg,
		model:    chatModel,
		prompts:  prompts.NewSystemPrompts(),
		taxonomy: tx,
		metrics:  m,
		log:      logger.New("Normalizer"),
	}
}

func (s *Service) Taxonomy() *taxonomy.Taxonomy { return s.taxonomy }

// Configured reports whether Normalize can reach a model.
func (s *Service) Configured() error {
	if strings.TrimSpace(s.cfg.APIKey) == "" {
		return domain.MissingSetting("GEMINI_API_KEY")
	}
	if s.model == nil {
		return &domain.ConfigurationError{Setting: "LLM_PROVIDER", Message: "chat model not initialized"}
	}
	return nil
}

// Normalize asks the model for a ToolRecord and validates it strictly.
// A missing credential fails before any network call.
func (s *Service) Normalize(ctx context.Context, url string, fragment domain.ScrapedFragment) (domain.ToolRecord, error) {
	if err := s.Configured(); err != nil {
		return domain.ToolRecord{}, err
	}

	messages, err := s.BuildMessages(ctx, url, fragment)
	if err != nil {
		return domain.ToolRecord{}, domain.NewNormalizationError("build prompt", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	response, err := s.model.Generate(ctx, messages,
		model.WithTemperature(*s.cfg.Temperature),
		gemini.WithResponseJSONSchema(ToolRecordSchema()),
	)
	s.metrics.ObserveLLM(time.Since(start))
	if err != nil {
		s.log.LogErrorf("model call for %s failed after %v: %v", url, time.Since(start), err)
		return domain.ToolRecord{}, domain.NewNormalizationError("model call failed", err)
	}
	if response == nil {
		return domain.ToolRecord{}, domain.NewNormalizationError("model returned no message", nil)
	}
	s.logUsage(url, response, time.Since(start))

	record, err := DecodeToolRecord(response.Content, s.taxonomy)
	if err != nil {
		s.log.Warn().Str("url", url).Err(err).Msg("model output rejected")
		return domain.ToolRecord{}, err
	}
	return record, nil
}

// BuildMessages renders the prompt for one fragment.
func (s *Service) BuildMessages(ctx context.Context, url string, fragment domain.ScrapedFragment) ([]*schema.Message, error) {
	fragmentJSON, err := json.MarshalIndent(fragment, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal fragment: %w", err)
	}
	outputTemplate, err := json.MarshalIndent(domain.ToolRecord{}.WithDefaults(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal output template: %w", err)
	}

	vars := map[string]any{
		prompts.VarCategories:     taxonomy.Render(s.taxonomy.Categories),
		prompts.VarSubcategories:  taxonomy.Render(s.taxonomy.Subcategories),
		prompts.VarTags:           taxonomy.Render(s.taxonomy.Tags),
		prompts.VarOutputTemplate: string(outputTemplate),
		prompts.VarURL:            url,
		prompts.VarFragment:       string(fragmentJSON),
	}
	messages, err := s.prompts.ToolRecord.Format(ctx, vars)
	if err != nil {
		return nil, fmt.Errorf("format tool record template: %w", err)
	}
	return messages, nil
}

func (s *Service) logUsage(url string, response *schema.Message, took time.Duration) {
	event := s.log.Debug().Str("url", url).Dur("took", took)
	if response.ResponseMeta != nil && response.ResponseMeta.Usage != nil {
		usage := response.ResponseMeta.Usage
		event = event.Int("prompt_tokens", usage.PromptTokens).
			Int("completion_tokens", usage.CompletionTokens).
			Int("total_tokens", usage.TotalTokens)
	}
	event.Msg("model call complete")
}
