package eino

import (
	"context"
	"fmt"
	"strings"

	gemini "github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"extractor/internal/domain"
)

// Config represents the configuration for the chat model provider
type Config struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model"`
}

// NewChatModel builds the configured provider's chat model.
// A missing API key is reported as a *domain.ConfigurationError.
func NewChatModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.MissingSetting("GEMINI_API_KEY")
	}
	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return newGeminiModel(ctx, cfg)
	default:
		return nil, &domain.ConfigurationError{
			Setting: "LLM_PROVIDER",
			Message: fmt.Sprintf("unsupported provider %q, supported: gemini", cfg.Provider),
		}
	}
}

func newGeminiModel(ctx context.Context, cfg Config) (model.BaseChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	chatModel, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: client,
		Model:  cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini chat model: %w", err)
	}
	return chatModel, nil
}
