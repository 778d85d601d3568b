package search

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

	"extractor/internal/domain"
	"extractor/internal/logger"
)

const (
	DefaultSerpAPIBaseURL = "https://serpapi.com/search.json"
	defaultSerpAPIEngine  = "google"
	defaultSerpAPICount   = 5
	maxErrorBodyBytes     = 512
)

type SerpAPIConfig struct {
	BaseURL string
	APIKey  string
	Engine  string
	Count   int
	Client  *http.Client
}

func (c SerpAPIConfig) withDefaults() SerpAPIConfig {
	if strings.TrimSpace(c.BaseURL) == "" {
		c.BaseURL = DefaultSerpAPIBaseURL
	}
	if c.Engine == "" {
		c.Engine = defaultSerpAPIEngine
	}
	if c.Count <= 0 {
		c.Count = defaultSerpAPICount
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 15 * time.Second}
	}
	return c
}

// SerpAPI queries Google through serpapi.com and maps organic_results.
type SerpAPI struct {
	cfg SerpAPIConfig
	log *logger.Logger
}

func NewSerpAPI(cfg SerpAPIConfig) *SerpAPI {
	return &SerpAPI{cfg: cfg.withDefaults(), log: logger.New("SerpAPI")}
}

func (p *SerpAPI) Name() string { return ProviderSerpAPI }

func (p *SerpAPI) Search(ctx context.Context, query string) (*Response, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return nil, domain.MissingSetting("SERPAPI_API_KEY")
	}
	searchURL, err := url.Parse(p.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("serpapi base url: %w", err)
	}
	values := searchURL.Query()
	values.Set("engine", p.cfg.Engine)
	values.Set("q", query)
	values.Set("num", strconv.Itoa(p.cfg.Count))
	values.Set("api_key", p.cfg.APIKey)
	searchURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.cfg.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, fmt.Errorf("serpapi status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Error          string `json:"error"`
		OrganicResults []struct {
			Title     string `json:"title"`
			Snippet   string `json:"snippet"`
			Link      string `json:"link"`
			Thumbnail string `json:"thumbnail"`
		} `json:"organic_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode serpapi response: %w", err)
	}
	// SerpAPI reports an empty result page through the error field with a 200 status
	if payload.Error != "" && !strings.Contains(strings.ToLower(payload.Error), "hasn't returned any results") {
		return nil, fmt.Errorf("serpapi: %s", payload.Error)
	}

	results := make([]Result, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		results = append(results, Result{
			Title:     strings.TrimSpace(r.Title),
			Snippet:   strings.TrimSpace(r.Snippet),
			Link:      strings.TrimSpace(r.Link),
			Thumbnail: strings.TrimSpace(r.Thumbnail),
		})
	}
	p.log.Debug().Str("query", query).Int("results", len(results)).Dur("took", time.Since(start)).Msg("serpapi search")

	return &Response{
		Query:    query,
		Provider: ProviderSerpAPI,
		TookMs:   time.Since(start).Milliseconds(),
		Results:  results,
	}, nil
}
