package search

import "context"

const ProviderSerpAPI = "serpapi"

// Result is one organic search hit.
type Result struct {
	Title     string `json:"title"`
	Snippet   string `json:"snippet"`
	Link      string `json:"link"`
	Thumbnail string `json:"thumbnail"`
}

// Response is the normalized outcome of a single query.
type Response struct {
	Query    string   `json:"query"`
	Provider string   `json:"provider"`
	TookMs   int64    `json:"took_ms"`
	Results  []Result `json:"results"`
}

// Provider runs one web search query. Zero organic results is not an error.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string) (*Response, error)
}
