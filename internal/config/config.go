package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	RedisAddr     string
	RedisPassword string

	LLMProvider     string
	GeminiAPIKey    string
	DefaultLLMModel string
	LLMTimeout      time.Duration

	SerpAPIKey     string
	SerpAPIBaseURL string

	UserAgent          string
	DirectFetchTimeout time.Duration
	MaxRedirects       int
	MaxBodyBytes       int64
	SearchTimeout      time.Duration
	RenderFallback     bool
	RenderTimeout      time.Duration

	TaxonomyFile string

	TaskMaxRetries    int
	WorkerConcurrency int
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getenvDuration accepts Go durations ("30s") or a bare number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func Load() Config {
	return Config{
		AppEnv:        getenv("APP_ENV", "development"),
		HTTPAddr:      getenv("HTTP_ADDR", ":8081"),
		RedisAddr:     getenv("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		LLMProvider:     getenv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		DefaultLLMModel: getenv("DEFAULT_LLM_MODEL", "gemini-2.0-flash"),
		LLMTimeout:      getenvDuration("LLM_TIMEOUT", 30*time.Second),

		SerpAPIKey:     os.Getenv("SERPAPI_API_KEY"),
		SerpAPIBaseURL: getenv("SERPAPI_BASE_URL", "https://serpapi.com/search.json"),

		UserAgent:          getenv("FETCH_USER_AGENT", ""),
		DirectFetchTimeout: getenvDuration("DIRECT_FETCH_TIMEOUT", 10*time.Second),
		MaxRedirects:       getenvInt("FETCH_MAX_REDIRECTS", 5),
		MaxBodyBytes:       int64(getenvInt("FETCH_MAX_BODY_BYTES", 2<<20)),
		SearchTimeout:      getenvDuration("SEARCH_TIMEOUT", 15*time.Second),
		RenderFallback:     getenvBool("RENDER_FALLBACK", false),
		RenderTimeout:      getenvDuration("RENDER_TIMEOUT", 20*time.Second),

		TaxonomyFile: os.Getenv("TAXONOMY_FILE"),

		TaskMaxRetries:    getenvInt("TASK_MAX_RETRIES", 0),
		WorkerConcurrency: getenvInt("WORKER_CONCURRENCY", 10),
	}
}
