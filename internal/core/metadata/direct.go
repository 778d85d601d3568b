package metadata

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"extractor/internal/domain"
	"extractor/internal/logger"
)

const StrategyDirect = "direct"

type DirectConfig struct {
	UserAgent    string
	Timeout      time.Duration
	MaxRedirects int
	MaxBodyBytes int64
}

func (c DirectConfig) withDefaults() DirectConfig {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxRedirects <= 0 {
		c.MaxRedirects = 5
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = 2 << 20
	}
	return c
}

// DirectFetchStrategy GETs the page and reads its Open Graph / meta tags.
type DirectFetchStrategy struct {
	cfg     DirectConfig
	client  *http.Client
	profile HeaderProfile
	log     *logger.Logger
}

func NewDirectFetchStrategy(cfg DirectConfig) *DirectFetchStrategy {
	cfg = cfg.withDefaults()
	profile := GetHeaderProfile(StrategyBotFriendly)
	profile.UserAgent = cfg.UserAgent

	maxRedirects := cfg.MaxRedirects
	return &DirectFetchStrategy{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) > maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		profile: profile,
		log:     logger.New("DirectFetch"),
	}
}

func (s *DirectFetchStrategy) Name() string { return StrategyDirect }

func (s *DirectFetchStrategy) Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("build request: %w", err)
	}
	s.profile.Apply(req.Header)

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.ScrapedFragment{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := s.readBody(resp)
	if err != nil {
		return domain.ScrapedFragment{}, err
	}

	meta := ExtractMeta(body)
	s.log.Debug().Str("url", url).Int("status", resp.StatusCode).Int("bytes", len(body)).Dur("took", time.Since(start)).Msg("direct fetch complete")

	if meta.Title == "" && meta.Description == "" {
		return domain.ScrapedFragment{}, errNoMetadata
	}
	return domain.ScrapedFragment{
		Title:     meta.Title,
		Snippet:   meta.Description,
		Link:      url,
		Thumbnail: meta.Image,
	}, nil
}

// readBody decodes gzip/deflate/br bodies and keeps at most MaxBodyBytes; metadata lives in <head>.
func (s *DirectFetchStrategy) readBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, errors.New("empty response body")
	}
	reader := io.Reader(resp.Body)

	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip decode: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	case "deflate":
		fl := flate.NewReader(resp.Body)
		defer fl.Close()
		reader = fl
	}

	body, err := io.ReadAll(io.LimitReader(reader, s.cfg.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
