package metadata

import (
	"context"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"extractor/internal/domain"
	"extractor/internal/logger"
)

const StrategyRendered = "rendered"

// RenderedFetchStrategy loads the page in headless Chromium for sites that only emit metadata after scripts run.
type RenderedFetchStrategy struct {
	timeout time.Duration
	start   func() (*playwright.Playwright, error)
	log     *logger.Logger
}

func NewRenderedFetchStrategy(timeout time.Duration) *RenderedFetchStrategy {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &RenderedFetchStrategy{
		timeout: timeout,
		start:   func() (*playwright.Playwright, error) { return playwright.Run() },
		log:     logger.New("RenderedFetch"),
	}
}

func (s *RenderedFetchStrategy) Name() string { return StrategyRendered }

// Fetch returns as soon as ctx ends; the driver is stopped then, which tears down the browser.
func (s *RenderedFetchStrategy) Fetch(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("render %s: %w", url, err)
	}

	type result struct {
		fragment domain.ScrapedFragment
		err      error
	}
	done := make(chan result, 1)
	go func() {
		f, err := s.render(ctx, url)
		done <- result{fragment: f, err: err}
	}()

	select {
	case r := <-done:
		return r.fragment, r.err
	case <-ctx.Done():
		return domain.ScrapedFragment{}, fmt.Errorf("render %s: %w", url, ctx.Err())
	}
}

func (s *RenderedFetchStrategy) render(ctx context.Context, url string) (domain.ScrapedFragment, error) {
	pw, err := s.start()
	if err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("playwright run: %w", err)
	}
	stopOnCancel := context.AfterFunc(ctx, func() {
		s.log.LogDebugf("render of %s abandoned, stopping driver", url)
		_ = pw.Stop()
	})
	defer func() {
		if stopOnCancel() {
			_ = pw.Stop()
		}
	}()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--no-first-run",
			"--disable-extensions",
		},
	})
	if err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("launch: %w", err)
	}
	defer browser.Close()

	profile := GetHeaderProfile(StrategyModernBrowser)
	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent:        playwright.String(profile.UserAgent),
		ExtraHttpHeaders: profile.Headers(),
	})
	if err != nil {
		return domain.ScrapedFragment{}, err
	}
	page, err := bctx.NewPage()
	if err != nil {
		return domain.ScrapedFragment{}, err
	}

	timeoutMs := float64(s.timeout.Milliseconds())
	resp, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeoutMs),
	})
	if err != nil {
		return domain.ScrapedFragment{}, fmt.Errorf("goto failed: %w", err)
	}
	if resp != nil && (resp.Status() < 200 || resp.Status() >= 300) {
		return domain.ScrapedFragment{}, fmt.Errorf("unexpected status %d", resp.Status())
	}

	content, err := page.Content()
	if err != nil {
		return domain.ScrapedFragment{}, err
	}
	meta := ExtractMeta([]byte(content))
	if meta.Title == "" {
		meta.Title, _ = page.Title()
	}
	if meta.Title == "" && meta.Description == "" {
		return domain.ScrapedFragment{}, errNoMetadata
	}
	s.log.Debug().Str("url", url).Msg("rendered fetch complete")

	return domain.ScrapedFragment{
		Title:     meta.Title,
		Snippet:   meta.Description,
		Link:      url,
		Thumbnail: meta.Image,
	}, nil
}
