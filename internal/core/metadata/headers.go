package metadata

import (
	"math/rand"
	"net/http"
)

// HeaderProfile represents a complete set of HTTP headers for a client identity
type HeaderProfile struct {
	UserAgent       string
	Accept          string
	AcceptLanguage  string
	AcceptEncoding  string
	SecFetchDest    string
	SecFetchMode    string
	SecFetchSite    string
	SecFetchUser    string
	SecChUa         string
	SecChUaMobile   string
	SecChUaPlatform string
}

// HeaderStrategy names the identity a request presents
type HeaderStrategy string

const (
	StrategyModernBrowser HeaderStrategy = "modern_browser"
	StrategyBotFriendly   HeaderStrategy = "bot_friendly"
)

// DefaultUserAgent identifies the direct fetcher honestly to site operators
const DefaultUserAgent = "Mozilla/5.0 (compatible; ToolMetadataBot/1.0; +https://github.com/extractor/tool-metadata)"

var modernBrowserProfiles = []HeaderProfile{
	{
		UserAgent:       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Accept:          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		AcceptLanguage:  "en-US,en;q=0.9",
		AcceptEncoding:  "gzip, deflate, br",
		SecFetchDest:    "document",
		SecFetchMode:    "navigate",
		SecFetchSite:    "none",
		SecFetchUser:    "?1",
		SecChUa:         `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`,
		SecChUaMobile:   "?0",
		SecChUaPlatform: `"macOS"`,
	},
	{
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
		Accept:          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		AcceptLanguage:  "en-US,en;q=0.9",
		AcceptEncoding:  "gzip, deflate, br",
		SecFetchDest:    "document",
		SecFetchMode:    "navigate",
		SecFetchSite:    "none",
		SecFetchUser:    "?1",
		SecChUa:         `"Google Chrome";v="131", "Chromium";v="131", "Not_A Brand";v="24"`,
		SecChUaMobile:   "?0",
		SecChUaPlatform: `"Windows"`,
	},
}

var botFriendlyProfile = HeaderProfile{
	UserAgent:      DefaultUserAgent,
	Accept:         "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	AcceptLanguage: "en-US,en;q=0.9",
	AcceptEncoding: "gzip, deflate, br",
}

// GetHeaderProfile returns a header profile for the given strategy
func GetHeaderProfile(strategy HeaderStrategy) HeaderProfile {
	switch strategy {
	case StrategyModernBrowser:
		return modernBrowserProfiles[rand.Intn(len(modernBrowserProfiles))]
	default:
		return botFriendlyProfile
	}
}

// Headers flattens the profile, skipping the user agent and empty values
func (p HeaderProfile) Headers() map[string]string {
	headers := map[string]string{
		"Accept":          p.Accept,
		"Accept-Language": p.AcceptLanguage,
		"Accept-Encoding": p.AcceptEncoding,
	}
	if p.SecFetchDest != "" {
		headers["Sec-Fetch-Dest"] = p.SecFetchDest
		headers["Sec-Fetch-Mode"] = p.SecFetchMode
		headers["Sec-Fetch-Site"] = p.SecFetchSite
		if p.SecFetchUser != "" {
			headers["Sec-Fetch-User"] = p.SecFetchUser
		}
	}
	if p.SecChUa != "" {
		headers["Sec-Ch-Ua"] = p.SecChUa
		headers["Sec-Ch-Ua-Mobile"] = p.SecChUaMobile
		headers["Sec-Ch-Ua-Platform"] = p.SecChUaPlatform
	}
	for k, v := range headers {
		if v == "" {
			delete(headers, k)
		}
	}
	return headers
}

// Apply sets the profile on an outgoing request
func (p HeaderProfile) Apply(h http.Header) {
	h.Set("User-Agent", p.UserAgent)
	for k, v := range p.Headers() {
		h.Set(k, v)
	}
}
