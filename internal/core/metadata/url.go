package metadata

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"extractor/internal/domain"
)

// NormalizeURL trims the input and prefixes https:// when no http(s) scheme is present.
func NormalizeURL(raw string) (string, error) {
	u := strings.TrimSpace(raw)
	if u == "" {
		return "", domain.ErrEmptyURL
	}
	lower := strings.ToLower(u)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		u = "https://" + strings.TrimPrefix(u, "//")
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", raw)
	}
	return u, nil
}

// Domain returns the lower-cased host of a normalized URL without a leading "www.".
func Domain(normalized string) (string, error) {
	parsed, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", normalized, err)
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return "", fmt.Errorf("invalid URL %q: missing host", normalized)
	}
	return strings.TrimPrefix(host, "www."), nil
}

var secondLevelSuffixes = map[string]struct{}{
	"co": {}, "com": {}, "org": {}, "net": {}, "ac": {}, "gov": {}, "edu": {},
}

// DomainLabel picks the registrable name out of a host: "app.acme.co.uk" -> "acme".
func DomainLabel(host string) string {
	if net.ParseIP(host) != nil {
		return host
	}
	labels := strings.Split(host, ".")
	switch n := len(labels); {
	case n == 1:
		return labels[0]
	case n >= 3 && len(labels[n-1]) == 2:
		if _, ok := secondLevelSuffixes[labels[n-2]]; ok {
			return labels[n-3]
		}
		return labels[n-2]
	default:
		return labels[n-2]
	}
}

// SearchQueries returns the fallback queries in the order they must be tried.
func SearchQueries(normalized string) ([]string, error) {
	host, err := Domain(normalized)
	if err != nil {
		return nil, err
	}
	return []string{
		DomainLabel(host) + " AI tool",
		host,
		"site:" + host,
	}, nil
}
