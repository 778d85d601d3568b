package metadata

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageMeta is the subset of page metadata a fragment is built from.
type PageMeta struct {
	Title       string
	Description string
	Image       string
}

var (
	// quote-aware so a '>' inside an attribute value does not end the tag
	metaTagRe = regexp.MustCompile(`(?is)<meta\b(?:[^>"']|"[^"]*"|'[^']*')*>`)
	attrRe    = regexp.MustCompile(`(?is)([a-z][a-z0-9_:.-]*)\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
)

// metaTags maps each <meta> tag's property/name key to its content, independent of attribute order.
// The first tag for a key wins.
func metaTags(page string) map[string]string {
	out := make(map[string]string)
	for _, tag := range metaTagRe.FindAllString(page, -1) {
		attrs := make(map[string]string, 3)
		for _, m := range attrRe.FindAllStringSubmatch(tag, -1) {
			attrs[strings.ToLower(m[1])] = m[2] + m[3] + m[4]
		}
		content := strings.TrimSpace(html.UnescapeString(attrs["content"]))
		if content == "" {
			continue
		}
		for _, keyAttr := range []string{"property", "name"} {
			key := strings.ToLower(strings.TrimSpace(attrs[keyAttr]))
			if key == "" {
				continue
			}
			if _, seen := out[key]; !seen {
				out[key] = content
			}
		}
	}
	return out
}

// ExtractMeta pulls og:title/og:description/og:image, falling back to <title> and name="description".
func ExtractMeta(body []byte) PageMeta {
	tags := metaTags(string(body))
	m := PageMeta{
		Title:       tags["og:title"],
		Description: tags["og:description"],
		Image:       tags["og:image"],
	}
	if m.Description == "" {
		m.Description = tags["description"]
	}
	if m.Title == "" {
		if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
			m.Title = collapseSpace(doc.Find("title").First().Text())
		}
	}
	return m
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
