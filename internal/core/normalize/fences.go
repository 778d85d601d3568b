package normalize

import (
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```[A-Za-z0-9_+-]*[ \t]*\r?\n?(.*?)\r?\n?[ \t]*```")
	openFenceRe   = regexp.MustCompile("^```[A-Za-z0-9_+-]*[ \t]*\r?\n?")
)

// StripCodeFences removes Markdown ``` fences, with or without a language tag, around a model response.
// Text that already starts with a JSON object is returned trimmed but otherwise untouched.
func StripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return s
	}
	if m := fencedBlockRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	// unterminated fence, usually a truncated response
	return strings.TrimSpace(openFenceRe.ReplaceAllString(s, ""))
}
