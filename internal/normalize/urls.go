package normalize

import (
	"net/url"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

// AbsoluteURL rewrites protocol-relative URLs to https.
func AbsoluteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}

// ArticlePath returns the site path for an article slug.
func ArticlePath(slug string) string {
	return "/article/" + url.PathEscape(strings.TrimSpace(slug))
}

// BreakingURL normalizes a breaking-news link. Root-relative paths and
// values with a scheme are kept; anything else is taken as an article slug.
func BreakingURL(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "/") || schemePattern.MatchString(raw) {
		return &raw
	}
	path := ArticlePath(raw)
	return &path
}
