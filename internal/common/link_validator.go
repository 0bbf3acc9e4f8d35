package common

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// URL pattern to extract links from content text
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// NormalizeContentLink validates the link attached to a diary content.
// Empty is allowed; otherwise it must be an absolute http(s) URL.
func NormalizeContentLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", nil
	}

	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("content link %q: %w", link, ErrInvalidInput)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return link, nil
	default:
		return "", fmt.Errorf("content link scheme %q: %w", u.Scheme, ErrInvalidInput)
	}
}

// FirstLink returns the first http(s) URL found in text, or "".
// Used as the content link when the client sends none.
func FirstLink(text string) string {
	return urlPattern.FindString(text)
}
