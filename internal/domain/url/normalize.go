// Package url provides URL classification and search URL construction.
package url

import (
	"net"
	"net/url"
	"strings"
)

// explicitSchemes are always treated as URLs.
var explicitSchemes = []string{
	"http://",
	"https://",
	"ftp://",
	"file://",
	"chrome://",
	"chrome-extension://",
	"view-source:",
	"about:",
	"data:",
	"javascript:",
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if hasExplicitScheme(input) {
		return input
	}
	if LooksLikeURL(input) {
		return "https://" + input
	}
	return input
}

// LooksLikeURL checks if the input appears to be a URL (not a search query).
// Returns true for strings like "github.com", "localhost:8080/x",
// "192.168.1.1" and anything carrying an explicit scheme.
func LooksLikeURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || strings.ContainsAny(input, " \t\r\n") {
		return false
	}

	if hasExplicitScheme(input) {
		return true
	}

	parsed, err := url.Parse("https://" + input)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := parsed.Hostname()
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}

	dot := strings.LastIndex(host, ".")
	if dot <= 0 || dot == len(host)-1 {
		return false
	}
	return isAlpha(host[dot+1:])
}

// HasJavascriptProtocol reports whether rawURL is a bookmarklet.
func HasJavascriptProtocol(rawURL string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(rawURL)), "javascript:")
}

func hasExplicitScheme(input string) bool {
	lower := strings.ToLower(input)
	for _, scheme := range explicitSchemes {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	if len(s) < 2 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
