package url

import (
	"context"
	"net/url"
	"strings"
)

// CreateSearchURL expands a search engine template with query.
//
// "%s" is replaced by the query terms, each query-escaped and joined with
// "+"; "%S" is replaced by the raw query. A template with neither token gets
// the escaped terms appended.
//
//	CreateSearchURL("go  generics", "https://duckduckgo.com/?q=%s")
//	  → "https://duckduckgo.com/?q=go+generics"
func CreateSearchURL(query, template string) string {
	if !strings.Contains(template, "%s") && !strings.Contains(template, "%S") {
		template += "%s"
	}

	terms := strings.Fields(query)
	escaped := make([]string, 0, len(terms))
	for _, term := range terms {
		escaped = append(escaped, url.QueryEscape(term))
	}

	out := strings.ReplaceAll(template, "%S", strings.TrimSpace(query))
	return strings.ReplaceAll(out, "%s", strings.Join(escaped, "+"))
}

// Classifier is the default URL classifier backed by LooksLikeURL.
type Classifier struct{}

// IsURL reports whether query should be opened as a URL.
func (Classifier) IsURL(_ context.Context, query string) bool {
	return LooksLikeURL(query)
}
