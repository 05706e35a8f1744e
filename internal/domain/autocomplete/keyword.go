// Package autocomplete holds the query-text rules applied while the user
// types into the vomnibar: search engine keyword detection, suppression and
// reinstatement, and query term splitting.
package autocomplete

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// KeywordRegistry looks up search engines by keyword.
type KeywordRegistry interface {
	Lookup(keyword string) (*entity.UserSearchEngine, bool)
}

// DetectEngine returns the search engine whose keyword is the first
// whitespace-delimited token of raw.
//
// For a keyword "w" this matches "w search terms" and "w " but not "w" on
// its own, so typing a keyword alone never suppresses it.
func DetectEngine(raw string, registry KeywordRegistry) *entity.UserSearchEngine {
	if registry == nil {
		return nil
	}

	parts := whitespaceRun.Split(strings.TrimLeftFunc(raw, unicode.IsSpace), -1)
	if len(parts) <= 1 {
		return nil
	}

	engine, ok := registry.Lookup(parts[0])
	if !ok {
		return nil
	}
	return engine
}

// StripKeyword removes the leading keyword token and its separator from raw.
// The remaining terms are rejoined with single spaces.
func StripKeyword(raw string) string {
	terms := whitespaceRun.Split(strings.TrimSpace(raw), -1)
	if len(terms) <= 1 {
		return ""
	}
	return strings.Join(terms[1:], " ")
}

// Reinstatement is the input state after a suppressed keyword is put back.
type Reinstatement struct {
	Text   string
	Cursor int
}

// ReinstateKeyword prepends keyword and a space to the visible text and
// places the cursor right after the separator.
func ReinstateKeyword(keyword, visible string) Reinstatement {
	prefix := keyword + " "
	return Reinstatement{
		Text:   prefix + strings.TrimLeftFunc(visible, unicode.IsSpace),
		Cursor: len([]rune(prefix)),
	}
}

// EffectiveQuery returns the query sent to the completion provider: the
// visible text with any suppressed keyword reinstated.
func EffectiveQuery(visible string, engine *entity.UserSearchEngine) string {
	if engine == nil {
		return visible
	}
	return engine.Keyword + " " + visible
}

// QueryTerms splits a query into its non-empty whitespace separated terms.
func QueryTerms(query string) []string {
	terms := strings.Fields(query)
	if terms == nil {
		return []string{}
	}
	return terms
}
