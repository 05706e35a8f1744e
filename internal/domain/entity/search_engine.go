package entity

import (
	"strings"
	"sync"
)

// UserSearchEngine is a user-defined search engine addressed by a keyword
// typed as the first word of the query.
type UserSearchEngine struct {
	Keyword           string `json:"keyword"`
	SearchURLTemplate string `json:"url"`
	Description       string `json:"description,omitempty"`
}

// SearchEngineRegistry maps keywords to search engines.
// Lookups only ever return engines that were explicitly registered under the
// exact keyword; names the registry reserves for itself never match.
type SearchEngineRegistry struct {
	mu      sync.RWMutex
	engines map[string]UserSearchEngine
}

// reservedKeywords can never be registered or matched. They collide with
// property names of the mapping used by browser-side settings storage.
var reservedKeywords = map[string]struct{}{
	"__proto__":            {},
	"constructor":          {},
	"hasOwnProperty":       {},
	"isPrototypeOf":        {},
	"propertyIsEnumerable": {},
	"toLocaleString":       {},
	"toString":             {},
	"valueOf":              {},
}

// NewSearchEngineRegistry creates a registry holding the given engines.
func NewSearchEngineRegistry(engines ...UserSearchEngine) *SearchEngineRegistry {
	r := &SearchEngineRegistry{}
	r.Set(engines)
	return r
}

// Set replaces the registered engines. Engines with an empty, whitespace
// containing or reserved keyword are skipped.
func (r *SearchEngineRegistry) Set(engines []UserSearchEngine) {
	next := make(map[string]UserSearchEngine, len(engines))
	for _, e := range engines {
		if !isValidKeyword(e.Keyword) || e.SearchURLTemplate == "" {
			continue
		}
		next[e.Keyword] = e
	}

	r.mu.Lock()
	r.engines = next
	r.mu.Unlock()
}

// Lookup returns the engine registered under keyword.
func (r *SearchEngineRegistry) Lookup(keyword string) (*UserSearchEngine, bool) {
	if r == nil || !isValidKeyword(keyword) {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[keyword]
	if !ok {
		return nil, false
	}
	return &e, true
}

// Len returns the number of registered engines.
func (r *SearchEngineRegistry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}

func isValidKeyword(keyword string) bool {
	if keyword == "" || strings.ContainsAny(keyword, " \t\r\n") {
		return false
	}
	_, reserved := reservedKeywords[keyword]
	return !reserved
}
