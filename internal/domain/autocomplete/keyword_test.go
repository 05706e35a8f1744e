package autocomplete

import (
	"testing"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *entity.SearchEngineRegistry {
	return entity.NewSearchEngineRegistry(
		entity.UserSearchEngine{Keyword: "w", SearchURLTemplate: "https://en.wikipedia.org/wiki/%s"},
		entity.UserSearchEngine{Keyword: "gh", SearchURLTemplate: "https://github.com/search?q=%s"},
	)
}

func TestDetectEngine(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		keyword string
	}{
		{name: "keyword with terms", raw: "w foo bar", keyword: "w"},
		{name: "keyword with trailing space", raw: "w ", keyword: "w"},
		{name: "leading whitespace", raw: "  gh  repo", keyword: "gh"},
		{name: "keyword alone", raw: "w", keyword: ""},
		{name: "unknown keyword", raw: "x foo", keyword: ""},
		{name: "keyword not first", raw: "foo w bar", keyword: ""},
		{name: "reserved name", raw: "constructor foo", keyword: ""},
		{name: "empty", raw: "", keyword: ""},
	}

	reg := testRegistry()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectEngine(tt.raw, reg)
			if tt.keyword == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.keyword, got.Keyword)
		})
	}
}

func TestDetectEngine_NilRegistry(t *testing.T) {
	assert.Nil(t, DetectEngine("w foo", nil))
}

func TestStripKeyword(t *testing.T) {
	assert.Equal(t, "foo bar", StripKeyword("w foo bar"))
	assert.Equal(t, "foo bar", StripKeyword("w   foo   bar "))
	assert.Equal(t, "", StripKeyword("w "))
	assert.Equal(t, "", StripKeyword("w"))
}

func TestKeywordSuppressionRoundTrip(t *testing.T) {
	reg := testRegistry()
	raw := "w foo bar"

	engine := DetectEngine(raw, reg)
	require.NotNil(t, engine)
	visible := StripKeyword(raw)
	assert.Equal(t, "foo bar", visible)
	assert.Equal(t, raw, EffectiveQuery(visible, engine))

	back := ReinstateKeyword(engine.Keyword, visible)
	assert.Equal(t, raw, back.Text)
	assert.Equal(t, len("w "), back.Cursor)
}

func TestEffectiveQuery_NoEngine(t *testing.T) {
	assert.Equal(t, "foo", EffectiveQuery("foo", nil))
}

func TestQueryTerms(t *testing.T) {
	assert.Equal(t, []string{"w", "foo", "bar"}, QueryTerms("  w foo\tbar "))
	assert.Equal(t, []string{}, QueryTerms("   "))
}
