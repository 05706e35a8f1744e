package completion_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository/mocks"
	"github.com/bnema/vomnibar/internal/domain/url"
	"github.com/bnema/vomnibar/internal/infrastructure/completion"
	"github.com/bnema/vomnibar/internal/logging"
)

const (
	wikiTemplate = "https://en.wikipedia.org/w/index.php?search=%s"
	ddgTemplate  = "https://duckduckgo.com/?q=%s"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("debug", "console"))
}

func testEngines() *entity.SearchEngineRegistry {
	return entity.NewSearchEngineRegistry(entity.UserSearchEngine{
		Keyword:           "w",
		SearchURLTemplate: wikiTemplate,
		Description:       "Wikipedia",
	})
}

func testHistory() []*entity.HistoryEntry {
	return []*entity.HistoryEntry{
		{ID: 1, URL: "https://go.dev", Title: "The Go Programming Language", VisitCount: 4},
		{ID: 2, URL: "https://example.com", Title: "Example", VisitCount: 1},
		{ID: 3, URL: "https://pkg.go.dev/golang.org/x/sync", Title: "sync", VisitCount: 9},
	}
}

func omni(query string) port.CompletionRequest {
	return port.CompletionRequest{CompleterName: completion.CompleterOmni, Query: query}
}

func TestProvider_KeywordQueryYieldsPrimaryCustomSearch(t *testing.T) {
	p := completion.NewProvider(testEngines(), nil, completion.Config{})

	results, err := p.FilterCompletions(testContext(), omni("w golang  generics"))
	require.NoError(t, err)
	require.Len(t, results, 1)

	primary := results[0]
	assert.True(t, primary.IsPrimarySearchSuggestion())
	assert.True(t, primary.AutoSelect)
	assert.Equal(t, wikiTemplate, primary.SearchURL)
	assert.Equal(t, "https://en.wikipedia.org/w/index.php?search=golang+generics", primary.URL)
	assert.Equal(t, "Wikipedia: golang generics", primary.DisplayMarkup)
}

func TestProvider_EmptyOmniQueryWaitsForTab(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	p := completion.NewProvider(testEngines(), repo, completion.Config{MaxResults: 2})
	ctx := testContext()

	results, err := p.FilterCompletions(ctx, omni("   "))
	require.NoError(t, err)
	assert.Empty(t, results)

	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return(testHistory(), nil).Once()

	req := omni("")
	req.SeenTabToOpenCompletionList = true
	results, err = p.FilterCompletions(ctx, req)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "https://go.dev", results[0].URL)
	assert.Equal(t, "https://example.com", results[1].URL)
}

func TestProvider_RanksHistoryAfterDefaultSearch(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return(testHistory(), nil).Once()

	p := completion.NewProvider(testEngines(), repo, completion.Config{DefaultSearchEngine: ddgTemplate})

	results, err := p.FilterCompletions(testContext(), omni("GoLang"))
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.True(t, results[0].IsPrimarySuggestion)
	assert.False(t, results[0].IsCustomSearch)
	assert.Equal(t, "https://duckduckgo.com/?q=GoLang", results[0].URL)

	urls := make([]string, 0, len(results))
	for _, c := range results[1:] {
		urls = append(urls, c.URL)
	}
	assert.Contains(t, urls, "https://go.dev")
	assert.NotContains(t, urls, "https://example.com")
}

func TestProvider_URLQuerySuggestsNormalizedURL(t *testing.T) {
	p := completion.NewProvider(testEngines(), nil, completion.Config{DefaultSearchEngine: ddgTemplate})

	results, err := p.FilterCompletions(testContext(), omni("example.com/docs"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, url.Normalize("example.com/docs"), results[0].URL)
	assert.False(t, results[0].IsCustomSearch)
}

func TestProvider_HistoryCompleterListsRecentOnEmptyQuery(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return(testHistory(), nil).Once()

	p := completion.NewProvider(testEngines(), repo, completion.Config{})

	results, err := p.FilterCompletions(testContext(), port.CompletionRequest{CompleterName: completion.CompleterHistory})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, c := range results {
		assert.False(t, c.IsPrimarySuggestion)
		assert.False(t, c.HasInsertText(), "history entries leave the typed text alone")
	}
}

func TestProvider_SnapshotReloadsAfterRefresh(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return(testHistory(), nil).Times(2)

	p := completion.NewProvider(testEngines(), repo, completion.Config{})
	ctx := testContext()

	_, err := p.FilterCompletions(ctx, omni("go"))
	require.NoError(t, err)
	_, err = p.FilterCompletions(ctx, omni("gol"))
	require.NoError(t, err)

	require.NoError(t, p.RefreshCompletions(ctx, completion.CompleterOmni))

	_, err = p.FilterCompletions(ctx, omni("gola"))
	require.NoError(t, err)
}

func TestProvider_UnknownCompleter(t *testing.T) {
	p := completion.NewProvider(testEngines(), nil, completion.Config{})

	_, err := p.FilterCompletions(testContext(), port.CompletionRequest{CompleterName: "bookmarks", Query: "x"})
	assert.Error(t, err)
}

func TestProvider_CancelAbortsInflightQuery(t *testing.T) {
	started := make(chan struct{})
	repo := mocks.NewMockHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).
		RunAndReturn(func(ctx context.Context, _, _ int) ([]*entity.HistoryEntry, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()

	p := completion.NewProvider(testEngines(), repo, completion.Config{})
	ctx := testContext()

	errs := make(chan error, 1)
	go func() {
		_, err := p.FilterCompletions(ctx, omni("slow"))
		errs <- err
	}()

	<-started
	require.NoError(t, p.CancelCompletions(ctx, completion.CompleterOmni))

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("query was not cancelled")
	}
}

func TestProvider_RefreshedHistoryIsRankedAgain(t *testing.T) {
	repo := mocks.NewMockHistoryRepository(t)
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return(testHistory(), nil).Once()
	repo.EXPECT().GetRecent(mock.Anything, 500, 0).Return([]*entity.HistoryEntry{
		{ID: 9, URL: "https://golang.org/doc", Title: "Golang docs", VisitCount: 1},
	}, nil).Once()

	p := completion.NewProvider(testEngines(), repo, completion.Config{})
	ctx := testContext()
	req := port.CompletionRequest{CompleterName: completion.CompleterHistory, Query: "golang"}

	first, err := p.FilterCompletions(ctx, req)
	require.NoError(t, err)
	again, err := p.FilterCompletions(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	require.NoError(t, p.RefreshCompletions(ctx, completion.CompleterHistory))

	fresh, err := p.FilterCompletions(ctx, req)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "https://golang.org/doc", fresh[0].URL)
}
