// Package completion is the reference completion provider behind the
// vomnibar: custom search engine suggestions, a default search suggestion and
// fuzzy-ranked browsing history.
package completion

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/autocomplete"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
	"github.com/bnema/vomnibar/internal/domain/url"
	"github.com/bnema/vomnibar/internal/infrastructure/cache"
	"github.com/bnema/vomnibar/internal/logging"
)

// Completer names understood by the provider.
const (
	CompleterOmni    = "omni"
	CompleterHistory = "history"
)

const (
	defaultMaxResults  = 10
	defaultHistoryScan = 500
	rankedCacheSize    = 64
)

// Config tunes the provider.
type Config struct {
	MaxResults int
	// HistoryScan bounds how many recent entries are ranked per query.
	HistoryScan int
	// DefaultSearchEngine is a URL template with a %s placeholder.
	DefaultSearchEngine string
}

// Provider implements port.CompletionProvider over the history repository.
type Provider struct {
	engines autocomplete.KeywordRegistry
	history repository.HistoryRepository
	cfg     Config

	mu       sync.Mutex
	snapshot []*entity.HistoryEntry
	stale    bool
	gen      uint64
	inflight map[string][]context.CancelFunc

	// ranked memoizes history rankings per snapshot generation, so
	// backspacing over a query does not rerun the fuzzy search.
	ranked *cache.LRU[rankKey, []entity.Completion]
}

type rankKey struct {
	gen   uint64
	query string
}

var _ port.CompletionProvider = (*Provider)(nil)

// NewProvider creates a provider. history may be nil, in which case only
// search suggestions are produced.
func NewProvider(engines autocomplete.KeywordRegistry, history repository.HistoryRepository, cfg Config) *Provider {
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	if cfg.HistoryScan <= 0 {
		cfg.HistoryScan = defaultHistoryScan
	}
	return &Provider{
		engines:  engines,
		history:  history,
		cfg:      cfg,
		stale:    true,
		inflight: make(map[string][]context.CancelFunc),
		ranked:   cache.NewLRU[rankKey, []entity.Completion](rankedCacheSize),
	}
}

// SetDefaultSearchEngine swaps the default search template, used on config reload.
func (p *Provider) SetDefaultSearchEngine(template string) {
	p.mu.Lock()
	p.cfg.DefaultSearchEngine = template
	p.mu.Unlock()
}

// DefaultSearchEngine returns the current default search template.
func (p *Provider) DefaultSearchEngine() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.DefaultSearchEngine
}

// FilterCompletions returns the completions for req. The primary suggestion,
// when there is one, always comes first.
func (p *Provider) FilterCompletions(ctx context.Context, req port.CompletionRequest) ([]entity.Completion, error) {
	ctx = logging.WithCompleter(ctx, req.CompleterName)
	log := logging.FromContext(ctx)

	ctx, release := p.track(ctx, req.CompleterName)
	defer release()

	switch req.CompleterName {
	case CompleterOmni, CompleterHistory:
	default:
		return nil, fmt.Errorf("unknown completer %q", req.CompleterName)
	}

	query := strings.TrimSpace(req.Query)
	if query == "" && req.CompleterName == CompleterOmni && !req.SeenTabToOpenCompletionList {
		return []entity.Completion{}, nil
	}

	var (
		primary *entity.Completion
		ranked  []entity.Completion
	)

	g, gctx := errgroup.WithContext(ctx)
	if req.CompleterName == CompleterOmni && query != "" {
		g.Go(func() error {
			primary = p.primarySuggestion(query)
			return nil
		})
	}
	g.Go(func() error {
		matches, err := p.rankHistory(gctx, query)
		if err != nil {
			return err
		}
		ranked = matches
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("filter completions: %w", err)
	}

	results := make([]entity.Completion, 0, p.cfg.MaxResults)
	if primary != nil {
		results = append(results, *primary)
	}
	for _, c := range ranked {
		if len(results) >= p.cfg.MaxResults {
			break
		}
		if primary != nil && c.URL == primary.URL {
			continue
		}
		results = append(results, c)
	}

	log.Debug().Int("count", len(results)).Bool("primary", primary != nil).Msg("completions computed")
	return results, nil
}

// CancelCompletions aborts in-flight queries for completerName.
func (p *Provider) CancelCompletions(ctx context.Context, completerName string) error {
	p.mu.Lock()
	cancels := p.inflight[completerName]
	delete(p.inflight, completerName)
	p.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	if len(cancels) > 0 {
		logging.FromContext(ctx).Debug().Str("completer", completerName).Int("cancelled", len(cancels)).Msg("cancelled completion queries")
	}
	return nil
}

// RefreshCompletions drops the cached history snapshot.
func (p *Provider) RefreshCompletions(_ context.Context, _ string) error {
	p.mu.Lock()
	p.stale = true
	p.mu.Unlock()
	return nil
}

func (p *Provider) track(ctx context.Context, completer string) (context.Context, func()) {
	ctx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	p.inflight[completer] = append(p.inflight[completer], cancel)
	p.mu.Unlock()

	return ctx, cancel
}

func (p *Provider) primarySuggestion(query string) *entity.Completion {
	if engine := autocomplete.DetectEngine(query, p.engines); engine != nil {
		terms := autocomplete.StripKeyword(query)
		return &entity.Completion{
			URL:                 url.CreateSearchURL(terms, engine.SearchURLTemplate),
			DisplayMarkup:       searchMarkup(engine.Description, engine.Keyword, terms),
			AutoSelect:          true,
			IsPrimarySuggestion: true,
			IsCustomSearch:      true,
			SearchURL:           engine.SearchURLTemplate,
		}
	}

	if url.LooksLikeURL(query) {
		return &entity.Completion{
			URL:                 url.Normalize(query),
			DisplayMarkup:       query,
			IsPrimarySuggestion: true,
		}
	}

	p.mu.Lock()
	template := p.cfg.DefaultSearchEngine
	p.mu.Unlock()
	if template == "" {
		return nil
	}
	return &entity.Completion{
		URL:                 url.CreateSearchURL(query, template),
		DisplayMarkup:       searchMarkup("", "", query),
		IsPrimarySuggestion: true,
	}
}

func searchMarkup(description, keyword, terms string) string {
	label := description
	if label == "" {
		label = keyword
	}
	if label == "" {
		label = "search"
	}
	return label + ": " + terms
}

func (p *Provider) rankHistory(ctx context.Context, query string) ([]entity.Completion, error) {
	entries, gen, err := p.loadHistory(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	key := rankKey{gen: gen, query: strings.ToLower(query)}
	if ranked, ok := p.ranked.Get(key); ok {
		return ranked, nil
	}
	ranked, err := p.rank(ctx, entries, query)
	if err != nil {
		return nil, err
	}
	p.ranked.Add(key, ranked)
	return ranked, nil
}

func (p *Provider) rank(ctx context.Context, entries []*entity.HistoryEntry, query string) ([]entity.Completion, error) {
	if query == "" {
		out := make([]entity.Completion, 0, min(len(entries), p.cfg.MaxResults))
		for _, e := range entries[:min(len(entries), p.cfg.MaxResults)] {
			out = append(out, historyCompletion(e))
		}
		return out, nil
	}

	matches := fuzzy.FindFrom(strings.ToLower(query), lowered(entries))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Equal fuzzy scores fall back to visit frequency, then recency order.
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return entries[matches[i].Index].VisitCount > entries[matches[j].Index].VisitCount
	})

	out := make([]entity.Completion, 0, min(len(matches), p.cfg.MaxResults))
	for _, m := range matches {
		if len(out) >= p.cfg.MaxResults {
			break
		}
		out = append(out, historyCompletion(entries[m.Index]))
	}
	return out, nil
}

// loweredSource matches against lowercased "title url" so the fuzzy
// search is case-insensitive on both sides.
type loweredSource []string

func (s loweredSource) String(i int) string { return s[i] }
func (s loweredSource) Len() int            { return len(s) }

func lowered(entries []*entity.HistoryEntry) loweredSource {
	out := make(loweredSource, len(entries))
	for i, e := range entries {
		out[i] = strings.ToLower(strings.TrimSpace(e.Title + " " + e.URL))
	}
	return out
}

func historyCompletion(e *entity.HistoryEntry) entity.Completion {
	markup := e.URL
	if e.Title != "" {
		markup = e.Title + " · " + e.URL
	}
	return entity.Completion{
		URL:           e.URL,
		DisplayMarkup: markup,
		Description:   CompleterHistory,
	}
}

func (p *Provider) loadHistory(ctx context.Context) ([]*entity.HistoryEntry, uint64, error) {
	if p.history == nil {
		return nil, 0, nil
	}

	p.mu.Lock()
	if !p.stale {
		snapshot, gen := p.snapshot, p.gen
		p.mu.Unlock()
		return snapshot, gen, nil
	}
	p.mu.Unlock()

	entries, err := p.history.GetRecent(ctx, p.cfg.HistoryScan, 0)
	if err != nil {
		return nil, 0, fmt.Errorf("load history: %w", err)
	}

	p.mu.Lock()
	p.snapshot = entries
	p.stale = false
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	// Rankings of older generations can never be hit again.
	p.ranked.Purge()

	logging.FromContext(ctx).Debug().Int("entries", len(entries)).Uint64("generation", gen).Msg("history snapshot loaded")
	return entries, gen, nil
}
