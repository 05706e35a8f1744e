package port

import (
	"context"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

// CompletionRequest is the query sent to a completion provider.
type CompletionRequest struct {
	CompleterName               string   `json:"completerName"`
	QueryTerms                  []string `json:"queryTerms"`
	Query                       string   `json:"query"`
	SeenTabToOpenCompletionList bool     `json:"seenTabToOpenCompletionList"`
}

// CompletionProvider computes completions for the vomnibar.
// Providers are not required to be request-id aware: correlation is done by
// the caller. FilterCompletions may block; callers never invoke it on the
// UI loop.
type CompletionProvider interface {
	// FilterCompletions returns the ordered completions for req (possibly empty).
	FilterCompletions(ctx context.Context, req CompletionRequest) ([]entity.Completion, error)

	// CancelCompletions hints that pending work for completerName may be
	// abandoned. Providers are free to ignore it.
	CancelCompletions(ctx context.Context, completerName string) error

	// RefreshCompletions hints that completerName should refresh any cached
	// data before the next query.
	RefreshCompletions(ctx context.Context, completerName string) error
}
