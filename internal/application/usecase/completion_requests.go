package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/autocomplete"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/logging"
	"github.com/bnema/vomnibar/internal/ui/mainloop"
)

// CompletionResponse is a provider result tagged with the id of the request
// that produced it.
type CompletionResponse struct {
	RequestID   string
	Completions []entity.Completion
	Err         error
}

// PendingCompletions is the future returned for one completion request.
type PendingCompletions struct {
	ID string

	done chan struct{}
	resp CompletionResponse
}

func newPendingCompletions(id string) *PendingCompletions {
	return &PendingCompletions{ID: id, done: make(chan struct{})}
}

func (p *PendingCompletions) resolve(resp CompletionResponse) {
	p.resp = resp
	close(p.done)
}

// Done is closed once the provider has answered.
func (p *PendingCompletions) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the provider answers or ctx ends. It does not check
// whether the response is still current.
func (p *PendingCompletions) Await(ctx context.Context) (CompletionResponse, error) {
	select {
	case <-p.done:
		return p.resp, nil
	case <-ctx.Done():
		return CompletionResponse{RequestID: p.ID}, ctx.Err()
	}
}

// notification identifies a coalesced provider notification.
type notification struct {
	kind      string
	completer string
}

// CompletionRequestInput describes the controller state a request is built
// from.
type CompletionRequestInput struct {
	VisibleText                 string
	ActiveEngine                *entity.UserSearchEngine
	CompleterName               string
	SeenTabToOpenCompletionList bool
}

// CompletionRequestManager issues completion requests tagged with a fresh
// request id and drops every response whose id is no longer the latest.
//
// Request, Accept and Reset must be called from the UI loop; responses are
// delivered back onto that loop through post. Notifications and queries
// reach the provider in the order they were issued: a cancel only ever
// aborts queries issued before it.
type CompletionRequestManager struct {
	provider port.CompletionProvider
	post     func(func())
	outbox   *mainloop.Serial
	notify   *mainloop.Coalescer[notification]
	newID    func() string

	lastRequestID string
}

// NewCompletionRequestManager creates a manager. post schedules a function
// on the UI loop.
func NewCompletionRequestManager(provider port.CompletionProvider, post func(func())) *CompletionRequestManager {
	outbox := mainloop.NewSerial()
	return &CompletionRequestManager{
		provider: provider,
		post:     post,
		outbox:   outbox,
		notify:   mainloop.NewCoalescer[notification](outbox.Post),
		newID:    uuid.NewString,
	}
}

// BuildRequest computes the provider request for in. A suppressed search
// engine keyword is reinstated in the query.
func BuildRequest(in CompletionRequestInput) port.CompletionRequest {
	query := autocomplete.EffectiveQuery(in.VisibleText, in.ActiveEngine)
	return port.CompletionRequest{
		CompleterName:               in.CompleterName,
		QueryTerms:                  autocomplete.QueryTerms(query),
		Query:                       query,
		SeenTabToOpenCompletionList: in.SeenTabToOpenCompletionList,
	}
}

// Request issues a new completion request, making it the only current one.
// onResult runs on the UI loop, and only if no newer request was issued (and
// Reset was not called) in the meantime.
func (m *CompletionRequestManager) Request(
	ctx context.Context,
	in CompletionRequestInput,
	onResult func(CompletionResponse),
) *PendingCompletions {
	id := m.newID()
	m.lastRequestID = id

	req := BuildRequest(in)
	pending := newPendingCompletions(id)

	reqCtx := logging.WithRequestID(ctx, id)
	logging.FromContext(reqCtx).Debug().
		Str("query", req.Query).
		Str("completer", req.CompleterName).
		Bool("seen_tab", req.SeenTabToOpenCompletionList).
		Msg("requesting completions")

	m.outbox.Post(func() {
		go m.filter(reqCtx, req, pending, onResult)
	})

	return pending
}

func (m *CompletionRequestManager) filter(
	ctx context.Context,
	req port.CompletionRequest,
	pending *PendingCompletions,
	onResult func(CompletionResponse),
) {
	completions, err := m.provider.FilterCompletions(ctx, req)
	resp := CompletionResponse{RequestID: pending.ID, Completions: completions, Err: err}
	pending.resolve(resp)

	m.post(func() {
		if !m.Accept(ctx, resp) {
			return
		}
		if onResult != nil {
			onResult(resp)
		}
	})
}

// Accept reports whether resp may be applied: it must answer the latest
// request and carry no error.
func (m *CompletionRequestManager) Accept(ctx context.Context, resp CompletionResponse) bool {
	log := logging.FromContext(ctx)

	if !m.IsCurrent(resp.RequestID) {
		log.Debug().
			Str("response_id", resp.RequestID).
			Str("last_request_id", m.lastRequestID).
			Msg("dropping stale completion response")
		return false
	}
	if resp.Err != nil {
		log.Warn().Err(resp.Err).Msg("completion provider failed")
		return false
	}
	return true
}

// IsCurrent reports whether id identifies the latest issued request.
func (m *CompletionRequestManager) IsCurrent(id string) bool {
	return id != "" && id == m.lastRequestID
}

// Reset forgets the latest request so any in-flight response is discarded.
func (m *CompletionRequestManager) Reset() {
	m.lastRequestID = ""
}

// Cancel tells the provider the user is still typing. Bursts are coalesced
// and delivery is best effort; correctness never depends on it.
func (m *CompletionRequestManager) Cancel(ctx context.Context, completerName string) {
	m.notify.Post(notification{"cancel", completerName}, func() {
		if err := m.provider.CancelCompletions(ctx, completerName); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("completer", completerName).Msg("cancel notification failed")
		}
	})
}

// Refresh asks the provider to refresh cached data for completerName.
func (m *CompletionRequestManager) Refresh(ctx context.Context, completerName string) {
	m.notify.Post(notification{"refresh", completerName}, func() {
		if err := m.provider.RefreshCompletions(ctx, completerName); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Str("completer", completerName).Msg("refresh notification failed")
		}
	})
}

// Close drops notifications and queries not yet handed to the provider.
// Queries already running still deliver their response through post.
func (m *CompletionRequestManager) Close() {
	m.notify.Stop()
	m.outbox.Close()
}
