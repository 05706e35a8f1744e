// Package model holds the Bubble Tea models of the vomnibar CLI.
package model

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/autocomplete"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/infrastructure/textinput"
	"github.com/bnema/vomnibar/internal/logging"
	"github.com/bnema/vomnibar/internal/ui/component"
	"github.com/bnema/vomnibar/internal/ui/mainloop"
)

// stateMsg is a snapshot of the controller state taken on its loop.
type stateMsg struct {
	seq         uint64
	value       string
	cursor      int
	completions []entity.Completion
	selection   int
	engine      *entity.UserSearchEngine
}

// doneMsg tells the program the vomnibar is gone.
type doneMsg struct{}

// SessionConfig holds the collaborators of a Session.
type SessionConfig struct {
	Provider   port.CompletionProvider
	Engines    autocomplete.KeywordRegistry
	Classifier port.URLClassifier
	Options    entity.ActivateOptions
}

// Session runs a vomnibar controller on its own loop and plays the host
// page for it: hiding is acknowledged at once and every terminal action
// ends the session.
type Session struct {
	loop     *mainloop.Loop
	buf      *textinput.Buffer
	events   *textinput.Dispatcher
	vomnibar *component.Vomnibar
	options  entity.ActivateOptions

	send func(tea.Msg)
	ctx  context.Context

	// Loop owned.
	completions []entity.Completion
	selection   int
	seq         uint64

	mu     sync.Mutex
	result *entity.TerminalAction
}

var (
	_ port.HostMessenger = (*Session)(nil)
	_ port.Browser       = (*Session)(nil)
	_ port.Renderer      = (*Session)(nil)
)

// NewSession wires a controller to a fresh input buffer.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		loop:      mainloop.NewLoop(0),
		buf:       textinput.NewBuffer(),
		events:    textinput.NewDispatcher(),
		options:   cfg.Options,
		selection: -1,
		send:      func(tea.Msg) {},
	}
	s.vomnibar = component.NewVomnibar(component.VomnibarConfig{
		Input:      s.buf,
		Renderer:   s,
		Host:       s,
		Browser:    s,
		Provider:   cfg.Provider,
		Engines:    cfg.Engines,
		Classifier: cfg.Classifier,
		Post:       s.loop.PostAsync,
		Events:     s.events,
	})
	return s
}

// Run activates the vomnibar and processes events until ctx is cancelled.
// send delivers state snapshots to the program; it may block until the
// program reads them.
func (s *Session) Run(ctx context.Context, send func(tea.Msg)) error {
	s.ctx = logging.WithComponent(ctx, "vomnibar")
	s.send = send
	defer s.vomnibar.Close()

	s.loop.Post(func() {
		if err := s.vomnibar.Activate(s.ctx, s.options); err != nil {
			logging.FromContext(s.ctx).Error().Err(err).Msg("activation rejected")
			s.send(doneMsg{})
			return
		}
		s.publish()
	})
	return s.loop.Run(ctx)
}

// Key forwards a terminal key to the controller. Keys it does not consume
// edit the query. Safe to call from the program's update loop.
func (s *Session) Key(msg tea.KeyMsg) {
	s.loop.PostAsync(func() {
		consumed := false
		for _, ev := range KeyEvents(msg) {
			if s.events.Key(s.ctx, ev) {
				consumed = true
				break
			}
		}
		if !consumed && applyEdit(s.buf, msg) {
			s.events.Input(s.ctx)
		}
		s.publish()
	})
}

// Result returns the action the session ended with, if any.
func (s *Session) Result() (entity.TerminalAction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return entity.TerminalAction{}, false
	}
	return *s.result, true
}

// PostHide acknowledges immediately: the terminal has no animation to wait for.
func (s *Session) PostHide(ctx context.Context) error {
	s.loop.PostAsync(func() {
		s.vomnibar.OnHidden(ctx)
		s.send(doneMsg{})
	})
	return nil
}

func (s *Session) OpenURLInNewTab(_ context.Context, url string) error {
	s.finish(entity.Navigate(url, true))
	return nil
}

func (s *Session) OpenURLInCurrentTab(_ context.Context, url string) error {
	s.finish(entity.Navigate(url, false))
	return nil
}

func (s *Session) SelectSpecificTab(_ context.Context, tabID int) error {
	s.finish(entity.SelectTab(tabID))
	return nil
}

func (s *Session) RunSearchQuery(_ context.Context, query string, newTab bool) error {
	s.finish(entity.RunSearch(query, newTab))
	return nil
}

func (s *Session) RenderCompletions(completions []entity.Completion) {
	s.completions = completions
	s.publish()
}

func (s *Session) RenderSelection(index int) {
	s.selection = index
	s.publish()
}

func (s *Session) RenderInput(string, int) {
	s.publish()
}

func (s *Session) finish(action entity.TerminalAction) {
	s.mu.Lock()
	s.result = &action
	s.mu.Unlock()
	s.send(doneMsg{})
}

func (s *Session) publish() {
	s.seq++
	s.send(stateMsg{
		seq:         s.seq,
		value:       s.buf.Value(),
		cursor:      s.buf.SelectionEnd(),
		completions: s.completions,
		selection:   s.selection,
		engine:      s.vomnibar.ActiveEngine(),
	})
}
