// Package component holds the vomnibar controller and the state machines it
// is built from.
package component

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/application/usecase"
	"github.com/bnema/vomnibar/internal/domain/autocomplete"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/logging"
	"github.com/bnema/vomnibar/internal/ui/input"
)

// VomnibarConfig holds the collaborators of a Vomnibar.
type VomnibarConfig struct {
	Input      port.InputField
	Renderer   port.Renderer
	Host       port.HostMessenger
	Browser    port.Browser
	Provider   port.CompletionProvider
	Engines    autocomplete.KeywordRegistry
	Classifier port.URLClassifier

	// Post schedules a function on the UI loop. Every Vomnibar method must
	// run on that loop.
	Post func(func())

	// Events, when set, gets the vomnibar subscribed as an input handler.
	Events port.EventSource
}

var _ port.InputHandler = (*Vomnibar)(nil)

// Vomnibar is the controller behind the omnibox popup. It owns the query
// text, the current completions and the show/hide handshake with the host.
type Vomnibar struct {
	input    port.InputField
	renderer port.Renderer
	host     port.HostMessenger
	browser  port.Browser
	engines  autocomplete.KeywordRegistry
	post     func(func())

	requests   *usecase.CompletionRequestManager
	dispatcher *usecase.EnterActionDispatcher
	selection  *Selection
	visibility Visibility

	completerName     string
	forceNewTab       bool
	activeEngine      *entity.UserSearchEngine
	seenTabToOpenList bool
}

// NewVomnibar creates a controller in the Hidden state.
func NewVomnibar(cfg VomnibarConfig) *Vomnibar {
	if cfg.Post == nil {
		panic("component.NewVomnibar: post function cannot be nil")
	}

	v := &Vomnibar{
		input:         cfg.Input,
		renderer:      cfg.Renderer,
		host:          cfg.Host,
		browser:       cfg.Browser,
		engines:       cfg.Engines,
		post:          cfg.Post,
		requests:      usecase.NewCompletionRequestManager(cfg.Provider, cfg.Post),
		dispatcher:    usecase.NewEnterActionDispatcher(cfg.Classifier),
		selection:     NewSelection(cfg.Input, cfg.Renderer),
		completerName: entity.DefaultCompleter,
	}

	if cfg.Events != nil {
		cfg.Events.Subscribe(v)
	}
	return v
}

// Activate validates opts and establishes the initial state for a new
// showing of the popup. Nothing is mutated when opts are invalid.
func (v *Vomnibar) Activate(ctx context.Context, opts entity.ActivateOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	ctx = logging.WithCompleter(ctx, opts.Completer)
	log := logging.FromContext(ctx)

	v.completerName = opts.Completer
	v.selection.SetInitialSelection(opts.InitialSelection())
	v.Reset()
	v.requests.Refresh(ctx, v.completerName)
	v.forceNewTab = opts.NewTab
	v.input.SetValue(opts.Query)
	v.renderInput()

	v.activeEngine = nil
	if opts.Keyword != "" {
		if engine, ok := v.lookupEngine(opts.Keyword); ok {
			v.activeEngine = engine
		} else {
			log.Debug().Str("keyword", opts.Keyword).Msg("activation keyword has no search engine")
		}
	}

	v.visibility.Show()
	log.Debug().
		Str("query", opts.Query).
		Bool("new_tab", opts.NewTab).
		Int("initial_selection", v.selection.InitialSelection()).
		Msg("vomnibar activated")

	v.Update(ctx)
	return nil
}

// HandleKey reacts to a normalized key event and reports whether the event
// was consumed.
func (v *Vomnibar) HandleKey(ctx context.Context, ev entity.KeyEvent) bool {
	action, ok := input.Resolve(ev)
	if !ok {
		return false
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Str("phase", ev.Phase.String()).Msg("key action")

	switch action {
	case entity.KeyActionDismiss:
		v.Hide(ctx, nil)

	case entity.KeyActionTab, entity.KeyActionDown:
		if action == entity.KeyActionTab && v.shouldOpenTabList() {
			v.seenTabToOpenList = true
			v.Update(ctx)
		} else if len(v.selection.Completions()) > 0 {
			v.selection.MoveDown()
			log.Debug().Int("selection", v.selection.Index()).Msg("selection moved down")
		}

	case entity.KeyActionUp:
		v.selection.MoveUp()
		log.Debug().Int("selection", v.selection.Index()).Msg("selection moved up")

	case entity.KeyActionEnter:
		v.confirm(ctx, ev.Modifiers)

	case entity.KeyActionCtrlEnter:
		v.showSelectedURL()

	case entity.KeyActionDelete:
		return v.handleDelete(ctx)

	case entity.KeyActionRemove:
		if current := v.selection.Current(); current != nil {
			log.Info().
				Str("url", logging.TruncateURL(current.URL, 80)).
				Int("selection", v.selection.Index()).
				Msg("remove requested for completion")
		}
	}

	return true
}

// HandleInput reacts to the user editing the input text.
func (v *Vomnibar) HandleInput(ctx context.Context) {
	v.seenTabToOpenList = false
	v.requests.Cancel(ctx, v.completerName)

	if v.activeEngine == nil {
		if engine := autocomplete.DetectEngine(v.input.Value(), v.engines); engine != nil {
			v.activeEngine = engine
			v.input.SetValue(autocomplete.StripKeyword(v.input.Value()))
			v.renderInput()
			logging.FromContext(ctx).Debug().Str("keyword", engine.Keyword).Msg("search engine keyword suppressed")
		}
	}

	// Typing over a previewed suggestion keeps the new text.
	v.selection.DropPreview()

	v.Update(ctx)
}

// Update requests completions for the current state. The result is applied
// on the UI loop unless a newer request superseded it.
func (v *Vomnibar) Update(ctx context.Context) *usecase.PendingCompletions {
	ctx = logging.WithCompleter(ctx, v.completerName)
	return v.requests.Request(ctx, usecase.CompletionRequestInput{
		VisibleText:                 v.input.Value(),
		ActiveEngine:                v.activeEngine,
		CompleterName:               v.completerName,
		SeenTabToOpenCompletionList: v.seenTabToOpenList,
	}, func(resp usecase.CompletionResponse) {
		v.applyCompletions(resp.Completions)
	})
}

// Refresh tells the provider to refresh its data and, while the popup is
// showing, requests completions again.
func (v *Vomnibar) Refresh(ctx context.Context) {
	v.requests.Refresh(ctx, v.completerName)
	if v.visibility.State() == Showing {
		v.Update(ctx)
	}
}

// Close stops talking to the provider. It is safe to call from any goroutine.
func (v *Vomnibar) Close() {
	v.requests.Close()
}

// Hide blurs the input, resets all state and asks the host to hide the
// popup. onHidden is held until the host acknowledges with OnHidden.
func (v *Vomnibar) Hide(ctx context.Context, onHidden func()) {
	v.visibility.BeginHide(onHidden)
	v.input.Blur()
	v.Reset()

	// The host hides the frame after the reset render has landed.
	v.post(func() {
		if err := v.host.PostHide(ctx); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Msg("failed to post hide to host")
		}
	})
}

// OnHidden handles the host's acknowledgment that the popup is gone. The
// callback held by Hide runs here, and only here.
func (v *Vomnibar) OnHidden(ctx context.Context) {
	logging.FromContext(ctx).Debug().Str("from", v.visibility.State().String()).Msg("host acknowledged hide")

	if fn := v.visibility.Acknowledge(); fn != nil {
		fn()
	}
	v.Reset()
}

// Reset returns the controller state to its defaults. The completer name,
// initial selection and force-new-tab flag survive a reset.
func (v *Vomnibar) Reset() {
	v.input.SetValue("")
	v.selection.Reset()
	if v.renderer != nil {
		v.renderer.RenderCompletions(nil)
	}
	v.activeEngine = nil
	v.seenTabToOpenList = false
	v.requests.Reset()
}

// Visibility returns the handshake state.
func (v *Vomnibar) Visibility() VisibilityState {
	return v.visibility.State()
}

// Query returns the text currently shown in the input.
func (v *Vomnibar) Query() string {
	return v.input.Value()
}

// Completions returns the current result set.
func (v *Vomnibar) Completions() []entity.Completion {
	return v.selection.Completions()
}

// SelectionIndex returns the selected index, -1 or 0 meaning the default.
func (v *Vomnibar) SelectionIndex() int {
	return v.selection.Index()
}

// ActiveEngine returns the search engine whose keyword is suppressed, or nil.
func (v *Vomnibar) ActiveEngine() *entity.UserSearchEngine {
	return v.activeEngine
}

// SeenTabToOpenList reports whether tab was used to open the list on an
// empty query.
func (v *Vomnibar) SeenTabToOpenList() bool {
	return v.seenTabToOpenList
}

// CompleterName returns the active completer.
func (v *Vomnibar) CompleterName() string {
	return v.completerName
}

func (v *Vomnibar) lookupEngine(keyword string) (*entity.UserSearchEngine, bool) {
	if v.engines == nil {
		return nil, false
	}
	return v.engines.Lookup(keyword)
}

func (v *Vomnibar) shouldOpenTabList() bool {
	return v.completerName == entity.DefaultCompleter &&
		!v.seenTabToOpenList &&
		strings.TrimSpace(v.input.Value()) == ""
}

func (v *Vomnibar) renderInput() {
	if v.renderer != nil {
		v.renderer.RenderInput(v.input.Value(), v.input.SelectionEnd())
	}
}

func (v *Vomnibar) applyCompletions(completions []entity.Completion) {
	if v.renderer != nil {
		v.renderer.RenderCompletions(completions)
	}
	v.selection.SetCompletions(completions)
	v.input.Focus()
}

// showSelectedURL puts the selected completion's URL into the input so it
// can be edited before confirming.
func (v *Vomnibar) showSelectedURL() {
	if v.activeEngine != nil {
		return
	}
	if current := v.selection.Current(); current != nil {
		v.selection.Substitute(current.URL)
	}
}

func (v *Vomnibar) handleDelete(ctx context.Context) bool {
	switch {
	case v.activeEngine != nil && v.input.SelectionEnd() == 0:
		restored := autocomplete.ReinstateKeyword(v.activeEngine.Keyword, v.input.Value())
		v.input.SetValue(restored.Text)
		v.input.SetCursor(restored.Cursor)
		v.renderInput()
		logging.FromContext(ctx).Debug().Str("keyword", v.activeEngine.Keyword).Msg("search engine keyword reinstated")
		v.activeEngine = nil
		v.Update(ctx)
		return true

	case v.seenTabToOpenList && strings.TrimSpace(v.input.Value()) == "":
		v.seenTabToOpenList = false
		v.Update(ctx)
		return true
	}
	return false
}

func (v *Vomnibar) confirm(ctx context.Context, mods entity.Modifiers) {
	out := v.dispatcher.Dispatch(ctx, usecase.EnterInput{
		InputText:   v.input.Value(),
		Completions: v.selection.Completions(),
		Selection:   v.selection.Index(),
		ForceNewTab: v.forceNewTab,
		Modifiers:   mods,
	})

	if out.Action.Kind == entity.ActionNoop {
		return
	}
	if !out.AwaitHidden {
		v.launch(ctx, out.Action)
		return
	}

	action := out.Action
	v.Hide(ctx, func() { v.launch(ctx, action) })
}

func (v *Vomnibar) launch(ctx context.Context, action entity.TerminalAction) {
	err := v.perform(ctx, action)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("action", action.Kind.String()).Msg("terminal action failed")
	}
}

func (v *Vomnibar) perform(ctx context.Context, action entity.TerminalAction) error {
	switch action.Kind {
	case entity.ActionNavigate:
		if action.NewTab {
			return v.browser.OpenURLInNewTab(ctx, action.URL)
		}
		return v.browser.OpenURLInCurrentTab(ctx, action.URL)
	case entity.ActionRunSearch:
		return v.browser.RunSearchQuery(ctx, action.Query, action.NewTab)
	case entity.ActionSelectTab:
		return v.browser.SelectSpecificTab(ctx, action.TabID)
	case entity.ActionNoop:
		return nil
	default:
		return fmt.Errorf("unknown terminal action %d", action.Kind)
	}
}
