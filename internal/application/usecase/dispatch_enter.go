package usecase

import (
	"context"
	"strings"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/url"
	"github.com/bnema/vomnibar/internal/logging"
)

// EnterInput is the controller state at confirmation time.
type EnterInput struct {
	InputText   string
	Completions []entity.Completion
	Selection   int
	ForceNewTab bool
	Modifiers   entity.Modifiers
}

// EnterOutput is the resolved action. When AwaitHidden is set the action
// must only run after the host acknowledged the vomnibar is hidden.
type EnterOutput struct {
	Action      entity.TerminalAction
	AwaitHidden bool
}

// EnterActionDispatcher decides what confirming the vomnibar does.
type EnterActionDispatcher struct {
	classifier port.URLClassifier
}

// NewEnterActionDispatcher creates a dispatcher. A nil classifier falls back
// to url.Classifier.
func NewEnterActionDispatcher(classifier port.URLClassifier) *EnterActionDispatcher {
	if classifier == nil {
		classifier = url.Classifier{}
	}
	return &EnterActionDispatcher{classifier: classifier}
}

// Dispatch resolves in into a terminal action.
//
// Custom search URLs are always built from the live input text, never from
// the suggestion's own URL: suggestions arrive asynchronously and may have
// been computed for a shorter prefix of what the user typed.
func (d *EnterActionDispatcher) Dispatch(ctx context.Context, in EnterInput) EnterOutput {
	log := logging.FromContext(ctx)

	query := strings.TrimSpace(in.InputText)
	openInNewTab := in.ForceNewTab || in.Modifiers.Any()

	// Completions may still be in flight if the user confirms right after
	// opening the vomnibar.
	waitingOnCompletions := len(in.Completions) == 0

	var out EnterOutput
	switch {
	case waitingOnCompletions || in.Selection < 0:
		if query == "" {
			log.Debug().Msg("enter on empty query ignored")
			return EnterOutput{Action: entity.Noop()}
		}
		out = d.dispatchTyped(ctx, query, in.Completions, openInNewTab)

	case in.Selection >= len(in.Completions):
		log.Warn().Int("selection", in.Selection).Int("completions", len(in.Completions)).Msg("selection out of range")
		return EnterOutput{Action: entity.Noop()}

	default:
		completion := &in.Completions[in.Selection]
		switch {
		case completion.IsPrimarySearchSuggestion():
			out.Action = entity.Navigate(url.CreateSearchURL(query, completion.SearchURL), openInNewTab)
		case completion.IsTab():
			out.Action = entity.SelectTab(completion.TabID)
		default:
			out.Action = entity.Navigate(completion.URL, openInNewTab)
		}
		out.AwaitHidden = true
	}

	// Bookmarklets only work in the page they were typed against.
	if out.Action.Kind == entity.ActionNavigate && out.Action.NewTab && url.HasJavascriptProtocol(out.Action.URL) {
		out.Action.NewTab = false
	}

	log.Debug().
		Str("action", out.Action.Kind.String()).
		Str("url", logging.TruncateURL(out.Action.URL, 80)).
		Bool("new_tab", out.Action.NewTab).
		Bool("await_hidden", out.AwaitHidden).
		Msg("resolved enter action")

	return out
}

// dispatchTyped handles confirmation when nothing is selected.
func (d *EnterActionDispatcher) dispatchTyped(
	ctx context.Context,
	query string,
	completions []entity.Completion,
	openInNewTab bool,
) EnterOutput {
	if len(completions) > 0 && completions[0].IsPrimarySearchSuggestion() {
		return EnterOutput{
			Action: entity.Navigate(url.CreateSearchURL(query, completions[0].SearchURL), false),
		}
	}

	if d.classifier.IsURL(ctx, query) {
		return EnterOutput{Action: entity.Navigate(query, openInNewTab)}
	}

	return EnterOutput{Action: entity.RunSearch(query, openInNewTab), AwaitHidden: true}
}
