package messaging

import (
	"fmt"
	"strings"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/ui/input"
)

// Bridge frame names in addition to the host messages.
const (
	FrameKey       = "key"
	FrameInput     = "input"
	FrameKeyResult = "keyResult"
	FrameRender    = "render"
	FrameError     = "error"

	FrameOpenURLInNewTab     = "openUrlInNewTab"
	FrameOpenURLInCurrentTab = "openUrlInCurrentTab"
	FrameSelectSpecificTab   = "selectSpecificTab"
	FrameRunSearchQuery      = "runSearchQuery"
)

type keyFrame struct {
	Name  string `json:"name"`
	Key   string `json:"key"`
	Phase string `json:"phase"`
	Shift bool   `json:"shift"`
	Ctrl  bool   `json:"ctrl"`
	Alt   bool   `json:"alt"`
	Meta  bool   `json:"meta"`
}

func (f keyFrame) event() (entity.KeyEvent, error) {
	ev := entity.KeyEvent{
		Key: input.NormalizeKey(f.Key),
		Modifiers: entity.Modifiers{
			Shift: f.Shift,
			Ctrl:  f.Ctrl,
			Alt:   f.Alt,
			Meta:  f.Meta,
		},
	}
	if ev.Key == "" {
		return ev, fmt.Errorf("%w: key frame without key", ErrMalformedMessage)
	}

	switch strings.ToLower(f.Phase) {
	case "", "keydown", "down":
		ev.Phase = entity.PhaseKeyDown
	case "commit", "keypress":
		ev.Phase = entity.PhaseCommit
	default:
		return ev, fmt.Errorf("%w: unknown key phase %q", ErrMalformedMessage, f.Phase)
	}
	return ev, nil
}

type inputFrame struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Cursor *int   `json:"cursor"`
}

type keyResultFrame struct {
	Name     string `json:"name"`
	Consumed bool   `json:"consumed"`
}

type renderFrame struct {
	Name        string              `json:"name"`
	Completions []entity.Completion `json:"completions"`
	Selection   int                 `json:"selection"`
	Value       string              `json:"value"`
	Cursor      int                 `json:"cursor"`
}

type actionFrame struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Query string `json:"query,omitempty"`
	// NewTab is only meaningful for runSearchQuery.
	NewTab bool `json:"newTab,omitempty"`
	TabID  int  `json:"id,omitempty"`
}

type errorFrame struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}
