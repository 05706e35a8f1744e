// Package input maps normalized key events to vomnibar actions.
package input

import (
	"strings"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

var keyAliases = map[string]string{
	"escape":     entity.KeyEscape,
	"esc":        entity.KeyEscape,
	"return":     entity.KeyEnter,
	"enter":      entity.KeyEnter,
	"tab":        entity.KeyTab,
	"up":         entity.KeyUp,
	"arrowup":    entity.KeyUp,
	"down":       entity.KeyDown,
	"arrowdown":  entity.KeyDown,
	"left":       entity.KeyLeft,
	"arrowleft":  entity.KeyLeft,
	"right":      entity.KeyRight,
	"arrowright": entity.KeyRight,
	"delete":     entity.KeyDelete,
	"del":        entity.KeyDelete,
	"backspace":  entity.KeyBackspace,
	"space":      " ",
}

// NormalizeKey maps a key name as reported by a host ("ArrowUp", "Esc",
// "Return", "K") to the logical names used by entity.KeyEvent.
func NormalizeKey(name string) string {
	if name == " " {
		return name
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := keyAliases[lower]; ok {
		return alias
	}
	return lower
}

// Resolve maps ev to the action it triggers. The boolean is false when the
// key has no vomnibar meaning and should fall through to the text input.
//
// Enter is only ever resolved on the commit phase, every other key only on
// the key-down phase.
func Resolve(ev entity.KeyEvent) (entity.KeyAction, bool) {
	isEnter := ev.Key == entity.KeyEnter
	if isEnter != (ev.Phase == entity.PhaseCommit) {
		return entity.KeyActionNone, false
	}

	switch {
	case ev.Key == entity.KeyEscape:
		return entity.KeyActionDismiss, true

	case ev.Key == entity.KeyUp,
		ev.Key == entity.KeyTab && ev.Shift,
		ev.Ctrl && (ev.Key == "k" || ev.Key == "p"):
		return entity.KeyActionUp, true

	case ev.Key == entity.KeyTab:
		return entity.KeyActionTab, true

	case ev.Key == entity.KeyDown,
		ev.Ctrl && (ev.Key == "j" || ev.Key == "n"):
		return entity.KeyActionDown, true

	case isEnter && ev.Ctrl:
		return entity.KeyActionCtrlEnter, true

	case isEnter:
		return entity.KeyActionEnter, true

	case ev.Key == entity.KeyDelete && ev.Shift && !ev.Ctrl && !ev.Alt:
		return entity.KeyActionRemove, true

	case ev.Key == entity.KeyBackspace:
		return entity.KeyActionDelete, true
	}

	return entity.KeyActionNone, false
}
