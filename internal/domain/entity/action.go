package entity

// KeyAction is the semantic action a key event maps to.
type KeyAction string

const (
	KeyActionNone      KeyAction = ""
	KeyActionDismiss   KeyAction = "dismiss"
	KeyActionUp        KeyAction = "up"
	KeyActionDown      KeyAction = "down"
	KeyActionTab       KeyAction = "tab"
	KeyActionEnter     KeyAction = "enter"
	KeyActionCtrlEnter KeyAction = "ctrl-enter"
	KeyActionRemove    KeyAction = "remove"
	KeyActionDelete    KeyAction = "delete"
)

// TerminalActionKind identifies the final action produced on confirmation.
type TerminalActionKind int

const (
	ActionNoop TerminalActionKind = iota
	ActionNavigate
	ActionRunSearch
	ActionSelectTab
)

// String returns a human-readable kind name.
func (k TerminalActionKind) String() string {
	switch k {
	case ActionNoop:
		return "noop"
	case ActionNavigate:
		return "navigate"
	case ActionRunSearch:
		return "run_search"
	case ActionSelectTab:
		return "select_tab"
	default:
		return "unknown"
	}
}

// TerminalAction is what confirming the vomnibar resolves to.
type TerminalAction struct {
	Kind   TerminalActionKind
	URL    string
	Query  string
	TabID  int
	NewTab bool
}

// Navigate builds a navigate action.
func Navigate(url string, newTab bool) TerminalAction {
	return TerminalAction{Kind: ActionNavigate, URL: url, NewTab: newTab}
}

// RunSearch builds a default-search action.
func RunSearch(query string, newTab bool) TerminalAction {
	return TerminalAction{Kind: ActionRunSearch, Query: query, NewTab: newTab}
}

// SelectTab builds a select-tab action.
func SelectTab(tabID int) TerminalAction {
	return TerminalAction{Kind: ActionSelectTab, TabID: tabID}
}

// Noop is the empty action.
func Noop() TerminalAction {
	return TerminalAction{Kind: ActionNoop}
}
