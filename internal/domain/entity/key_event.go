package entity

// KeyPhase is the phase of a key event.
type KeyPhase int

const (
	// PhaseKeyDown is the physical key-down phase.
	PhaseKeyDown KeyPhase = iota
	// PhaseCommit is the character-input commit phase. Enter is only ever
	// evaluated here so composed input (IME) commits are not mistaken for
	// confirmation.
	PhaseCommit
)

// String returns a human-readable phase name.
func (p KeyPhase) String() string {
	switch p {
	case PhaseKeyDown:
		return "keydown"
	case PhaseCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// Logical key names used by KeyEvent.Key. Printable keys use the lowercase
// character itself ("k", "p", ...).
const (
	KeyEscape    = "escape"
	KeyEnter     = "enter"
	KeyTab       = "tab"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyDelete    = "delete"
	KeyBackspace = "backspace"
)

// Modifiers holds the modifier keys held during an event.
type Modifiers struct {
	Shift bool `json:"shift"`
	Ctrl  bool `json:"ctrl"`
	Alt   bool `json:"alt"`
	Meta  bool `json:"meta"`
}

// Any reports whether any modifier is held.
func (m Modifiers) Any() bool {
	return m.Shift || m.Ctrl || m.Alt || m.Meta
}

// KeyEvent is a platform-neutral key event built by an adapter at the UI
// boundary.
type KeyEvent struct {
	Key   string
	Modifiers
	Phase KeyPhase
}
