package component

// VisibilityState is where the vomnibar is in its show/hide handshake.
type VisibilityState int

const (
	// Hidden means the host confirmed the popup is gone.
	Hidden VisibilityState = iota
	// Showing means the popup is active.
	Showing
	// Hiding means a hide was requested and the host has not acknowledged it.
	Hiding
)

// String returns a human-readable state name.
func (s VisibilityState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Showing:
		return "showing"
	case Hiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// Visibility is the Hidden -> Showing -> Hiding -> Hidden state machine. A
// callback registered with BeginHide is only released by Acknowledge.
type Visibility struct {
	state    VisibilityState
	onHidden func()
}

// State returns the current state.
func (v *Visibility) State() VisibilityState {
	return v.state
}

// Show marks the popup active. A callback left over from an interrupted
// hide is discarded.
func (v *Visibility) Show() {
	v.state = Showing
	v.onHidden = nil
}

// BeginHide enters Hiding and holds onHidden until Acknowledge. A second
// hide before the acknowledgment replaces the held callback.
func (v *Visibility) BeginHide(onHidden func()) {
	v.state = Hiding
	v.onHidden = onHidden
}

// Acknowledge records the host's confirmation and returns the held
// callback, if any. The callback is released at most once.
func (v *Visibility) Acknowledge() func() {
	fn := v.onHidden
	v.onHidden = nil
	v.state = Hidden
	return fn
}
