package port

import "context"

// HostMessenger sends messages to the page hosting the vomnibar.
type HostMessenger interface {
	// PostHide asks the host to hide the vomnibar. The host answers later
	// with a "hidden" acknowledgment once the popup is actually gone.
	PostHide(ctx context.Context) error
}
