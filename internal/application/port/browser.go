package port

import "context"

// Browser receives the terminal actions produced when the vomnibar is
// confirmed.
type Browser interface {
	OpenURLInNewTab(ctx context.Context, url string) error
	OpenURLInCurrentTab(ctx context.Context, url string) error
	SelectSpecificTab(ctx context.Context, tabID int) error
	RunSearchQuery(ctx context.Context, query string, newTab bool) error
}
