package port

import "context"

// URLClassifier decides whether typed text should be opened as a URL or
// handed to the default search engine.
type URLClassifier interface {
	IsURL(ctx context.Context, query string) bool
}
