package repository

import (
	"context"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

// HistoryRepository persists the visits that feed history completions.
type HistoryRepository interface {
	// Save inserts entry, or counts one more visit when its URL is known.
	// A known title is kept when entry.Title is empty.
	Save(ctx context.Context, entry *entity.HistoryEntry) error

	// FindByURL returns nil and no error when url was never visited.
	FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error)

	// GetRecent pages through entries, most recently visited first.
	GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error)

	IncrementVisitCount(ctx context.Context, url string) error
	Delete(ctx context.Context, id int64) error
}
