package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
	"github.com/bnema/vomnibar/internal/logging"
)

const defaultRecentLimit = 50

// SearchHistoryUseCase records and retrieves visited URLs.
type SearchHistoryUseCase struct {
	historyRepo repository.HistoryRepository
}

// NewSearchHistoryUseCase creates a new history use case.
func NewSearchHistoryUseCase(historyRepo repository.HistoryRepository) *SearchHistoryUseCase {
	return &SearchHistoryUseCase{
		historyRepo: historyRepo,
	}
}

// Record stores a visit to url, creating the entry or bumping its visit count.
func (uc *SearchHistoryUseCase) Record(ctx context.Context, url, title string) error {
	log := logging.FromContext(ctx)

	url = strings.TrimSpace(url)
	if url == "" {
		return errors.New("url cannot be empty")
	}

	existing, err := uc.historyRepo.FindByURL(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to look up history entry: %w", err)
	}

	if existing != nil {
		if err := uc.historyRepo.IncrementVisitCount(ctx, url); err != nil {
			return fmt.Errorf("failed to increment visit count: %w", err)
		}
		log.Debug().Str("url", logging.TruncateURL(url, 60)).Msg("history visit incremented")
		return nil
	}

	if err := uc.historyRepo.Save(ctx, entity.NewHistoryEntry(url, title)); err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	log.Debug().Str("url", logging.TruncateURL(url, 60)).Msg("history entry created")
	return nil
}

// GetRecent retrieves recent history entries with pagination.
func (uc *SearchHistoryUseCase) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	entries, err := uc.historyRepo.GetRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent history: %w", err)
	}

	return entries, nil
}

// Delete removes a history entry by ID.
func (uc *SearchHistoryUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.historyRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	return nil
}
