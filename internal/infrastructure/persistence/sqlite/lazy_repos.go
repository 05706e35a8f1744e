package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
)

// LazyHistoryRepository defers opening the database to the first call, so
// commands and keystrokes that never touch history never pay for it.
type LazyHistoryRepository struct {
	provider port.DatabaseProvider

	once sync.Once
	repo repository.HistoryRepository
	err  error
}

var _ repository.HistoryRepository = (*LazyHistoryRepository)(nil)

// NewLazyHistoryRepository creates a history repository over provider.
func NewLazyHistoryRepository(provider port.DatabaseProvider) *LazyHistoryRepository {
	return &LazyHistoryRepository{provider: provider}
}

func (r *LazyHistoryRepository) get(ctx context.Context) (repository.HistoryRepository, error) {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.err = err
			return
		}
		r.repo = NewHistoryRepository(db)
	})
	return r.repo, r.err
}

// call runs fn against the real repository once it is available.
func call[T any](ctx context.Context, r *LazyHistoryRepository, fn func(repository.HistoryRepository) (T, error)) (T, error) {
	repo, err := r.get(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(repo)
}

func (r *LazyHistoryRepository) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	_, err := call(ctx, r, func(repo repository.HistoryRepository) (struct{}, error) {
		return struct{}{}, repo.Save(ctx, entry)
	})
	return err
}

func (r *LazyHistoryRepository) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	return call(ctx, r, func(repo repository.HistoryRepository) (*entity.HistoryEntry, error) {
		return repo.FindByURL(ctx, url)
	})
}

func (r *LazyHistoryRepository) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	return call(ctx, r, func(repo repository.HistoryRepository) ([]*entity.HistoryEntry, error) {
		return repo.GetRecent(ctx, limit, offset)
	})
}

func (r *LazyHistoryRepository) IncrementVisitCount(ctx context.Context, url string) error {
	_, err := call(ctx, r, func(repo repository.HistoryRepository) (struct{}, error) {
		return struct{}{}, repo.IncrementVisitCount(ctx, url)
	})
	return err
}

func (r *LazyHistoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := call(ctx, r, func(repo repository.HistoryRepository) (struct{}, error) {
		return struct{}{}, repo.Delete(ctx, id)
	})
	return err
}
