package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close(), "closing an unopened database is a no-op")
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := historyTestCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	handles := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handles[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, handles[0], handles[i])
	}
	assert.True(t, lazy.IsInitialized())

	var one int
	require.NoError(t, handles[0].QueryRowContext(ctx, "SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestLazyDB_ReportsOpenFailure(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(historyTestCtx())
	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyHistoryRepository_OpensOnFirstUse(t *testing.T) {
	ctx := historyTestCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyHistoryRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://example.org", "Example")))
	assert.True(t, lazy.IsInitialized())

	recent, err := repo.GetRecent(ctx, 5, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "https://example.org", recent[0].URL)
}
