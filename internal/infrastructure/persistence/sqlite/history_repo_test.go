package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
	"github.com/bnema/vomnibar/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/vomnibar/internal/logging"
)

func historyTestCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) (context.Context, repository.HistoryRepository) {
	t.Helper()
	ctx := historyTestCtx()

	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "nested", "vomnibar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return ctx, sqlite.NewHistoryRepository(db)
}

func TestHistoryRepository_SaveAndFind(t *testing.T) {
	ctx, repo := newTestRepo(t)

	entry := entity.NewHistoryEntry("https://example.com", "Example")
	require.NoError(t, repo.Save(ctx, entry))
	assert.NotZero(t, entry.ID)

	found, err := repo.FindByURL(ctx, "https://example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, "Example", found.Title)
	assert.Equal(t, int64(1), found.VisitCount)
	assert.WithinDuration(t, entry.LastVisited, found.LastVisited, time.Millisecond)

	missing, err := repo.FindByURL(ctx, "https://missing.example")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHistoryRepository_SaveExistingURLCountsVisit(t *testing.T) {
	ctx, repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://go.dev", "Go")))
	require.NoError(t, repo.Save(ctx, entity.NewHistoryEntry("https://go.dev", "")))

	found, err := repo.FindByURL(ctx, "https://go.dev")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(2), found.VisitCount)
	assert.Equal(t, "Go", found.Title, "an empty title must not overwrite a known one")
}

func TestHistoryRepository_GetRecentOrdersByLastVisit(t *testing.T) {
	ctx, repo := newTestRepo(t)

	base := time.Now().Add(-time.Hour)
	for i, u := range []string{"https://a.example", "https://b.example", "https://c.example"} {
		e := entity.NewHistoryEntry(u, "")
		e.LastVisited = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.Save(ctx, e))
	}

	recent, err := repo.GetRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://c.example", recent[0].URL)
	assert.Equal(t, "https://b.example", recent[1].URL)

	rest, err := repo.GetRecent(ctx, 10, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "https://a.example", rest[0].URL)
}

func TestHistoryRepository_IncrementAndDelete(t *testing.T) {
	ctx, repo := newTestRepo(t)

	entry := entity.NewHistoryEntry("https://pkg.go.dev", "")
	entry.LastVisited = time.Now().Add(-24 * time.Hour)
	require.NoError(t, repo.Save(ctx, entry))

	require.NoError(t, repo.IncrementVisitCount(ctx, "https://pkg.go.dev"))

	found, err := repo.FindByURL(ctx, "https://pkg.go.dev")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(2), found.VisitCount)
	assert.True(t, found.LastVisited.After(entry.LastVisited))

	require.NoError(t, repo.Delete(ctx, found.ID))
	found, err = repo.FindByURL(ctx, "https://pkg.go.dev")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNewConnection_RejectsEmptyPath(t *testing.T) {
	_, err := sqlite.NewConnection(historyTestCtx(), "")
	assert.Error(t, err)
}

func TestGetMigrationStatus(t *testing.T) {
	ctx := historyTestCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "v.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.GetMigrationStatus(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
