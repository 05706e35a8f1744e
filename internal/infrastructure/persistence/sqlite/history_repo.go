package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/domain/repository"
	"github.com/bnema/vomnibar/internal/logging"
)

const logURLMaxLen = 60

const (
	upsertHistorySQL = `
INSERT INTO history (url, title, visit_count, last_visited, created_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (url) DO UPDATE SET
    title        = CASE WHEN excluded.title <> '' THEN excluded.title ELSE history.title END,
    visit_count  = history.visit_count + 1,
    last_visited = excluded.last_visited
RETURNING id`

	selectHistoryColumns = `SELECT id, url, title, visit_count, last_visited, created_at FROM history`

	getHistoryByURLSQL = selectHistoryColumns + ` WHERE url = ?`

	getRecentHistorySQL = selectHistoryColumns + ` ORDER BY last_visited DESC, id DESC LIMIT ? OFFSET ?`

	incrementVisitCountSQL = `UPDATE history SET visit_count = visit_count + 1, last_visited = ? WHERE url = ?`

	deleteHistoryByIDSQL = `DELETE FROM history WHERE id = ?`
)

type historyRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewHistoryRepository creates a new SQLite-backed history repository.
func NewHistoryRepository(db *sql.DB) repository.HistoryRepository {
	return &historyRepo{db: db, now: time.Now}
}

func (r *historyRepo) Save(ctx context.Context, entry *entity.HistoryEntry) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("url", logging.TruncateURL(entry.URL, logURLMaxLen)).Msg("saving history entry")

	now := r.now()
	lastVisited := entry.LastVisited
	if lastVisited.IsZero() {
		lastVisited = now
	}
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}
	visits := entry.VisitCount
	if visits <= 0 {
		visits = 1
	}

	var id int64
	err := r.db.QueryRowContext(ctx, upsertHistorySQL,
		entry.URL, entry.Title, visits, lastVisited.UnixMilli(), createdAt.UnixMilli(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("upsert history: %w", err)
	}

	entry.ID = id
	return nil
}

func (r *historyRepo) FindByURL(ctx context.Context, url string) (*entity.HistoryEntry, error) {
	entry, err := scanHistory(r.db.QueryRowContext(ctx, getHistoryByURLSQL, url))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}

func (r *historyRepo) GetRecent(ctx context.Context, limit, offset int) ([]*entity.HistoryEntry, error) {
	rows, err := r.db.QueryContext(ctx, getRecentHistorySQL, limit, offset)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*entity.HistoryEntry, 0, limit)
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *historyRepo) IncrementVisitCount(ctx context.Context, url string) error {
	_, err := r.db.ExecContext(ctx, incrementVisitCountSQL, r.now().UnixMilli(), url)
	return err
}

func (r *historyRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, deleteHistoryByIDSQL, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHistory(row rowScanner) (*entity.HistoryEntry, error) {
	var (
		entry       entity.HistoryEntry
		lastVisited int64
		createdAt   int64
	)
	if err := row.Scan(&entry.ID, &entry.URL, &entry.Title, &entry.VisitCount, &lastVisited, &createdAt); err != nil {
		return nil, err
	}
	entry.LastVisited = time.UnixMilli(lastVisited)
	entry.CreatedAt = time.UnixMilli(createdAt)
	return &entry, nil
}
