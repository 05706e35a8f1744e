package entity

import "time"

// HistoryEntry is one visited URL as ranked by the history completer.
type HistoryEntry struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	VisitCount  int64     `json:"visit_count"`
	LastVisited time.Time `json:"last_visited"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewHistoryEntry returns an entry for a first visit to url.
func NewHistoryEntry(url, title string) *HistoryEntry {
	now := time.Now()
	return &HistoryEntry{URL: url, Title: title, VisitCount: 1, LastVisited: now, CreatedAt: now}
}

// Label is the human-facing name of the entry: its title, or the URL when
// the page had none.
func (h *HistoryEntry) Label() string {
	if h.Title != "" {
		return h.Title
	}
	return h.URL
}
