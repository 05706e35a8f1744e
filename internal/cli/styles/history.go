package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

const (
	historyTitleWidth = 40
	historyURLWidth   = 60
)

// HistoryTable renders history entries as a bordered table.
func (t *Theme) HistoryTable(entries []*entity.HistoryEntry, now time.Time) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			truncate(e.Label(), historyTitleWidth),
			truncate(e.URL, historyURLWidth),
			strconv.FormatInt(e.VisitCount, 10),
			RelativeTime(e.LastVisited, now),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers("Title", "URL", "Visits", "Last visit").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.Highlight.Padding(0, 1)
			}
			return t.Normal.Padding(0, 1)
		}).
		String()
}

// RelativeTime formats ts relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(ts, now time.Time) string {
	d := now.Sub(ts)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d/time.Minute)) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d/time.Hour)) + "h ago"
	case d < 30*24*time.Hour:
		return strconv.Itoa(int(d/(24*time.Hour))) + "d ago"
	default:
		return ts.Format("2006-01-02")
	}
}
