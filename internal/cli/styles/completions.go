package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vomnibar/internal/domain/entity"
)

// CompletionList renders completions with the selected row highlighted.
// width bounds each row; rows are truncated, never wrapped.
func (t *Theme) CompletionList(completions []entity.Completion, selection, width int) string {
	if len(completions) == 0 {
		return ""
	}

	rows := make([]string, 0, len(completions))
	for i, c := range completions {
		style := t.Row
		if i == selection {
			style = t.RowSelected
		}
		rows = append(rows, style.Render(truncate(t.completionLabel(c), width-4)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (t *Theme) completionLabel(c entity.Completion) string {
	label := c.DisplayMarkup
	if label == "" {
		label = c.URL
	}

	switch {
	case c.IsPrimarySearchSuggestion():
		return t.SearchTag.Render("search") + " " + label
	case c.IsTab():
		return t.TabTag.Render("tab") + " " + label
	case c.Description != "":
		return t.Tag.Render(c.Description) + " " + label
	}
	return label
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
