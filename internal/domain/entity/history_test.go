package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHistoryEntry_IsFirstVisit(t *testing.T) {
	e := NewHistoryEntry("https://go.dev", "Go")

	assert.Equal(t, int64(1), e.VisitCount)
	assert.Equal(t, e.CreatedAt, e.LastVisited)
	assert.False(t, e.LastVisited.IsZero())
}

func TestHistoryEntry_LabelFallsBackToURL(t *testing.T) {
	assert.Equal(t, "Go", NewHistoryEntry("https://go.dev", "Go").Label())
	assert.Equal(t, "https://go.dev", NewHistoryEntry("https://go.dev", "").Label())
}
