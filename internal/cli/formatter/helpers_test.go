package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/wayfarer/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"today", now, "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "Tomorrow"},
		{"yesterday", now.AddDate(0, 0, -1), "Yesterday"},
		{"in five days", now.AddDate(0, 0, 5), "In 5d"},
		{"in three weeks", now.AddDate(0, 0, 21), "In 3w"},
		{"in three months", now.AddDate(0, 0, 90), "In 3mo"},
		{"five days ago", now.AddDate(0, 0, -5), "5d ago"},
		{"three weeks ago", now.AddDate(0, 0, -21), "3w ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDateFrom(tt.t, now))
		})
	}
}

func TestStatusPill(t *testing.T) {
	assert.Contains(t, StatusPill(domain.StatusNotStarted), "Not Started")
	assert.Contains(t, StatusPill(domain.StatusInProgress), "In Progress")
	assert.Contains(t, StatusPill(domain.StatusCompleted), "Completed")
}

func TestStatusIcon(t *testing.T) {
	assert.Contains(t, StatusIcon(domain.StatusCompleted), "✓")
	assert.Contains(t, StatusIcon(domain.StatusInProgress), "▶")
	assert.Contains(t, StatusIcon(domain.StatusNotStarted), "○")
}
