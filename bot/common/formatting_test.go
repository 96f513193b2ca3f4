package common

import (
	"testing"
	"time"

	"stumped/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestFormatFeedbackSquares(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		feedback entities.GuessFeedback
		expected string
	}{
		{
			name:     "complete miss",
			feedback: entities.GuessFeedback{},
			expected: "⬛⬛⬛",
		},
		{
			name:     "played in match only",
			feedback: entities.GuessFeedback{PlayedInMatch: true},
			expected: "🟩⬛⬛",
		},
		{
			name:     "team and role but different match",
			feedback: entities.GuessFeedback{SameTeam: true, SameRole: true},
			expected: "⬛🟩🟩",
		},
		{
			name: "target",
			feedback: entities.GuessFeedback{
				PlayedInMatch: true,
				SameTeam:      true,
				SameRole:      true,
				IsTarget:      true,
			},
			expected: "🏆🏆🏆",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatFeedbackSquares(tt.feedback))
		})
	}
}

func TestFormatResultGrid(t *testing.T) {
	t.Parallel()

	feedbacks := []entities.GuessFeedback{
		{PlayedInMatch: true},
		{PlayedInMatch: true, SameTeam: true, SameRole: true, IsTarget: true},
	}

	grid := FormatResultGrid(7, feedbacks, true)
	assert.Equal(t, "Stumped #7 2/5\n🟩⬛⬛\n🏆🏆🏆", grid)
}

func TestFormatResultGrid_Loss(t *testing.T) {
	t.Parallel()

	feedbacks := make([]entities.GuessFeedback, entities.MaxGuesses)
	grid := FormatResultGrid(3, feedbacks, false)
	assert.Contains(t, grid, "Stumped #3 X/5")
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"under a minute", 30 * time.Second, "< 1m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"hours and minutes", 14*time.Hour + 30*time.Minute, "14h 30m"},
		{"whole hours", 3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
