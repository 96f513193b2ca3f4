package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLeaderboardEntry(t *testing.T) {
	puzzleDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	submittedAt := time.Date(2026, 2, 1, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name        string
		discordID   int64
		guildID     int64
		puzzleDate  time.Time
		guessesUsed int
		won         bool
		submittedAt time.Time
		expectError bool
	}{
		{
			name:        "valid win",
			discordID:   123,
			guildID:     456,
			puzzleDate:  puzzleDate,
			guessesUsed: 3,
			won:         true,
			submittedAt: submittedAt,
		},
		{
			name:        "valid loss with all guesses used",
			discordID:   123,
			guildID:     456,
			puzzleDate:  puzzleDate,
			guessesUsed: MaxGuesses,
			won:         false,
			submittedAt: submittedAt,
		},
		{
			name:        "invalid discord ID",
			discordID:   0,
			guildID:     456,
			puzzleDate:  puzzleDate,
			guessesUsed: 3,
			submittedAt: submittedAt,
			expectError: true,
		},
		{
			name:        "zero puzzle date",
			discordID:   123,
			guildID:     456,
			guessesUsed: 3,
			submittedAt: submittedAt,
			expectError: true,
		},
		{
			name:        "guesses out of range",
			discordID:   123,
			guildID:     456,
			puzzleDate:  puzzleDate,
			guessesUsed: MaxGuesses + 1,
			submittedAt: submittedAt,
			expectError: true,
		},
		{
			name:        "zero submission time",
			discordID:   123,
			guildID:     456,
			puzzleDate:  puzzleDate,
			guessesUsed: 3,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := NewLeaderboardEntry(tt.discordID, tt.guildID, tt.puzzleDate, tt.guessesUsed, tt.won, tt.submittedAt)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, entry)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.won, entry.Won)
				assert.Equal(t, tt.guessesUsed, entry.GuessesUsed)
				assert.True(t, entry.PuzzleDate.Equal(tt.puzzleDate))
			}
		})
	}
}

func TestLeaderboardAggregate_WinPercentage(t *testing.T) {
	tests := []struct {
		name     string
		played   int
		wins     int
		expected float64
	}{
		{name: "no games", played: 0, wins: 0, expected: 0},
		{name: "all wins", played: 4, wins: 4, expected: 100},
		{name: "half wins", played: 10, wins: 5, expected: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &LeaderboardAggregate{GamesPlayed: tt.played, TotalWins: tt.wins}
			assert.InDelta(t, tt.expected, agg.WinPercentage(), 0.001)
		})
	}
}
