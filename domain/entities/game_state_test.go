package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	tests := []struct {
		name        string
		discordID   int64
		guildID     int64
		puzzleIndex int
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid daily state",
			discordID:   123,
			guildID:     456,
			puzzleIndex: 0,
		},
		{
			name:        "valid with high index",
			discordID:   123,
			guildID:     456,
			puzzleIndex: 364,
		},
		{
			name:        "invalid discord ID",
			discordID:   0,
			guildID:     456,
			puzzleIndex: 0,
			expectError: true,
			errorMsg:    "discordID must be greater than 0, got 0",
		},
		{
			name:        "invalid guild ID",
			discordID:   123,
			guildID:     -1,
			puzzleIndex: 0,
			expectError: true,
			errorMsg:    "guildID must be greater than 0, got -1",
		},
		{
			name:        "negative puzzle index",
			discordID:   123,
			guildID:     456,
			puzzleIndex: -1,
			expectError: true,
			errorMsg:    "puzzleIndex must not be negative, got -1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := NewGameState(tt.discordID, tt.guildID, DailySlot(), tt.puzzleIndex)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, tt.errorMsg, err.Error())
				assert.Nil(t, state)
			} else {
				require.NoError(t, err)
				assert.Equal(t, GameStatusInProgress, state.Status)
				assert.Empty(t, state.Attempts)
				assert.False(t, state.IsTerminal())
				assert.Equal(t, MaxGuesses, state.GuessesRemaining())
			}
		})
	}
}

func TestGameState_HasGuessed(t *testing.T) {
	state := &GameState{Attempts: []string{"kohli", "starc"}}

	assert.True(t, state.HasGuessed("kohli"))
	assert.True(t, state.HasGuessed("starc"))
	assert.False(t, state.HasGuessed("head"))
	assert.False(t, state.HasGuessed(""))
}

func TestGameState_GuessCounters(t *testing.T) {
	tests := []struct {
		name              string
		attempts          []string
		expectedUsed      int
		expectedRemaining int
	}{
		{name: "fresh state", attempts: nil, expectedUsed: 0, expectedRemaining: 5},
		{name: "mid game", attempts: []string{"a", "b", "c"}, expectedUsed: 3, expectedRemaining: 2},
		{name: "exhausted", attempts: []string{"a", "b", "c", "d", "e"}, expectedUsed: 5, expectedRemaining: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := &GameState{Attempts: tt.attempts}
			assert.Equal(t, tt.expectedUsed, state.GuessesUsed())
			assert.Equal(t, tt.expectedRemaining, state.GuessesRemaining())
		})
	}
}

func TestGameState_Acknowledge(t *testing.T) {
	inProgress := &GameState{Status: GameStatusInProgress}
	err := inProgress.Acknowledge()
	assert.Error(t, err)
	assert.False(t, inProgress.ResultAcknowledged)

	won := &GameState{Status: GameStatusWon}
	require.NoError(t, won.Acknowledge())
	assert.True(t, won.ResultAcknowledged)

	lost := &GameState{Status: GameStatusLost}
	require.NoError(t, lost.Acknowledge())
	assert.True(t, lost.ResultAcknowledged)
}
