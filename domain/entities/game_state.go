package entities

import (
	"fmt"
	"time"
)

// MaxGuesses is the attempt budget for a single puzzle
const MaxGuesses = 5

// GameStatus represents the lifecycle state of a game slot
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusLost       GameStatus = "lost"
)

// GameState tracks one player's progress on one slot. It is created on the
// first interaction with a slot and, once terminal, only the acknowledgment
// flag may change.
type GameState struct {
	DiscordID          int64
	GuildID            int64
	Slot               SlotKey
	PuzzleIndex        int      // day index from the epoch, not the wrapped catalog position
	Attempts           []string // guessed player IDs, in submission order
	Status             GameStatus
	ResultAcknowledged bool
	UpdatedAt          time.Time
}

// NewGameState creates a fresh in-progress state for a slot
func NewGameState(discordID, guildID int64, slot SlotKey, puzzleIndex int) (*GameState, error) {
	if discordID <= 0 {
		return nil, fmt.Errorf("discordID must be greater than 0, got %d", discordID)
	}
	if guildID <= 0 {
		return nil, fmt.Errorf("guildID must be greater than 0, got %d", guildID)
	}
	if puzzleIndex < 0 {
		return nil, fmt.Errorf("puzzleIndex must not be negative, got %d", puzzleIndex)
	}
	return &GameState{
		DiscordID:   discordID,
		GuildID:     guildID,
		Slot:        slot,
		PuzzleIndex: puzzleIndex,
		Status:      GameStatusInProgress,
	}, nil
}

// IsTerminal reports whether the slot accepts further guesses
func (g *GameState) IsTerminal() bool {
	return g.Status == GameStatusWon || g.Status == GameStatusLost
}

// HasGuessed reports whether the player already attempted this candidate
func (g *GameState) HasGuessed(playerID string) bool {
	for _, id := range g.Attempts {
		if id == playerID {
			return true
		}
	}
	return false
}

// GuessesUsed returns the number of attempts consumed so far
func (g *GameState) GuessesUsed() int {
	return len(g.Attempts)
}

// GuessesRemaining returns the number of attempts left
func (g *GameState) GuessesRemaining() int {
	remaining := MaxGuesses - len(g.Attempts)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Acknowledge marks a terminal result as seen by the player
func (g *GameState) Acknowledge() error {
	if !g.IsTerminal() {
		return fmt.Errorf("cannot acknowledge a game that is still %s", g.Status)
	}
	g.ResultAcknowledged = true
	return nil
}
