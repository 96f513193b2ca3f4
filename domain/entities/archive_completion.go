package entities

import (
	"fmt"
	"time"
)

// ArchiveCompletion records a finished archive-slot game, keyed by puzzle
// date. It lives apart from the daily game state and the stats aggregate so
// that replaying old puzzles can never perturb streaks or the guess
// distribution.
type ArchiveCompletion struct {
	DiscordID   int64
	GuildID     int64
	PuzzleDate  time.Time
	Score       GuessScore
	Won         bool
	CompletedAt time.Time
}

// NewArchiveCompletion creates a new ArchiveCompletion with validation
func NewArchiveCompletion(discordID, guildID int64, puzzleDate time.Time, score GuessScore, won bool, completedAt time.Time) (*ArchiveCompletion, error) {
	if discordID <= 0 {
		return nil, fmt.Errorf("discordID must be greater than 0, got %d", discordID)
	}
	if guildID <= 0 {
		return nil, fmt.Errorf("guildID must be greater than 0, got %d", guildID)
	}
	if puzzleDate.IsZero() {
		return nil, fmt.Errorf("puzzleDate cannot be zero time")
	}
	if completedAt.IsZero() {
		return nil, fmt.Errorf("completedAt cannot be zero time")
	}

	return &ArchiveCompletion{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  puzzleDate.UTC(),
		Score:       score,
		Won:         won,
		CompletedAt: completedAt,
	}, nil
}
