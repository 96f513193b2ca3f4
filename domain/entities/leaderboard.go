package entities

import (
	"fmt"
	"time"
)

// LeaderboardEntry is one submitted result for one puzzle date. Exactly one
// entry may exist per (player, guild, date); duplicates are rejected, never
// overwritten. Entries are immutable after creation.
type LeaderboardEntry struct {
	ID          int64
	DiscordID   int64
	GuildID     int64
	PuzzleDate  time.Time
	GuessesUsed int
	Won         bool
	SubmittedAt time.Time
	CreatedAt   time.Time
}

// NewLeaderboardEntry creates a new LeaderboardEntry with validation
func NewLeaderboardEntry(discordID, guildID int64, puzzleDate time.Time, guessesUsed int, won bool, submittedAt time.Time) (*LeaderboardEntry, error) {
	if discordID <= 0 {
		return nil, fmt.Errorf("discordID must be greater than 0, got %d", discordID)
	}
	if guildID <= 0 {
		return nil, fmt.Errorf("guildID must be greater than 0, got %d", guildID)
	}
	if puzzleDate.IsZero() {
		return nil, fmt.Errorf("puzzleDate cannot be zero time")
	}
	if guessesUsed < 1 || guessesUsed > MaxGuesses {
		return nil, fmt.Errorf("guessesUsed must be between 1 and %d, got %d", MaxGuesses, guessesUsed)
	}
	if submittedAt.IsZero() {
		return nil, fmt.Errorf("submittedAt cannot be zero time")
	}

	return &LeaderboardEntry{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  puzzleDate.UTC(),
		GuessesUsed: guessesUsed,
		Won:         won,
		SubmittedAt: submittedAt,
	}, nil
}

// LeaderboardAggregate summarizes all of one player's entries across puzzles
type LeaderboardAggregate struct {
	DiscordID      int64
	GamesPlayed    int
	TotalWins      int
	AverageGuesses float64 // among wins only; WorstAverage when there are none
}

// WorstAverage is the sentinel average for players without a single win, so
// they always rank below any winner.
const WorstAverage = float64(MaxGuesses + 1)

// WinPercentage computes the win rate as 0-100
func (a *LeaderboardAggregate) WinPercentage() float64 {
	if a.GamesPlayed == 0 {
		return 0
	}
	return float64(a.TotalWins) / float64(a.GamesPlayed) * 100
}
