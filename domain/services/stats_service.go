package services

import (
	"fmt"
	"time"

	"stumped/domain/entities"
)

// RecordResult folds one terminal daily-slot result into a player's
// aggregate, in place. Called exactly once per terminal transition and only
// for the daily slot; archive completions go through their own table.
//
// Streak rule: a win extends the streak when the previous win was yesterday
// relative to the puzzle's effective date, starts a new streak of 1 after a
// gap, and is idempotent-safe against a same-day replay. A loss resets the
// current streak and touches nothing else.
func RecordResult(stats *entities.PlayerStats, won bool, guessesUsed int, puzzleDate time.Time) error {
	if won && (guessesUsed < 1 || guessesUsed > entities.MaxGuesses) {
		return fmt.Errorf("guessesUsed must be between 1 and %d, got %d", entities.MaxGuesses, guessesUsed)
	}

	stats.GamesPlayed++

	if !won {
		stats.CurrentStreak = 0
		return nil
	}

	stats.GamesWon++
	stats.GuessDistribution[guessesUsed-1]++

	today := UTCMidnight(puzzleDate)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case stats.LastWinDate != nil && UTCMidnight(*stats.LastWinDate).Equal(yesterday):
		stats.CurrentStreak++
	case stats.LastWinDate != nil && UTCMidnight(*stats.LastWinDate).Equal(today):
		// already counted for this date, leave the streak alone
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.MaxStreak {
		stats.MaxStreak = stats.CurrentStreak
	}
	stats.LastWinDate = &today

	return nil
}
