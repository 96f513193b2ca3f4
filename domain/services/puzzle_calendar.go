package services

import (
	"time"
)

// DateLayout is the canonical date-string format used for gating play.
// Rollover compares date strings, never elapsed time, so puzzles switch
// atomically at UTC midnight regardless of clock skew.
const DateLayout = "2006-01-02"

// UTCMidnight truncates an instant to the start of its UTC calendar day
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DateKey returns the gating key for an instant's UTC calendar day
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PuzzleIndexForDate returns the number of whole days between the epoch
// (inclusive, index 0) and date, clamped to zero. Both ends are compared at
// UTC midnight so the same calendar day yields the same index in every
// timezone.
func PuzzleIndexForDate(date, epoch time.Time) int {
	days := int(UTCMidnight(date).Sub(UTCMidnight(epoch)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DateForPuzzleIndex is the inverse of PuzzleIndexForDate
func DateForPuzzleIndex(index int, epoch time.Time) time.Time {
	return UTCMidnight(epoch).AddDate(0, 0, index)
}

// TimeUntilNextPuzzle returns the duration until the next UTC midnight.
// Display countdowns only; never used to gate play.
func TimeUntilNextPuzzle(now time.Time) time.Duration {
	next := UTCMidnight(now).AddDate(0, 0, 1)
	return next.Sub(now.UTC())
}
