package entities

import (
	"fmt"
	"strings"
	"time"
)

// SlotKey names a game-state bucket. The daily slot gates statistics and
// streaks; archive slots (one per past puzzle date) never do.
type SlotKey string

const dailySlotKey SlotKey = "daily"

const slotDateLayout = "2006-01-02"

// DailySlot returns the key for today's puzzle slot
func DailySlot() SlotKey {
	return dailySlotKey
}

// ArchiveSlot returns the key for an archived puzzle date
func ArchiveSlot(puzzleDate time.Time) SlotKey {
	return SlotKey("archive:" + puzzleDate.UTC().Format(slotDateLayout))
}

// IsDaily reports whether this is the daily slot
func (s SlotKey) IsDaily() bool {
	return s == dailySlotKey
}

// ArchiveDate returns the puzzle date encoded in an archive slot key
func (s SlotKey) ArchiveDate() (time.Time, error) {
	raw, ok := strings.CutPrefix(string(s), "archive:")
	if !ok {
		return time.Time{}, fmt.Errorf("slot %q is not an archive slot", s)
	}
	date, err := time.ParseInLocation(slotDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid archive slot date %q: %w", raw, err)
	}
	return date, nil
}
