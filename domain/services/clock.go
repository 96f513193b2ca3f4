package services

import (
	"time"

	"stumped/domain/interfaces"
)

// UTCClock reads real time in UTC
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}

// OffsetClock shifts a base clock by a whole number of days. The offset is
// the persisted debug setting and the only sanctioned way to preview past or
// future puzzles: two reads at the same logical date still yield the same
// puzzle index.
type OffsetClock struct {
	Base interfaces.Clock
	Days int
}

func (c OffsetClock) Now() time.Time {
	return c.Base.Now().AddDate(0, 0, c.Days)
}

// NewOffsetClock wraps base with a day offset, passing through when zero
func NewOffsetClock(base interfaces.Clock, days int) interfaces.Clock {
	if days == 0 {
		return base
	}
	return OffsetClock{Base: base, Days: days}
}

// FixedClock always reads the same instant. Test use only.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
