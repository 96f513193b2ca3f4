package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPuzzleIndexForDate(t *testing.T) {
	t.Parallel()

	epoch := date(2026, time.January, 15)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{name: "epoch day is index zero", date: epoch, want: 0},
		{name: "next day", date: date(2026, time.January, 16), want: 1},
		{name: "ten days in", date: date(2026, time.January, 25), want: 10},
		{name: "month boundary", date: date(2026, time.February, 1), want: 17},
		{name: "before epoch clamps to zero", date: date(2026, time.January, 1), want: 0},
		{name: "late in the day still same index", date: time.Date(2026, time.January, 16, 23, 59, 59, 0, time.UTC), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, PuzzleIndexForDate(tt.date, epoch))
		})
	}
}

func TestPuzzleIndexForDate_TimezoneIndependence(t *testing.T) {
	t.Parallel()

	epoch := date(2026, time.January, 15)

	// The same UTC instant expressed in a non-UTC zone must yield the same
	// index.
	kolkata := time.FixedZone("IST", 5*3600+1800)
	utcInstant := time.Date(2026, time.January, 20, 10, 0, 0, 0, time.UTC)
	localInstant := utcInstant.In(kolkata)

	assert.Equal(t, PuzzleIndexForDate(utcInstant, epoch), PuzzleIndexForDate(localInstant, epoch))
}

func TestPuzzleIndexForDate_WholeDaysProperty(t *testing.T) {
	t.Parallel()

	epoch := date(2026, time.January, 15)

	// For any pair of dates after the epoch, index difference equals whole
	// days between them.
	for d1 := 0; d1 < 30; d1++ {
		for d2 := d1; d2 < 30; d2++ {
			t1 := epoch.AddDate(0, 0, d1)
			t2 := epoch.AddDate(0, 0, d2)
			got := PuzzleIndexForDate(t2, epoch) - PuzzleIndexForDate(t1, epoch)
			assert.Equal(t, d2-d1, got, "days between %v and %v", t1, t2)
		}
	}
}

func TestDateForPuzzleIndex_RoundTrip(t *testing.T) {
	t.Parallel()

	epoch := date(2026, time.January, 15)
	for i := 0; i < 100; i++ {
		d := DateForPuzzleIndex(i, epoch)
		assert.Equal(t, i, PuzzleIndexForDate(d, epoch))
	}
}

func TestTimeUntilNextPuzzle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "midday",
			now:  time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC),
			want: 12 * time.Hour,
		},
		{
			name: "one second before midnight",
			now:  time.Date(2026, time.January, 15, 23, 59, 59, 0, time.UTC),
			want: time.Second,
		},
		{
			name: "exactly midnight rolls to the next day",
			now:  time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TimeUntilNextPuzzle(tt.now))
		})
	}
}

func TestOffsetClock_Determinism(t *testing.T) {
	t.Parallel()

	base := FixedClock{Instant: time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)}
	epoch := date(2026, time.January, 15)

	// The offset shifts the puzzle index by exactly its day count, and two
	// reads at the same logical date agree.
	shifted := NewOffsetClock(base, 3)
	first := PuzzleIndexForDate(shifted.Now(), epoch)
	second := PuzzleIndexForDate(shifted.Now(), epoch)

	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)

	// Zero offset passes the base clock through untouched.
	assert.Equal(t, base.Now(), NewOffsetClock(base, 0).Now())
}
