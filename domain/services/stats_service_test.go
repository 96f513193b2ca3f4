package services

import (
	"testing"
	"time"

	"stumped/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordResult_FirstWin(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)
	day := date(2026, time.January, 15)

	require.NoError(t, RecordResult(stats, true, 1, day))

	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.GamesWon)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 1, stats.MaxStreak)
	assert.Equal(t, 1, stats.GuessDistribution[0])
	require.NotNil(t, stats.LastWinDate)
	assert.Equal(t, day, *stats.LastWinDate)
}

func TestRecordResult_StreakContinuity(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)

	// Win on the 15th, again on the 16th: streak grows.
	require.NoError(t, RecordResult(stats, true, 3, date(2026, time.January, 15)))
	require.NoError(t, RecordResult(stats, true, 2, date(2026, time.January, 16)))
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak)

	// Win after a gap: streak restarts at 1, max survives.
	require.NoError(t, RecordResult(stats, true, 4, date(2026, time.January, 20)))
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak)
}

func TestRecordResult_LossBreaksStreak(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)
	require.NoError(t, RecordResult(stats, true, 2, date(2026, time.January, 15)))
	require.NoError(t, RecordResult(stats, true, 2, date(2026, time.January, 16)))

	distBefore := stats.GuessDistribution
	lastWinBefore := *stats.LastWinDate

	require.NoError(t, RecordResult(stats, false, 0, date(2026, time.January, 17)))

	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxStreak, "maxStreak untouched by a loss")
	assert.Equal(t, 3, stats.GamesPlayed)
	assert.Equal(t, 2, stats.GamesWon)
	assert.Equal(t, distBefore, stats.GuessDistribution, "distribution unchanged on loss")
	assert.Equal(t, lastWinBefore, *stats.LastWinDate, "lastWinDate untouched by a loss")
}

func TestRecordResult_ExhaustionScenario(t *testing.T) {
	t.Parallel()

	// Five misses: a loss, streak reset, distribution untouched.
	stats := entities.NewPlayerStats(100, 200)
	stats.CurrentStreak = 4
	stats.MaxStreak = 4

	require.NoError(t, RecordResult(stats, false, entities.MaxGuesses, date(2026, time.February, 1)))

	assert.Equal(t, 0, stats.CurrentStreak)
	assert.Equal(t, [entities.MaxGuesses]int{}, stats.GuessDistribution)
}

func TestRecordResult_SameDayReplayKeepsStreak(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)
	require.NoError(t, RecordResult(stats, true, 2, date(2026, time.January, 15)))
	require.NoError(t, RecordResult(stats, true, 2, date(2026, time.January, 16)))

	// Recovery re-derivation for the same date must not restart the streak.
	require.NoError(t, RecordResult(stats, true, 3, date(2026, time.January, 16)))
	assert.Equal(t, 2, stats.CurrentStreak)
}

func TestRecordResult_GuessDistributionIndexing(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)
	for guesses := 1; guesses <= entities.MaxGuesses; guesses++ {
		require.NoError(t, RecordResult(stats, true, guesses, date(2026, time.March, guesses)))
	}

	for i := 0; i < entities.MaxGuesses; i++ {
		assert.Equal(t, 1, stats.GuessDistribution[i], "bucket %d", i)
	}
}

func TestRecordResult_InvalidGuessCount(t *testing.T) {
	t.Parallel()

	stats := entities.NewPlayerStats(100, 200)
	assert.Error(t, RecordResult(stats, true, 0, date(2026, time.January, 15)))
	assert.Error(t, RecordResult(stats, true, entities.MaxGuesses+1, date(2026, time.January, 15)))
}
