package services

import (
	"testing"
	"time"

	"stumped/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(discordID int64, guesses int, won bool, submittedAt time.Time) *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		DiscordID:   discordID,
		GuildID:     200,
		PuzzleDate:  date(2026, time.January, 15),
		GuessesUsed: guesses,
		Won:         won,
		SubmittedAt: submittedAt,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.January, 15, hour, minute, 0, 0, time.UTC)
}

func TestRankEntries(t *testing.T) {
	t.Parallel()

	t.Run("fewer guesses rank higher", func(t *testing.T) {
		t.Parallel()
		ranked := RankEntries([]*entities.LeaderboardEntry{
			entry(1, 4, true, at(9, 0)),
			entry(2, 1, true, at(11, 0)),
			entry(3, 3, true, at(10, 0)),
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, int64(2), ranked[0].DiscordID)
		assert.Equal(t, int64(3), ranked[1].DiscordID)
		assert.Equal(t, int64(1), ranked[2].DiscordID)
	})

	t.Run("earlier submission wins the tie", func(t *testing.T) {
		t.Parallel()
		ranked := RankEntries([]*entities.LeaderboardEntry{
			entry(1, 2, true, at(10, 5)),
			entry(2, 2, true, at(10, 0)),
		})

		require.Len(t, ranked, 2)
		assert.Equal(t, int64(2), ranked[0].DiscordID)
		assert.Equal(t, int64(1), ranked[1].DiscordID)
	})

	t.Run("losses never appear ranked", func(t *testing.T) {
		t.Parallel()
		ranked := RankEntries([]*entities.LeaderboardEntry{
			entry(1, 5, false, at(9, 0)),
			entry(2, 3, true, at(10, 0)),
		})

		require.Len(t, ranked, 1)
		assert.Equal(t, int64(2), ranked[0].DiscordID)
	})
}

func TestRankOf(t *testing.T) {
	t.Parallel()

	ranked := RankEntries([]*entities.LeaderboardEntry{
		entry(1, 2, true, at(10, 0)),
		entry(2, 3, true, at(10, 0)),
	})

	rank, ok := RankOf(2, ranked)
	assert.True(t, ok)
	assert.Equal(t, 2, rank)

	_, ok = RankOf(99, ranked)
	assert.False(t, ok)
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	entries := []*entities.LeaderboardEntry{
		entry(1, 1, true, at(9, 0)),
		entry(2, 3, true, at(9, 30)),
		entry(3, 3, true, at(10, 0)),
		entry(4, 5, false, at(10, 30)),
	}

	tests := []struct {
		name    string
		guesses int
		won     bool
		want    int
	}{
		{name: "best result", guesses: 1, won: true, want: 100},
		{name: "equal guesses do not count as better", guesses: 3, won: true, want: 75},
		{name: "worst win still beats the loss", guesses: 5, won: true, want: 25},
		{name: "loss sits below every win", guesses: 5, won: false, want: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Percentile(tt.guesses, tt.won, entries))
		})
	}
}

func TestPercentile_EmptyLeaderboard(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, Percentile(3, true, nil))
}

func TestAggregateEntries(t *testing.T) {
	t.Parallel()

	entries := []*entities.LeaderboardEntry{
		entry(1, 2, true, at(9, 0)),
		entry(1, 4, true, at(9, 0)),
		entry(2, 1, true, at(9, 0)),
		entry(2, 1, true, at(9, 0)),
		entry(2, 5, false, at(9, 0)),
		entry(3, 5, false, at(9, 0)),
	}

	aggregates := AggregateEntries(entries)
	require.Len(t, aggregates, 3)

	// Equal wins: lower average guesses ranks first.
	assert.Equal(t, int64(2), aggregates[0].DiscordID)
	assert.Equal(t, 2, aggregates[0].TotalWins)
	assert.Equal(t, 3, aggregates[0].GamesPlayed)
	assert.InDelta(t, 1.0, aggregates[0].AverageGuesses, 0.001)

	assert.Equal(t, int64(1), aggregates[1].DiscordID)
	assert.InDelta(t, 3.0, aggregates[1].AverageGuesses, 0.001)

	// Zero wins carry the sentinel average and rank last.
	assert.Equal(t, int64(3), aggregates[2].DiscordID)
	assert.Equal(t, 0, aggregates[2].TotalWins)
	assert.Equal(t, entities.WorstAverage, aggregates[2].AverageGuesses)
}
