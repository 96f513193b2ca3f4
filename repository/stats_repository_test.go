package repository

import (
	"context"
	"testing"
	"time"

	"stumped/domain/entities"
	"stumped/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetAndSave(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepositoryScoped(testDB.DB.Pool, 123456789)
	ctx := context.Background()

	t.Run("unknown player returns nil", func(t *testing.T) {
		stats, err := repo.Get(ctx, 999999999)
		require.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("round trip preserves distribution and last win date", func(t *testing.T) {
		winDate := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
		stats := testutil.CreateTestStats(111111111, 123456789, winDate)
		stats.GuessDistribution = [entities.MaxGuesses]int{2, 0, 1, 0, 3}
		stats.GamesPlayed = 7
		stats.GamesWon = 6
		stats.CurrentStreak = 4
		stats.MaxStreak = 5

		require.NoError(t, repo.Save(ctx, stats))

		loaded, err := repo.Get(ctx, 111111111)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 7, loaded.GamesPlayed)
		assert.Equal(t, 6, loaded.GamesWon)
		assert.Equal(t, 4, loaded.CurrentStreak)
		assert.Equal(t, 5, loaded.MaxStreak)
		assert.Equal(t, [entities.MaxGuesses]int{2, 0, 1, 0, 3}, loaded.GuessDistribution)
		require.NotNil(t, loaded.LastWinDate)
		assert.Equal(t, winDate, *loaded.LastWinDate)
	})

	t.Run("save is an upsert", func(t *testing.T) {
		winDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		stats := testutil.CreateTestStats(222222222, 123456789, winDate)
		require.NoError(t, repo.Save(ctx, stats))

		stats.GamesPlayed = 2
		stats.CurrentStreak = 0
		require.NoError(t, repo.Save(ctx, stats))

		loaded, err := repo.Get(ctx, 222222222)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, 2, loaded.GamesPlayed)
		assert.Equal(t, 0, loaded.CurrentStreak)
	})

	t.Run("nil last win date survives the round trip", func(t *testing.T) {
		stats := &entities.PlayerStats{
			DiscordID:   333333333,
			GuildID:     123456789,
			GamesPlayed: 1,
		}
		require.NoError(t, repo.Save(ctx, stats))

		loaded, err := repo.Get(ctx, 333333333)
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Nil(t, loaded.LastWinDate)
		assert.Zero(t, loaded.GamesWon)
	})

	t.Run("guild isolation", func(t *testing.T) {
		winDate := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		stats := testutil.CreateTestStats(444444444, 123456789, winDate)
		require.NoError(t, repo.Save(ctx, stats))

		otherGuild := NewStatsRepositoryScoped(testDB.DB.Pool, 987654321)
		loaded, err := otherGuild.Get(ctx, 444444444)
		require.NoError(t, err)
		assert.Nil(t, loaded)
	})
}

func TestStatsRepository_CorruptDistribution(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewStatsRepositoryScoped(testDB.DB.Pool, 123456789)
	ctx := context.Background()

	winDate := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	stats := testutil.CreateTestStats(555555555, 123456789, winDate)
	require.NoError(t, repo.Save(ctx, stats))

	// Shrink the distribution array behind the repository's back
	_, err := testDB.DB.Pool.Exec(ctx,
		`UPDATE player_stats SET guess_distribution = '{1,2}' WHERE discord_id = $1`, int64(555555555))
	require.NoError(t, err)

	// A distribution with the wrong bucket count reads back as fresh stats
	loaded, err := repo.Get(ctx, 555555555)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
