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

func TestLeaderboardRepository_Create(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewLeaderboardRepositoryScoped(testDB.DB.Pool, 123456789)
	ctx := context.Background()
	puzzleDate := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	t.Run("successful creation assigns id", func(t *testing.T) {
		entry := testutil.CreateTestLeaderboardEntry(111111111, 123456789, puzzleDate, 3)
		err := repo.Create(ctx, entry)
		require.NoError(t, err)
		assert.NotZero(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("second submission for the same day is rejected", func(t *testing.T) {
		first := testutil.CreateTestLeaderboardEntry(222222222, 123456789, puzzleDate, 2)
		require.NoError(t, repo.Create(ctx, first))

		second := testutil.CreateTestLeaderboardEntry(222222222, 123456789, puzzleDate, 5)
		err := repo.Create(ctx, second)
		require.ErrorIs(t, err, entities.ErrDuplicateSubmission)

		// The first result stands
		entries, err := repo.GetByPlayer(ctx, 222222222, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 2, entries[0].GuessesUsed)
	})

	t.Run("same player can submit for a different day", func(t *testing.T) {
		first := testutil.CreateTestLeaderboardEntry(333333333, 123456789, puzzleDate, 4)
		require.NoError(t, repo.Create(ctx, first))

		nextDay := testutil.CreateTestLeaderboardEntry(333333333, 123456789, puzzleDate.AddDate(0, 0, 1), 1)
		require.NoError(t, repo.Create(ctx, nextDay))
	})

	t.Run("losses are recorded too", func(t *testing.T) {
		entry := testutil.CreateTestLeaderboardEntry(444444444, 123456789, puzzleDate, entities.MaxGuesses)
		entry.Won = false
		require.NoError(t, repo.Create(ctx, entry))

		entries, err := repo.GetByPlayer(ctx, 444444444, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Won)
	})
}

func TestLeaderboardRepository_Queries(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewLeaderboardRepositoryScoped(testDB.DB.Pool, 123456789)
	ctx := context.Background()
	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	submittedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	seed := []*entities.LeaderboardEntry{
		{DiscordID: 1001, GuildID: 123456789, PuzzleDate: day1, GuessesUsed: 3, Won: true, SubmittedAt: submittedAt},
		{DiscordID: 1002, GuildID: 123456789, PuzzleDate: day1, GuessesUsed: 1, Won: true, SubmittedAt: submittedAt.Add(5 * time.Minute)},
		{DiscordID: 1003, GuildID: 123456789, PuzzleDate: day1, GuessesUsed: 5, Won: false, SubmittedAt: submittedAt.Add(10 * time.Minute)},
		{DiscordID: 1001, GuildID: 123456789, PuzzleDate: day2, GuessesUsed: 2, Won: true, SubmittedAt: submittedAt.AddDate(0, 0, 1)},
	}
	for _, e := range seed {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("GetByDate returns only that day in submission order", func(t *testing.T) {
		entries, err := repo.GetByDate(ctx, day1)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, int64(1001), entries[0].DiscordID)
		assert.Equal(t, int64(1002), entries[1].DiscordID)
		assert.Equal(t, int64(1003), entries[2].DiscordID)
	})

	t.Run("GetAll spans every day", func(t *testing.T) {
		entries, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})

	t.Run("GetByPlayer is newest first and capped", func(t *testing.T) {
		entries, err := repo.GetByPlayer(ctx, 1001, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, day2, entries[0].PuzzleDate)
	})

	t.Run("guild isolation", func(t *testing.T) {
		otherGuild := NewLeaderboardRepositoryScoped(testDB.DB.Pool, 987654321)
		entries, err := otherGuild.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
