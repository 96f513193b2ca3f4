package repository

import (
	"context"
	"testing"

	"stumped/domain/entities"
	"stumped/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerRepository_GetByID(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("seeded player found", func(t *testing.T) {
		player, err := repo.GetByID(ctx, "kohli")
		require.NoError(t, err)
		require.NotNil(t, player)
		assert.Equal(t, "Virat Kohli", player.Name)
		assert.Equal(t, "India", player.Team)
		assert.Equal(t, entities.RoleBatter, player.Role)
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		player, err := repo.GetByID(ctx, "bradman")
		require.NoError(t, err)
		assert.Nil(t, player)
	})
}

func TestPlayerRepository_Search(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPlayerRepository(testDB.DB)
	ctx := context.Background()

	t.Run("name prefix is case insensitive", func(t *testing.T) {
		players, err := repo.Search(ctx, "vi", 25)
		require.NoError(t, err)
		require.NotEmpty(t, players)
		assert.Equal(t, "kohli", players[0].ID)
	})

	t.Run("id prefix matches too", func(t *testing.T) {
		players, err := repo.Search(ctx, "dhon", 25)
		require.NoError(t, err)
		require.Len(t, players, 1)
		assert.Equal(t, "dhoni", players[0].ID)
	})

	t.Run("limit is respected", func(t *testing.T) {
		players, err := repo.Search(ctx, "", 5)
		require.NoError(t, err)
		assert.Len(t, players, 5)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		players, err := repo.Search(ctx, "zzz", 25)
		require.NoError(t, err)
		assert.Empty(t, players)
	})
}

func TestPuzzleRepository_Catalog(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewPuzzleRepository(testDB.DB)
	ctx := context.Background()

	t.Run("count covers the seeded catalog", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 10)
	})

	t.Run("index zero is the 2011 final", func(t *testing.T) {
		puzzle, err := repo.GetByIndex(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, puzzle)
		assert.Equal(t, "dhoni", puzzle.TargetID)
		assert.Equal(t, entities.RoleWicketKeeper, puzzle.TargetRole)
		assert.True(t, puzzle.HasParticipant("sangakkara"))
		assert.False(t, puzzle.HasParticipant("warner"))
	})

	t.Run("every seeded target is in its own participant list", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)

		for i := 0; i < count; i++ {
			puzzle, err := repo.GetByIndex(ctx, i)
			require.NoError(t, err)
			require.NotNil(t, puzzle, "missing puzzle at index %d", i)
			assert.True(t, puzzle.HasParticipant(puzzle.TargetID),
				"target %s absent from participants at index %d", puzzle.TargetID, i)
		}
	})

	t.Run("out of range index returns nil", func(t *testing.T) {
		puzzle, err := repo.GetByIndex(ctx, 100000)
		require.NoError(t, err)
		assert.Nil(t, puzzle)
	})
}
