package services

import (
	"context"
	"testing"
	"time"

	"stumped/domain/entities"
	"stumped/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		index       int
		size        int
		want        int
		wantErr     error
	}{
		{name: "within catalog", index: 3, size: 10, want: 3},
		{name: "first wraparound", index: 10, size: 10, want: 0},
		{name: "deep wraparound", index: 25, size: 10, want: 5},
		{name: "single puzzle catalog", index: 999, size: 1, want: 0},
		{name: "empty catalog is fatal", index: 0, size: 0, wantErr: entities.ErrCatalogEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := WrapIndex(tt.index, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrapIndex_CyclicProperty(t *testing.T) {
	t.Parallel()

	// selectPuzzle(i) == selectPuzzle(i + n*len) for all i and n >= 0
	for _, size := range []int{1, 3, 7, 365} {
		for i := 0; i < 3*size; i++ {
			base, err := WrapIndex(i, size)
			require.NoError(t, err)
			for n := 0; n <= 3; n++ {
				wrapped, err := WrapIndex(i+n*size, size)
				require.NoError(t, err)
				assert.Equal(t, base, wrapped, "size=%d i=%d n=%d", size, i, n)
			}
		}
	}
}

func TestPuzzleSelector_SelectByIndex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("wraps onto the catalog", func(t *testing.T) {
		t.Parallel()
		mockRepo := new(testhelpers.MockPuzzleRepository)
		puzzle := &entities.Puzzle{PuzzleIndex: 2, TargetID: "kohli"}
		mockRepo.On("Count", ctx).Return(10, nil)
		mockRepo.On("GetByIndex", ctx, 2).Return(puzzle, nil)

		selector := NewPuzzleSelector(mockRepo)
		got, wrapped, err := selector.SelectByIndex(ctx, 12)

		require.NoError(t, err)
		assert.Equal(t, 2, wrapped)
		assert.Same(t, puzzle, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("empty catalog fails closed", func(t *testing.T) {
		t.Parallel()
		mockRepo := new(testhelpers.MockPuzzleRepository)
		mockRepo.On("Count", ctx).Return(0, nil)

		selector := NewPuzzleSelector(mockRepo)
		_, _, err := selector.SelectByIndex(ctx, 0)

		assert.ErrorIs(t, err, entities.ErrCatalogEmpty)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing row is reported as inconsistency", func(t *testing.T) {
		t.Parallel()
		mockRepo := new(testhelpers.MockPuzzleRepository)
		mockRepo.On("Count", ctx).Return(5, nil)
		mockRepo.On("GetByIndex", ctx, 3).Return(nil, nil)

		selector := NewPuzzleSelector(mockRepo)
		_, _, err := selector.SelectByIndex(ctx, 3)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "catalog inconsistent")
	})
}

func TestArchiveDates(t *testing.T) {
	t.Parallel()

	epoch := date(2026, time.January, 15)

	t.Run("empty on launch day", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, ArchiveDates(epoch, epoch))
	})

	t.Run("newest first, epoch included, today excluded", func(t *testing.T) {
		t.Parallel()
		listing := ArchiveDates(epoch, date(2026, time.January, 18))

		require.Len(t, listing, 3)
		assert.Equal(t, date(2026, time.January, 17), listing[0].Date)
		assert.Equal(t, 3, listing[0].PuzzleNumber)
		assert.Equal(t, date(2026, time.January, 15), listing[2].Date)
		assert.Equal(t, 1, listing[2].PuzzleNumber)
	})
}
