package services

import (
	"context"
	"fmt"
	"time"

	"stumped/domain/entities"
	"stumped/domain/interfaces"
)

// WrapIndex maps a puzzle index onto the cyclic catalog. Once the index
// exceeds the catalog size the puzzles repeat in original order.
func WrapIndex(puzzleIndex, catalogSize int) (int, error) {
	if catalogSize <= 0 {
		return 0, entities.ErrCatalogEmpty
	}
	return puzzleIndex % catalogSize, nil
}

// ArchiveEntry is one playable past puzzle
type ArchiveEntry struct {
	Date         time.Time
	PuzzleNumber int // 1-based day number, what players see as "#N"
}

// ArchiveDates lists the puzzle dates strictly before today, newest first.
// The epoch itself is included, today is not.
func ArchiveDates(epoch, today time.Time) []ArchiveEntry {
	lastIndex := PuzzleIndexForDate(today, epoch) - 1
	if lastIndex < 0 {
		return nil
	}
	listing := make([]ArchiveEntry, 0, lastIndex+1)
	for i := lastIndex; i >= 0; i-- {
		listing = append(listing, ArchiveEntry{
			Date:         DateForPuzzleIndex(i, epoch),
			PuzzleNumber: i + 1,
		})
	}
	return listing
}

// PuzzleSelector resolves puzzle indices against the stored catalog
type PuzzleSelector struct {
	puzzleRepo interfaces.PuzzleRepository
}

// NewPuzzleSelector creates a new puzzle selector
func NewPuzzleSelector(puzzleRepo interfaces.PuzzleRepository) *PuzzleSelector {
	return &PuzzleSelector{puzzleRepo: puzzleRepo}
}

// SelectByIndex returns the puzzle for an unwrapped index along with the
// wrapped catalog position
func (s *PuzzleSelector) SelectByIndex(ctx context.Context, puzzleIndex int) (*entities.Puzzle, int, error) {
	size, err := s.puzzleRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count puzzle catalog: %w", err)
	}

	wrapped, err := WrapIndex(puzzleIndex, size)
	if err != nil {
		return nil, 0, err
	}

	puzzle, err := s.puzzleRepo.GetByIndex(ctx, wrapped)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load puzzle %d: %w", wrapped, err)
	}
	if puzzle == nil {
		return nil, 0, fmt.Errorf("catalog inconsistent: no puzzle at index %d (size %d)", wrapped, size)
	}
	return puzzle, wrapped, nil
}

// SelectForDate returns the puzzle for a calendar date
func (s *PuzzleSelector) SelectForDate(ctx context.Context, date, epoch time.Time) (*entities.Puzzle, int, error) {
	return s.SelectByIndex(ctx, PuzzleIndexForDate(date, epoch))
}
