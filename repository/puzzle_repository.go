package repository

import (
	"context"
	"fmt"

	"stumped/database"
	"stumped/domain/entities"
	"stumped/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// puzzleDB is a local struct for database mapping
type puzzleDB struct {
	ID             int64    `db:"id"`
	PuzzleIndex    int      `db:"puzzle_index"`
	MatchContext   string   `db:"match_context"`
	Venue          string   `db:"venue"`
	Scorecard      string   `db:"scorecard"`
	TargetPlayerID string   `db:"target_player_id"`
	TargetTeam     string   `db:"target_team"`
	TargetRole     string   `db:"target_role"`
	Participants   []string `db:"participants"`
}

// toDomain converts the database struct to the domain model
func (p *puzzleDB) toDomain() *entities.Puzzle {
	return &entities.Puzzle{
		ID:           p.ID,
		PuzzleIndex:  p.PuzzleIndex,
		MatchContext: p.MatchContext,
		Venue:        p.Venue,
		Scorecard:    p.Scorecard,
		TargetID:     p.TargetPlayerID,
		TargetTeam:   p.TargetTeam,
		TargetRole:   entities.PlayerRole(p.TargetRole),
		Participants: p.Participants,
	}
}

// puzzleRepository implements interfaces.PuzzleRepository
type puzzleRepository struct {
	q Queryable
}

// NewPuzzleRepository creates a new puzzle repository
func NewPuzzleRepository(db *database.DB) interfaces.PuzzleRepository {
	return &puzzleRepository{q: db.Pool}
}

// NewPuzzleRepositoryWithTx creates a new puzzle repository with a transaction
func NewPuzzleRepositoryWithTx(tx Queryable) interfaces.PuzzleRepository {
	return &puzzleRepository{q: tx}
}

// GetByIndex retrieves the puzzle at a catalog position
func (r *puzzleRepository) GetByIndex(ctx context.Context, puzzleIndex int) (*entities.Puzzle, error) {
	query := `
		SELECT id, puzzle_index, match_context, venue, scorecard,
		       target_player_id, target_team, target_role, participants
		FROM puzzles
		WHERE puzzle_index = $1`

	var dbPuzzle puzzleDB
	err := r.q.QueryRow(ctx, query, puzzleIndex).Scan(
		&dbPuzzle.ID,
		&dbPuzzle.PuzzleIndex,
		&dbPuzzle.MatchContext,
		&dbPuzzle.Venue,
		&dbPuzzle.Scorecard,
		&dbPuzzle.TargetPlayerID,
		&dbPuzzle.TargetTeam,
		&dbPuzzle.TargetRole,
		&dbPuzzle.Participants,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle at index %d: %w", puzzleIndex, err)
	}

	return dbPuzzle.toDomain(), nil
}

// Count returns the catalog size
func (r *puzzleRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM puzzles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count puzzles: %w", err)
	}
	return count, nil
}
