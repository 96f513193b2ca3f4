package repository

import (
	"context"
	"fmt"

	"stumped/database"
	"stumped/domain/entities"
	"stumped/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// playerRepository implements interfaces.PlayerRepository
type playerRepository struct {
	q Queryable
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *database.DB) interfaces.PlayerRepository {
	return &playerRepository{q: db.Pool}
}

// NewPlayerRepositoryWithTx creates a new player repository with a transaction
func NewPlayerRepositoryWithTx(tx Queryable) interfaces.PlayerRepository {
	return &playerRepository{q: tx}
}

// GetByID retrieves a player by their canonical ID
func (r *playerRepository) GetByID(ctx context.Context, playerID string) (*entities.Player, error) {
	query := `
		SELECT id, name, team, role
		FROM players
		WHERE id = $1`

	var player entities.Player
	err := r.q.QueryRow(ctx, query, playerID).Scan(
		&player.ID,
		&player.Name,
		&player.Team,
		&player.Role,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}

	return &player, nil
}

// Search returns players matching a name or ID prefix, for autocomplete
func (r *playerRepository) Search(ctx context.Context, prefix string, limit int) ([]*entities.Player, error) {
	query := `
		SELECT id, name, team, role
		FROM players
		WHERE lower(name) LIKE lower($1) || '%' OR id LIKE lower($1) || '%'
		ORDER BY name
		LIMIT $2`

	rows, err := r.q.Query(ctx, query, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	defer rows.Close()

	var players []*entities.Player
	for rows.Next() {
		var player entities.Player
		if err := rows.Scan(&player.ID, &player.Name, &player.Team, &player.Role); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, &player)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, nil
}
