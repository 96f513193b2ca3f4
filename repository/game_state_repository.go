package repository

import (
	"context"
	"fmt"
	"time"

	"stumped/database"
	"stumped/domain/entities"
	"stumped/domain/interfaces"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

// gameStateDB is a local struct for database mapping
type gameStateDB struct {
	DiscordID          int64     `db:"discord_id"`
	GuildID            int64     `db:"guild_id"`
	SlotKey            string    `db:"slot_key"`
	PuzzleIndex        int       `db:"puzzle_index"`
	Attempts           []string  `db:"attempts"`
	Status             string    `db:"status"`
	ResultAcknowledged bool      `db:"result_acknowledged"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// toDomain converts the database struct to the domain model, reporting
// undecodable rows so the caller can fall back to a fresh state
func (g *gameStateDB) toDomain() (*entities.GameState, error) {
	status := entities.GameStatus(g.Status)
	switch status {
	case entities.GameStatusInProgress, entities.GameStatusWon, entities.GameStatusLost:
	default:
		return nil, fmt.Errorf("invalid game status %q", g.Status)
	}
	if len(g.Attempts) > entities.MaxGuesses {
		return nil, fmt.Errorf("attempts overflow: %d recorded", len(g.Attempts))
	}

	return &entities.GameState{
		DiscordID:          g.DiscordID,
		GuildID:            g.GuildID,
		Slot:               entities.SlotKey(g.SlotKey),
		PuzzleIndex:        g.PuzzleIndex,
		Attempts:           g.Attempts,
		Status:             status,
		ResultAcknowledged: g.ResultAcknowledged,
		UpdatedAt:          g.UpdatedAt,
	}, nil
}

// gameStateRepository implements interfaces.GameStateRepository
type gameStateRepository struct {
	q       Queryable
	guildID int64
}

// NewGameStateRepositoryScoped creates a new game state repository with guild scope
func NewGameStateRepositoryScoped(tx Queryable, guildID int64) interfaces.GameStateRepository {
	return &gameStateRepository{q: tx, guildID: guildID}
}

// NewGameStateRepository creates a new game state repository
func NewGameStateRepository(db *database.DB, guildID int64) interfaces.GameStateRepository {
	return &gameStateRepository{q: db.Pool, guildID: guildID}
}

// Get retrieves the state for a slot. Absent and undecodable rows both come
// back as nil so gameplay always has a usable default; corruption is logged,
// never surfaced.
func (r *gameStateRepository) Get(ctx context.Context, discordID int64, slot entities.SlotKey) (*entities.GameState, error) {
	query := `
		SELECT discord_id, guild_id, slot_key, puzzle_index, attempts, status, result_acknowledged, updated_at
		FROM game_states
		WHERE discord_id = $1 AND guild_id = $2 AND slot_key = $3`

	var dbState gameStateDB
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, string(slot)).Scan(
		&dbState.DiscordID,
		&dbState.GuildID,
		&dbState.SlotKey,
		&dbState.PuzzleIndex,
		&dbState.Attempts,
		&dbState.Status,
		&dbState.ResultAcknowledged,
		&dbState.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	state, err := dbState.toDomain()
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"discord_id": discordID,
			"slot":       slot,
		}).Warn("Discarding undecodable game state, starting fresh")
		return nil, nil
	}
	return state, nil
}

// Save upserts the state for a slot
func (r *gameStateRepository) Save(ctx context.Context, state *entities.GameState) error {
	query := `
		INSERT INTO game_states (discord_id, guild_id, slot_key, puzzle_index, attempts, status, result_acknowledged, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (discord_id, guild_id, slot_key)
		DO UPDATE SET puzzle_index = EXCLUDED.puzzle_index,
		              attempts = EXCLUDED.attempts,
		              status = EXCLUDED.status,
		              result_acknowledged = EXCLUDED.result_acknowledged,
		              updated_at = NOW()`

	_, err := r.q.Exec(ctx, query,
		state.DiscordID,
		r.guildID,
		string(state.Slot),
		state.PuzzleIndex,
		state.Attempts,
		string(state.Status),
		state.ResultAcknowledged,
	)
	if err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	state.GuildID = r.guildID
	return nil
}
