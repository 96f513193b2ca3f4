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

// archiveCompletionDB is a local struct for database mapping
type archiveCompletionDB struct {
	DiscordID   int64     `db:"discord_id"`
	GuildID     int64     `db:"guild_id"`
	PuzzleDate  time.Time `db:"puzzle_date"`
	GuessCount  int       `db:"guess_count"`
	MaxGuesses  int       `db:"max_guesses"`
	Won         bool      `db:"won"`
	CompletedAt time.Time `db:"completed_at"`
}

// toDomain converts the database struct to the domain model
func (a *archiveCompletionDB) toDomain() (*entities.ArchiveCompletion, error) {
	score, err := entities.NewGuessScore(a.GuessCount, a.MaxGuesses)
	if err != nil {
		return nil, fmt.Errorf("invalid stored score: %w", err)
	}
	return &entities.ArchiveCompletion{
		DiscordID:   a.DiscordID,
		GuildID:     a.GuildID,
		PuzzleDate:  a.PuzzleDate.UTC(),
		Score:       score,
		Won:         a.Won,
		CompletedAt: a.CompletedAt.UTC(),
	}, nil
}

// archiveCompletionRepository implements interfaces.ArchiveCompletionRepository
type archiveCompletionRepository struct {
	q       Queryable
	guildID int64
}

// NewArchiveCompletionRepositoryScoped creates a new archive completion repository with guild scope
func NewArchiveCompletionRepositoryScoped(tx Queryable, guildID int64) interfaces.ArchiveCompletionRepository {
	return &archiveCompletionRepository{q: tx, guildID: guildID}
}

// NewArchiveCompletionRepository creates a new archive completion repository
func NewArchiveCompletionRepository(db *database.DB, guildID int64) interfaces.ArchiveCompletionRepository {
	return &archiveCompletionRepository{q: db.Pool, guildID: guildID}
}

// Create records a finished archive puzzle for a player. Replaying an
// already-finished archive date keeps the first result.
func (r *archiveCompletionRepository) Create(ctx context.Context, completion *entities.ArchiveCompletion) error {
	query := `
		INSERT INTO archive_completions (discord_id, guild_id, puzzle_date, guess_count, max_guesses, won, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (discord_id, guild_id, puzzle_date) DO NOTHING`

	_, err := r.q.Exec(ctx, query,
		completion.DiscordID,
		r.guildID,
		completion.PuzzleDate,
		completion.Score.Guesses,
		completion.Score.MaxGuesses,
		completion.Won,
		completion.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create archive completion: %w", err)
	}

	completion.GuildID = r.guildID
	return nil
}

// GetByDate retrieves a player's completion for a specific archive date, or nil
func (r *archiveCompletionRepository) GetByDate(ctx context.Context, discordID int64, puzzleDate time.Time) (*entities.ArchiveCompletion, error) {
	query := `
		SELECT discord_id, guild_id, puzzle_date, guess_count, max_guesses, won, completed_at
		FROM archive_completions
		WHERE discord_id = $1 AND guild_id = $2 AND puzzle_date = $3`

	var dbCompletion archiveCompletionDB
	err := r.q.QueryRow(ctx, query, discordID, r.guildID, puzzleDate).Scan(
		&dbCompletion.DiscordID,
		&dbCompletion.GuildID,
		&dbCompletion.PuzzleDate,
		&dbCompletion.GuessCount,
		&dbCompletion.MaxGuesses,
		&dbCompletion.Won,
		&dbCompletion.CompletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get archive completion: %w", err)
	}

	completion, err := dbCompletion.toDomain()
	if err != nil {
		log.WithError(err).WithField("discord_id", discordID).Warn("Discarding undecodable archive completion")
		return nil, nil
	}
	return completion, nil
}

// ListByPlayer retrieves a player's archive completions, newest first
func (r *archiveCompletionRepository) ListByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.ArchiveCompletion, error) {
	query := `
		SELECT discord_id, guild_id, puzzle_date, guess_count, max_guesses, won, completed_at
		FROM archive_completions
		WHERE discord_id = $1 AND guild_id = $2
		ORDER BY puzzle_date DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, discordID, r.guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive completions: %w", err)
	}
	defer rows.Close()

	var completions []*entities.ArchiveCompletion
	for rows.Next() {
		var dbCompletion archiveCompletionDB
		err := rows.Scan(
			&dbCompletion.DiscordID,
			&dbCompletion.GuildID,
			&dbCompletion.PuzzleDate,
			&dbCompletion.GuessCount,
			&dbCompletion.MaxGuesses,
			&dbCompletion.Won,
			&dbCompletion.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive completion: %w", err)
		}
		completion, err := dbCompletion.toDomain()
		if err != nil {
			log.WithError(err).WithField("discord_id", discordID).Warn("Skipping undecodable archive completion")
			continue
		}
		completions = append(completions, completion)
	}

	return completions, rows.Err()
}
