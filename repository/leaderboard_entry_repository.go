package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stumped/database"
	"stumped/domain/entities"
	"stumped/domain/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// leaderboardEntryDB is a local struct for database mapping
type leaderboardEntryDB struct {
	ID          int64     `db:"id"`
	DiscordID   int64     `db:"discord_id"`
	GuildID     int64     `db:"guild_id"`
	PuzzleDate  time.Time `db:"puzzle_date"`
	GuessesUsed int       `db:"guesses_used"`
	Won         bool      `db:"won"`
	SubmittedAt time.Time `db:"submitted_at"`
	CreatedAt   time.Time `db:"created_at"`
}

// toDomain converts the database struct to the domain model
func (l *leaderboardEntryDB) toDomain() *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		ID:          l.ID,
		DiscordID:   l.DiscordID,
		GuildID:     l.GuildID,
		PuzzleDate:  l.PuzzleDate.UTC(),
		GuessesUsed: l.GuessesUsed,
		Won:         l.Won,
		SubmittedAt: l.SubmittedAt.UTC(),
		CreatedAt:   l.CreatedAt.UTC(),
	}
}

// leaderboardEntryRepository implements interfaces.LeaderboardRepository
type leaderboardEntryRepository struct {
	q       Queryable
	guildID int64
}

// NewLeaderboardRepositoryScoped creates a new leaderboard repository with guild scope
func NewLeaderboardRepositoryScoped(tx Queryable, guildID int64) interfaces.LeaderboardRepository {
	return &leaderboardEntryRepository{q: tx, guildID: guildID}
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *database.DB, guildID int64) interfaces.LeaderboardRepository {
	return &leaderboardEntryRepository{q: db.Pool, guildID: guildID}
}

const leaderboardColumns = `id, discord_id, guild_id, puzzle_date, guesses_used, won, submitted_at, created_at`

// Create inserts a player's result for a day. A second submission for the
// same day violates the unique constraint and maps to ErrDuplicateSubmission.
func (r *leaderboardEntryRepository) Create(ctx context.Context, entry *entities.LeaderboardEntry) error {
	query := `
		INSERT INTO leaderboard_entries (discord_id, guild_id, puzzle_date, guesses_used, won, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		entry.DiscordID,
		r.guildID,
		entry.PuzzleDate,
		entry.GuessesUsed,
		entry.Won,
		entry.SubmittedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entities.ErrDuplicateSubmission
		}
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}

	entry.GuildID = r.guildID
	return nil
}

// GetByDate retrieves all entries for a puzzle date
func (r *leaderboardEntryRepository) GetByDate(ctx context.Context, puzzleDate time.Time) ([]*entities.LeaderboardEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaderboard_entries
		WHERE guild_id = $1 AND puzzle_date = $2
		ORDER BY submitted_at ASC`, leaderboardColumns)

	return r.queryEntries(ctx, query, r.guildID, puzzleDate)
}

// GetAll retrieves every entry for the guild
func (r *leaderboardEntryRepository) GetAll(ctx context.Context) ([]*entities.LeaderboardEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaderboard_entries
		WHERE guild_id = $1
		ORDER BY puzzle_date ASC, submitted_at ASC`, leaderboardColumns)

	return r.queryEntries(ctx, query, r.guildID)
}

// GetByPlayer retrieves a player's entries, newest first
func (r *leaderboardEntryRepository) GetByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.LeaderboardEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM leaderboard_entries
		WHERE guild_id = $1 AND discord_id = $2
		ORDER BY puzzle_date DESC
		LIMIT $3`, leaderboardColumns)

	return r.queryEntries(ctx, query, r.guildID, discordID, limit)
}

func (r *leaderboardEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*entities.LeaderboardEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]*entities.LeaderboardEntry, error) {
	var entries []*entities.LeaderboardEntry
	for rows.Next() {
		var dbEntry leaderboardEntryDB
		err := rows.Scan(
			&dbEntry.ID,
			&dbEntry.DiscordID,
			&dbEntry.GuildID,
			&dbEntry.PuzzleDate,
			&dbEntry.GuessesUsed,
			&dbEntry.Won,
			&dbEntry.SubmittedAt,
			&dbEntry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, dbEntry.toDomain())
	}
	return entries, rows.Err()
}
