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

// statsDB is a local struct for database mapping
type statsDB struct {
	DiscordID         int64      `db:"discord_id"`
	GuildID           int64      `db:"guild_id"`
	GamesPlayed       int        `db:"games_played"`
	GamesWon          int        `db:"games_won"`
	CurrentStreak     int        `db:"current_streak"`
	MaxStreak         int        `db:"max_streak"`
	GuessDistribution []int      `db:"guess_distribution"`
	LastWinDate       *time.Time `db:"last_win_date"`
}

// toDomain converts the database struct to the domain model
func (s *statsDB) toDomain() (*entities.PlayerStats, error) {
	if len(s.GuessDistribution) != entities.MaxGuesses {
		return nil, fmt.Errorf("guess distribution has %d buckets, want %d", len(s.GuessDistribution), entities.MaxGuesses)
	}

	stats := &entities.PlayerStats{
		DiscordID:     s.DiscordID,
		GuildID:       s.GuildID,
		GamesPlayed:   s.GamesPlayed,
		GamesWon:      s.GamesWon,
		CurrentStreak: s.CurrentStreak,
		MaxStreak:     s.MaxStreak,
	}
	copy(stats.GuessDistribution[:], s.GuessDistribution)
	if s.LastWinDate != nil {
		utc := s.LastWinDate.UTC()
		stats.LastWinDate = &utc
	}
	return stats, nil
}

// statsRepository implements interfaces.StatsRepository
type statsRepository struct {
	q       Queryable
	guildID int64
}

// NewStatsRepositoryScoped creates a new stats repository with guild scope
func NewStatsRepositoryScoped(tx Queryable, guildID int64) interfaces.StatsRepository {
	return &statsRepository{q: tx, guildID: guildID}
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB, guildID int64) interfaces.StatsRepository {
	return &statsRepository{q: db.Pool, guildID: guildID}
}

// Get retrieves a player's stats. Absent rows come back nil; undecodable
// rows are logged and treated as absent.
func (r *statsRepository) Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	query := `
		SELECT discord_id, guild_id, games_played, games_won, current_streak, max_streak, guess_distribution, last_win_date
		FROM player_stats
		WHERE discord_id = $1 AND guild_id = $2`

	var dbStats statsDB
	err := r.q.QueryRow(ctx, query, discordID, r.guildID).Scan(
		&dbStats.DiscordID,
		&dbStats.GuildID,
		&dbStats.GamesPlayed,
		&dbStats.GamesWon,
		&dbStats.CurrentStreak,
		&dbStats.MaxStreak,
		&dbStats.GuessDistribution,
		&dbStats.LastWinDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	stats, err := dbStats.toDomain()
	if err != nil {
		log.WithError(err).WithField("discord_id", discordID).Warn("Discarding undecodable player stats, starting fresh")
		return nil, nil
	}
	return stats, nil
}

// Save upserts a player's stats
func (r *statsRepository) Save(ctx context.Context, stats *entities.PlayerStats) error {
	query := `
		INSERT INTO player_stats (discord_id, guild_id, games_played, games_won, current_streak, max_streak, guess_distribution, last_win_date, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (discord_id, guild_id)
		DO UPDATE SET games_played = EXCLUDED.games_played,
		              games_won = EXCLUDED.games_won,
		              current_streak = EXCLUDED.current_streak,
		              max_streak = EXCLUDED.max_streak,
		              guess_distribution = EXCLUDED.guess_distribution,
		              last_win_date = EXCLUDED.last_win_date,
		              updated_at = NOW()`

	_, err := r.q.Exec(ctx, query,
		stats.DiscordID,
		r.guildID,
		stats.GamesPlayed,
		stats.GamesWon,
		stats.CurrentStreak,
		stats.MaxStreak,
		stats.GuessDistribution[:],
		stats.LastWinDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save player stats: %w", err)
	}

	stats.GuildID = r.guildID
	return nil
}
