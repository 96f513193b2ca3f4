package repository

import (
	"context"
	"fmt"

	"stumped/database"
	"stumped/domain/entities"

	"github.com/jackc/pgx/v5"
)

// GuildSettingsRepository implements the GuildSettingsRepository interface
type GuildSettingsRepository struct {
	q Queryable
}

// NewGuildSettingsRepository creates a new guild settings repository
func NewGuildSettingsRepository(db *database.DB) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: db.Pool}
}

// NewGuildSettingsRepositoryWithTx creates a new guild settings repository with a transaction
func NewGuildSettingsRepositoryWithTx(tx Queryable) *GuildSettingsRepository {
	return &GuildSettingsRepository{q: tx}
}

// GetOrCreateGuildSettings retrieves guild settings or creates default ones if not found
func (r *GuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	// First try to get existing settings
	query := `
		SELECT guild_id, announce_channel_id, debug_day_offset
		FROM guild_settings
		WHERE guild_id = $1
	`

	var settings entities.GuildSettings
	err := r.q.QueryRow(ctx, query, guildID).Scan(
		&settings.GuildID,
		&settings.AnnounceChannelID,
		&settings.DebugDayOffset,
	)

	if err == nil {
		return &settings, nil
	}

	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get guild settings for guild %d: %w", guildID, err)
	}

	// If not found, create default settings
	insertQuery := `
		INSERT INTO guild_settings (guild_id, announce_channel_id, debug_day_offset)
		VALUES ($1, NULL, 0)
		RETURNING guild_id, announce_channel_id, debug_day_offset
	`

	err = r.q.QueryRow(ctx, insertQuery, guildID).Scan(
		&settings.GuildID,
		&settings.AnnounceChannelID,
		&settings.DebugDayOffset,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create guild settings for guild %d: %w", guildID, err)
	}

	return &settings, nil
}

// ListGuildsWithAnnounceChannel returns all guilds that have configured an announcement channel
func (r *GuildSettingsRepository) ListGuildsWithAnnounceChannel(ctx context.Context) ([]*entities.GuildSettings, error) {
	query := `
		SELECT guild_id, announce_channel_id, debug_day_offset
		FROM guild_settings
		WHERE announce_channel_id IS NOT NULL
		ORDER BY guild_id
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds with announce channel: %w", err)
	}
	defer rows.Close()

	var result []*entities.GuildSettings
	for rows.Next() {
		var settings entities.GuildSettings
		if err := rows.Scan(
			&settings.GuildID,
			&settings.AnnounceChannelID,
			&settings.DebugDayOffset,
		); err != nil {
			return nil, fmt.Errorf("failed to scan guild settings: %w", err)
		}
		result = append(result, &settings)
	}

	return result, rows.Err()
}

// UpdateGuildSettings updates guild settings
func (r *GuildSettingsRepository) UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error {
	query := `
		UPDATE guild_settings
		SET announce_channel_id = $2,
		    debug_day_offset = $3
		WHERE guild_id = $1
	`

	result, err := r.q.Exec(ctx, query,
		settings.GuildID,
		settings.AnnounceChannelID,
		settings.DebugDayOffset,
	)

	if err != nil {
		return fmt.Errorf("failed to update guild settings for guild %d: %w", settings.GuildID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guild settings for guild %d not found", settings.GuildID)
	}

	return nil
}
