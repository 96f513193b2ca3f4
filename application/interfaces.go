package application

import (
	"context"

	"stumped/application/dto"
	"stumped/domain/entities"
)

// DiscordPoster defines the interface for posting messages to Discord.
// This abstraction allows the application layer to communicate with Discord
// without direct dependency on the Discord API
type DiscordPoster interface {
	// PostRolloverAnnouncement posts the new-puzzle announcement to a
	// guild's configured channel
	PostRolloverAnnouncement(ctx context.Context, announcement dto.RolloverAnnouncementDTO) error
}

// GuildDiscoveryService finds guilds that opted into announcements
type GuildDiscoveryService interface {
	// GetGuildsWithAnnounceChannel returns settings for every guild with a
	// configured announcement channel
	GetGuildsWithAnnounceChannel(ctx context.Context) ([]*entities.GuildSettings, error)
}

// GameMetrics records gameplay counters. A no-op implementation is used
// when metrics are disabled.
type GameMetrics interface {
	RecordGuess(ctx context.Context, source string)
	RecordCompletion(ctx context.Context, won bool, guessesUsed int)
	RecordSubmission(ctx context.Context)
}
