package bot

import (
	"context"
	"fmt"

	"stumped/domain/entities"
)

// GuildSettingsLister lists guild settings across guilds. Satisfied by the
// concrete guild settings repository; the guild-scoped unit of work cannot
// serve cross-guild queries.
type GuildSettingsLister interface {
	ListGuildsWithAnnounceChannel(ctx context.Context) ([]*entities.GuildSettings, error)
}

// GuildDiscoveryServiceImpl implements the GuildDiscoveryService interface
type GuildDiscoveryServiceImpl struct {
	lister GuildSettingsLister
}

// NewGuildDiscoveryService creates a new guild discovery service
func NewGuildDiscoveryService(lister GuildSettingsLister) *GuildDiscoveryServiceImpl {
	return &GuildDiscoveryServiceImpl{lister: lister}
}

// GetGuildsWithAnnounceChannel returns settings for every guild that
// configured an announcement channel
func (g *GuildDiscoveryServiceImpl) GetGuildsWithAnnounceChannel(ctx context.Context) ([]*entities.GuildSettings, error) {
	guilds, err := g.lister.ListGuildsWithAnnounceChannel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announce-enabled guilds: %w", err)
	}
	return guilds, nil
}
