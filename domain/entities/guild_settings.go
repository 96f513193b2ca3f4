package entities

// GuildSettings represents per-guild configuration settings
type GuildSettings struct {
	GuildID           int64  `db:"guild_id"`
	AnnounceChannelID *int64 `db:"announce_channel_id"` // Nullable - channel for daily puzzle announcements
	DebugDayOffset    int    `db:"debug_day_offset"`    // Whole days added to "now" for puzzle previews
}

// HasAnnounceChannel checks if an announcement channel is configured
func (gs *GuildSettings) HasAnnounceChannel() bool {
	return gs.AnnounceChannelID != nil && *gs.AnnounceChannelID > 0
}

// SetAnnounceChannel sets the announcement channel ID
func (gs *GuildSettings) SetAnnounceChannel(channelID *int64) {
	gs.AnnounceChannelID = channelID
}
