package dto

import "time"

// RolloverAnnouncementDTO carries everything the Discord layer needs to
// announce a new daily puzzle to one guild
type RolloverAnnouncementDTO struct {
	GuildID      int64
	ChannelID    int64
	PuzzleDate   time.Time
	PuzzleNumber int // 1-based, for display
}
