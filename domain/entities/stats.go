package entities

import "time"

// PlayerStats is the per-player aggregate updated only at game termination
// of the daily slot. GamesPlayed, GamesWon, MaxStreak and the distribution
// counts only ever grow; CurrentStreak can reset to zero.
type PlayerStats struct {
	DiscordID         int64
	GuildID           int64
	GamesPlayed       int
	GamesWon          int
	CurrentStreak     int
	MaxStreak         int
	GuessDistribution [MaxGuesses]int // index i counts wins in i+1 guesses
	LastWinDate       *time.Time      // UTC date of the most recent win, nil before first win
}

// NewPlayerStats returns zeroed stats for a player
func NewPlayerStats(discordID, guildID int64) *PlayerStats {
	return &PlayerStats{
		DiscordID: discordID,
		GuildID:   guildID,
	}
}

// WinPercentage computes the win rate as 0-100
func (s *PlayerStats) WinPercentage() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// HasData checks if the stats contain any recorded games
func (s *PlayerStats) HasData() bool {
	return s.GamesPlayed > 0
}
