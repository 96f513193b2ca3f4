package testutil

import (
	"time"

	"stumped/domain/entities"
)

// CreateTestPlayer creates a test player with default values
func CreateTestPlayer(id, name string) *entities.Player {
	return &entities.Player{
		ID:   id,
		Name: name,
		Team: "India",
		Role: entities.RoleBatter,
	}
}

// CreateTestPlayerWithAttributes creates a test player with a specific team and role
func CreateTestPlayerWithAttributes(id, name, team string, role entities.PlayerRole) *entities.Player {
	player := CreateTestPlayer(id, name)
	player.Team = team
	player.Role = role
	return player
}

// CreateTestPuzzle creates a test puzzle with default values
func CreateTestPuzzle(puzzleIndex int, targetID string) *entities.Puzzle {
	return &entities.Puzzle{
		PuzzleIndex:  puzzleIndex,
		MatchContext: "World Cup Final 2011",
		Venue:        "Wankhede Stadium, Mumbai",
		Scorecard:    "IND 277/4 (48.2) beat SL 274/6 (50)",
		TargetID:     targetID,
		TargetTeam:   "India",
		TargetRole:   entities.RoleBatter,
		Participants: []string{targetID},
	}
}

// CreateTestGameState creates an in-progress game state for the daily slot
func CreateTestGameState(discordID, guildID int64, puzzleIndex int) *entities.GameState {
	return &entities.GameState{
		DiscordID:   discordID,
		GuildID:     guildID,
		Slot:        entities.DailySlot(),
		PuzzleIndex: puzzleIndex,
		Attempts:    []string{},
		Status:      entities.GameStatusInProgress,
		UpdatedAt:   time.Now(),
	}
}

// CreateTestStats creates player stats with a recorded win
func CreateTestStats(discordID, guildID int64, winDate time.Time) *entities.PlayerStats {
	stats := &entities.PlayerStats{
		DiscordID:     discordID,
		GuildID:       guildID,
		GamesPlayed:   1,
		GamesWon:      1,
		CurrentStreak: 1,
		MaxStreak:     1,
		LastWinDate:   &winDate,
	}
	stats.GuessDistribution[2] = 1
	return stats
}

// CreateTestLeaderboardEntry creates a winning leaderboard entry
func CreateTestLeaderboardEntry(discordID, guildID int64, puzzleDate time.Time, guessesUsed int) *entities.LeaderboardEntry {
	return &entities.LeaderboardEntry{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  puzzleDate,
		GuessesUsed: guessesUsed,
		Won:         true,
		SubmittedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// CreateTestArchiveCompletion creates a won archive completion
func CreateTestArchiveCompletion(discordID, guildID int64, puzzleDate time.Time, guesses int) *entities.ArchiveCompletion {
	score, err := entities.NewGuessScore(guesses, entities.MaxGuesses)
	if err != nil {
		panic(err)
	}
	return &entities.ArchiveCompletion{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  puzzleDate,
		Score:       score,
		Won:         true,
		CompletedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}
