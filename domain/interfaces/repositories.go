package interfaces

import (
	"context"
	"time"

	"stumped/domain/entities"
)

// PlayerRepository defines the interface for the guessable player pool
type PlayerRepository interface {
	// GetByID retrieves a player by their canonical ID, nil when unknown
	GetByID(ctx context.Context, playerID string) (*entities.Player, error)

	// Search returns players whose name or ID matches the prefix, for
	// autocomplete. Capped at limit.
	Search(ctx context.Context, prefix string, limit int) ([]*entities.Player, error)
}

// PuzzleRepository defines the interface for the ordered puzzle catalog
type PuzzleRepository interface {
	// GetByIndex retrieves the puzzle at a catalog position, nil when absent
	GetByIndex(ctx context.Context, puzzleIndex int) (*entities.Puzzle, error)

	// Count returns the catalog size
	Count(ctx context.Context) (int, error)
}

// GameStateRepository defines the interface for per-slot game state
type GameStateRepository interface {
	// Get retrieves the state for a slot, nil when the slot has never been
	// played
	Get(ctx context.Context, discordID int64, slot entities.SlotKey) (*entities.GameState, error)

	// Save upserts the state for a slot
	Save(ctx context.Context, state *entities.GameState) error
}

// StatsRepository defines the interface for the per-player aggregate
type StatsRepository interface {
	// Get retrieves a player's stats, nil when nothing recorded yet
	Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error)

	// Save upserts a player's stats
	Save(ctx context.Context, stats *entities.PlayerStats) error
}

// ArchiveCompletionRepository tracks finished archive-slot games, keyed by
// puzzle date, wholly separate from daily stats
type ArchiveCompletionRepository interface {
	// Create records an archive completion
	Create(ctx context.Context, completion *entities.ArchiveCompletion) error

	// GetByDate retrieves a player's completion for a puzzle date, nil when
	// absent
	GetByDate(ctx context.Context, discordID int64, puzzleDate time.Time) (*entities.ArchiveCompletion, error)

	// ListByPlayer returns a player's archive completions, newest first
	ListByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.ArchiveCompletion, error)
}

// LeaderboardRepository defines the interface for submitted results
type LeaderboardRepository interface {
	// Create records an entry. Returns entities.ErrDuplicateSubmission when
	// an entry already exists for this player and puzzle date.
	Create(ctx context.Context, entry *entities.LeaderboardEntry) error

	// GetByDate returns all entries for a puzzle date
	GetByDate(ctx context.Context, puzzleDate time.Time) ([]*entities.LeaderboardEntry, error)

	// GetAll returns every entry in the scope, for cross-puzzle aggregation
	GetAll(ctx context.Context) ([]*entities.LeaderboardEntry, error)

	// GetByPlayer returns one player's entries, newest first
	GetByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.LeaderboardEntry, error)
}

// GuildSettingsRepository defines the interface for per-guild settings
type GuildSettingsRepository interface {
	// GetOrCreateGuildSettings retrieves settings, creating defaults if absent
	GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error)

	// UpdateGuildSettings persists modified settings
	UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error
}
