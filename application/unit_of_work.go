package application

import (
	"context"

	"stumped/domain/interfaces"
)

// UnitOfWork defines the interface for transactional repository operations.
// Everything written through one unit of work lands in one database
// transaction: the terminal state transition, the stats update and the
// leaderboard submission either all persist or none do.
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Repository getters
	PlayerRepository() interfaces.PlayerRepository
	PuzzleRepository() interfaces.PuzzleRepository
	GameStateRepository() interfaces.GameStateRepository
	StatsRepository() interfaces.StatsRepository
	ArchiveCompletionRepository() interfaces.ArchiveCompletionRepository
	LeaderboardRepository() interfaces.LeaderboardRepository
	GuildSettingsRepository() interfaces.GuildSettingsRepository
	EventBus() interfaces.EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	// CreateForGuild creates a new UnitOfWork instance scoped to a specific guild
	CreateForGuild(guildID int64) UnitOfWork
}
