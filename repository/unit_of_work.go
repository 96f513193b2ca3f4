package repository

import (
	"context"
	"fmt"

	"stumped/application"
	"stumped/database"
	"stumped/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the application.UnitOfWork interface
type unitOfWork struct {
	db                     *database.DB
	tx                     pgx.Tx
	ctx                    context.Context
	guildID                int64
	transactionalPublisher interfaces.TransactionalEventPublisher
	playerRepo             interfaces.PlayerRepository
	puzzleRepo             interfaces.PuzzleRepository
	gameStateRepo          interfaces.GameStateRepository
	statsRepo              interfaces.StatsRepository
	archiveCompletionRepo  interfaces.ArchiveCompletionRepository
	leaderboardRepo        interfaces.LeaderboardRepository
	guildSettingsRepo      interfaces.GuildSettingsRepository
}

type unitOfWorkFactory struct {
	db               *database.DB
	publisherFactory func() interfaces.TransactionalEventPublisher
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory. Each unit of work
// gets its own transactional publisher so pending events never leak between
// transactions.
func NewUnitOfWorkFactory(db *database.DB, publisherFactory func() interfaces.TransactionalEventPublisher) application.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:               db,
		publisherFactory: publisherFactory,
	}
}

// CreateForGuild creates a new UnitOfWork scoped to a specific guild
func (f *unitOfWorkFactory) CreateForGuild(guildID int64) application.UnitOfWork {
	return &unitOfWork{
		db:                     f.db,
		guildID:                guildID,
		transactionalPublisher: f.publisherFactory(),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	// Create guild-scoped repositories with the transaction
	u.playerRepo = NewPlayerRepositoryWithTx(tx)
	u.puzzleRepo = NewPuzzleRepositoryWithTx(tx)
	u.gameStateRepo = NewGameStateRepositoryScoped(tx, u.guildID)
	u.statsRepo = NewStatsRepositoryScoped(tx, u.guildID)
	u.archiveCompletionRepo = NewArchiveCompletionRepositoryScoped(tx, u.guildID)
	u.leaderboardRepo = NewLeaderboardRepositoryScoped(tx, u.guildID)
	u.guildSettingsRepo = NewGuildSettingsRepositoryWithTx(tx) // Guild settings don't need scoping

	return nil
}

// Commit commits the transaction
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	err := u.tx.Commit(u.ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	// Flush pending events after successful commit
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Flush(u.ctx)
	}

	return nil
}

// Rollback rolls back the transaction
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	// Discard pending events on rollback
	if u.transactionalPublisher != nil {
		u.transactionalPublisher.Discard()
	}

	return nil
}

// PlayerRepository returns the player repository for this unit of work
func (u *unitOfWork) PlayerRepository() interfaces.PlayerRepository {
	if u.playerRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.playerRepo
}

// PuzzleRepository returns the puzzle repository for this unit of work
func (u *unitOfWork) PuzzleRepository() interfaces.PuzzleRepository {
	if u.puzzleRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.puzzleRepo
}

// GameStateRepository returns the game state repository for this unit of work
func (u *unitOfWork) GameStateRepository() interfaces.GameStateRepository {
	if u.gameStateRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.gameStateRepo
}

// StatsRepository returns the stats repository for this unit of work
func (u *unitOfWork) StatsRepository() interfaces.StatsRepository {
	if u.statsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.statsRepo
}

// ArchiveCompletionRepository returns the archive completion repository for this unit of work
func (u *unitOfWork) ArchiveCompletionRepository() interfaces.ArchiveCompletionRepository {
	if u.archiveCompletionRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.archiveCompletionRepo
}

// LeaderboardRepository returns the leaderboard repository for this unit of work
func (u *unitOfWork) LeaderboardRepository() interfaces.LeaderboardRepository {
	if u.leaderboardRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.leaderboardRepo
}

// GuildSettingsRepository returns the guild settings repository for this unit of work
func (u *unitOfWork) GuildSettingsRepository() interfaces.GuildSettingsRepository {
	if u.guildSettingsRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.guildSettingsRepo
}

// EventBus returns the transactional event publisher for this unit of work
func (u *unitOfWork) EventBus() interfaces.EventPublisher {
	if u.transactionalPublisher == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalPublisher
}
