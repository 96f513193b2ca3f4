package testhelpers

import (
	"context"
	"time"

	"stumped/domain/entities"
	"stumped/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockPlayerRepository is a mock implementation of PlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetByID(ctx context.Context, playerID string) (*entities.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Player), args.Error(1)
}

func (m *MockPlayerRepository) Search(ctx context.Context, prefix string, limit int) ([]*entities.Player, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Player), args.Error(1)
}

// MockPuzzleRepository is a mock implementation of PuzzleRepository
type MockPuzzleRepository struct {
	mock.Mock
}

func (m *MockPuzzleRepository) GetByIndex(ctx context.Context, puzzleIndex int) (*entities.Puzzle, error) {
	args := m.Called(ctx, puzzleIndex)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Puzzle), args.Error(1)
}

func (m *MockPuzzleRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockGameStateRepository is a mock implementation of GameStateRepository
type MockGameStateRepository struct {
	mock.Mock
}

func (m *MockGameStateRepository) Get(ctx context.Context, discordID int64, slot entities.SlotKey) (*entities.GameState, error) {
	args := m.Called(ctx, discordID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GameState), args.Error(1)
}

func (m *MockGameStateRepository) Save(ctx context.Context, state *entities.GameState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Get(ctx context.Context, discordID int64) (*entities.PlayerStats, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PlayerStats), args.Error(1)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats *entities.PlayerStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockArchiveCompletionRepository is a mock implementation of ArchiveCompletionRepository
type MockArchiveCompletionRepository struct {
	mock.Mock
}

func (m *MockArchiveCompletionRepository) Create(ctx context.Context, completion *entities.ArchiveCompletion) error {
	args := m.Called(ctx, completion)
	return args.Error(0)
}

func (m *MockArchiveCompletionRepository) GetByDate(ctx context.Context, discordID int64, puzzleDate time.Time) (*entities.ArchiveCompletion, error) {
	args := m.Called(ctx, discordID, puzzleDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ArchiveCompletion), args.Error(1)
}

func (m *MockArchiveCompletionRepository) ListByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.ArchiveCompletion, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ArchiveCompletion), args.Error(1)
}

// MockLeaderboardRepository is a mock implementation of LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) Create(ctx context.Context, entry *entities.LeaderboardEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLeaderboardRepository) GetByDate(ctx context.Context, puzzleDate time.Time) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, puzzleDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) GetAll(ctx context.Context) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) GetByPlayer(ctx context.Context, discordID int64, limit int) ([]*entities.LeaderboardEntry, error) {
	args := m.Called(ctx, discordID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.LeaderboardEntry), args.Error(1)
}

// MockGuildSettingsRepository is a mock implementation of GuildSettingsRepository
type MockGuildSettingsRepository struct {
	mock.Mock
}

func (m *MockGuildSettingsRepository) GetOrCreateGuildSettings(ctx context.Context, guildID int64) (*entities.GuildSettings, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GuildSettings), args.Error(1)
}

func (m *MockGuildSettingsRepository) UpdateGuildSettings(ctx context.Context, settings *entities.GuildSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) error {
	args := m.Called(event)
	return args.Error(0)
}
