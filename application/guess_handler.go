package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"stumped/application/dto"
	"stumped/domain/entities"
	domainevents "stumped/domain/events"
	"stumped/domain/interfaces"
	"stumped/domain/services"

	log "github.com/sirupsen/logrus"
)

// ErrFutureArchiveDate rejects archive play for dates that have not rolled
// over yet
var ErrFutureArchiveDate = errors.New("archive puzzle not yet available")

// GuessHandler is the entry point for gameplay. One instance serves all
// guilds.
type GuessHandler interface {
	// HandleGuess submits one candidate for a slot and returns the updated
	// view. Submitting to a finished slot is a no-op that returns the final
	// state.
	HandleGuess(ctx context.Context, guildID, discordID int64, slot entities.SlotKey, candidateID string) (*dto.GuessResultDTO, error)

	// GetBoard returns the current view of a slot without guessing
	GetBoard(ctx context.Context, guildID, discordID int64, slot entities.SlotKey) (*dto.BoardDTO, error)
}

type guessHandler struct {
	uowFactory UnitOfWorkFactory
	validator  interfaces.GuessValidator
	clock      interfaces.Clock
	epoch      time.Time
	metrics    GameMetrics

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewGuessHandler creates a new GuessHandler
func NewGuessHandler(
	uowFactory UnitOfWorkFactory,
	validator interfaces.GuessValidator,
	clock interfaces.Clock,
	epoch time.Time,
	metrics GameMetrics,
) GuessHandler {
	return &guessHandler{
		uowFactory: uowFactory,
		validator:  validator,
		clock:      clock,
		epoch:      epoch,
		metrics:    metrics,
		locks:      make(map[string]*sync.Mutex),
	}
}

// slotLock returns the mutex serializing submissions for one player's slot.
// Concurrent guesses from the same player would otherwise race between the
// state read and the state write.
func (h *guessHandler) slotLock(guildID, discordID int64, slot entities.SlotKey) *sync.Mutex {
	key := fmt.Sprintf("%d:%d:%s", guildID, discordID, slot)
	h.mu.Lock()
	defer h.mu.Unlock()
	lock, ok := h.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[key] = lock
	}
	return lock
}

// slotContext is everything resolved about a slot before gameplay proceeds
type slotContext struct {
	puzzle     *entities.Puzzle
	dayIndex   int // whole days since the epoch; one value per calendar date
	puzzleDate time.Time
	now        time.Time
}

// puzzleNumber is the 1-based day number players see as "#N"
func (sc *slotContext) puzzleNumber() int {
	return sc.dayIndex + 1
}

// resolveSlot computes the effective date for a slot and selects its puzzle.
// The guild's debug day offset shifts "now" before any date math happens.
func (h *guessHandler) resolveSlot(ctx context.Context, uow UnitOfWork, guildID int64, slot entities.SlotKey) (*slotContext, error) {
	settings, err := uow.GuildSettingsRepository().GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to load guild settings: %w", err)
	}

	now := services.NewOffsetClock(h.clock, settings.DebugDayOffset).Now()
	today := services.UTCMidnight(now)

	var puzzleDate time.Time
	if slot.IsDaily() {
		puzzleDate = today
	} else {
		puzzleDate, err = slot.ArchiveDate()
		if err != nil {
			return nil, fmt.Errorf("malformed slot key %q: %w", slot, err)
		}
		if !puzzleDate.Before(today) {
			return nil, ErrFutureArchiveDate
		}
	}

	dayIndex := services.PuzzleIndexForDate(puzzleDate, h.epoch)
	selector := services.NewPuzzleSelector(uow.PuzzleRepository())
	puzzle, _, err := selector.SelectByIndex(ctx, dayIndex)
	if err != nil {
		return nil, err
	}

	return &slotContext{
		puzzle:     puzzle,
		dayIndex:   dayIndex,
		puzzleDate: puzzleDate,
		now:        now,
	}, nil
}

// loadState fetches the stored state for a slot, discarding state left over
// from a previous day so daily rollover always starts fresh. The comparison
// runs on the day index, never the wrapped catalog position: two dates a
// whole catalog cycle apart share a catalog position but are different
// puzzles.
func loadState(ctx context.Context, uow UnitOfWork, guildID, discordID int64, slot entities.SlotKey, sc *slotContext) (*entities.GameState, error) {
	state, err := uow.GameStateRepository().Get(ctx, discordID, slot)
	if err != nil {
		return nil, err
	}
	if state != nil && state.PuzzleIndex != sc.dayIndex {
		log.WithFields(log.Fields{
			"discord_id": discordID,
			"slot":       slot,
			"stored":     state.PuzzleIndex,
			"current":    sc.dayIndex,
		}).Debug("Discarding stale game state from a previous day")
		state = nil
	}
	if state == nil {
		return entities.NewGameState(discordID, guildID, slot, sc.dayIndex)
	}
	return state, nil
}

func (h *guessHandler) HandleGuess(ctx context.Context, guildID, discordID int64, slot entities.SlotKey, candidateID string) (*dto.GuessResultDTO, error) {
	lock := h.slotLock(guildID, discordID, slot)
	lock.Lock()
	defer lock.Unlock()

	uow := h.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	sc, err := h.resolveSlot(ctx, uow, guildID, slot)
	if err != nil {
		return nil, err
	}

	state, err := loadState(ctx, uow, guildID, discordID, slot, sc)
	if err != nil {
		return nil, err
	}

	// A finished slot absorbs retries without consuming anything
	if state.IsTerminal() {
		return &dto.GuessResultDTO{
			Puzzle:          sc.puzzle,
			State:           state,
			AlreadyTerminal: true,
			PuzzleDate:      sc.puzzleDate,
			PuzzleNumber:    sc.puzzleNumber(),
		}, nil
	}

	// Rejections that must not consume an attempt happen before scoring
	if state.HasGuessed(candidateID) {
		return nil, entities.ErrDuplicateGuess
	}

	candidate, err := uow.PlayerRepository().GetByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up candidate: %w", err)
	}
	if candidate == nil {
		return nil, entities.ErrUnknownCandidate
	}

	scored, err := h.validator.Validate(ctx, sc.puzzle, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to score guess: %w", err)
	}
	h.metrics.RecordGuess(ctx, string(scored.Source))

	outcome, err := services.AdvanceGame(state, scored.Feedback)
	if err != nil {
		return nil, err
	}

	if err := uow.GameStateRepository().Save(ctx, state); err != nil {
		return nil, err
	}

	if state.IsTerminal() {
		if err := h.recordCompletion(ctx, uow, guildID, discordID, slot, sc, state); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"discord_id": discordID,
		"guild_id":   guildID,
		"slot":       slot,
		"candidate":  candidateID,
		"status":     state.Status,
		"source":     scored.Source,
	}).Info("Processed guess")

	return &dto.GuessResultDTO{
		Puzzle:       sc.puzzle,
		State:        state,
		Feedback:     outcome.Feedback,
		Source:       string(scored.Source),
		PuzzleDate:   sc.puzzleDate,
		PuzzleNumber: sc.puzzleNumber(),
	}, nil
}

// recordCompletion persists everything a terminal transition implies.
// Daily slots update stats and the leaderboard in the same transaction as
// the state write; archive slots only record a completion and never touch
// streaks or the leaderboard.
func (h *guessHandler) recordCompletion(
	ctx context.Context,
	uow UnitOfWork,
	guildID, discordID int64,
	slot entities.SlotKey,
	sc *slotContext,
	state *entities.GameState,
) error {
	won := state.Status == entities.GameStatusWon
	guessesUsed := state.GuessesUsed()
	h.metrics.RecordCompletion(ctx, won, guessesUsed)

	if !slot.IsDaily() {
		score, err := entities.NewGuessScore(guessesUsed, entities.MaxGuesses)
		if err != nil {
			return err
		}
		completion, err := entities.NewArchiveCompletion(discordID, guildID, sc.puzzleDate, score, won, sc.now)
		if err != nil {
			return err
		}
		return uow.ArchiveCompletionRepository().Create(ctx, completion)
	}

	stats, err := uow.StatsRepository().Get(ctx, discordID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &entities.PlayerStats{DiscordID: discordID, GuildID: guildID}
	}
	if err := services.RecordResult(stats, won, guessesUsed, sc.puzzleDate); err != nil {
		return err
	}
	if err := uow.StatsRepository().Save(ctx, stats); err != nil {
		return err
	}

	entry, err := entities.NewLeaderboardEntry(discordID, guildID, sc.puzzleDate, guessesUsed, won, sc.now)
	if err != nil {
		return err
	}
	if err := uow.LeaderboardRepository().Create(ctx, entry); err != nil {
		return err
	}
	h.metrics.RecordSubmission(ctx)

	if err := uow.EventBus().Publish(domainevents.PuzzleCompletedEvent{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  sc.puzzleDate,
		PuzzleIndex: sc.dayIndex,
		GuessesUsed: guessesUsed,
		Won:         won,
	}); err != nil {
		return err
	}
	return uow.EventBus().Publish(domainevents.ResultSubmittedEvent{
		DiscordID:   discordID,
		GuildID:     guildID,
		PuzzleDate:  sc.puzzleDate,
		GuessesUsed: guessesUsed,
		Won:         won,
	})
}

func (h *guessHandler) GetBoard(ctx context.Context, guildID, discordID int64, slot entities.SlotKey) (*dto.BoardDTO, error) {
	uow := h.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	sc, err := h.resolveSlot(ctx, uow, guildID, slot)
	if err != nil {
		return nil, err
	}

	state, err := uow.GameStateRepository().Get(ctx, discordID, slot)
	if err != nil {
		return nil, err
	}
	if state != nil && state.PuzzleIndex != sc.dayIndex {
		state = nil
	}

	return &dto.BoardDTO{
		Puzzle:       sc.puzzle,
		State:        state,
		PuzzleDate:   sc.puzzleDate,
		PuzzleNumber: sc.puzzleNumber(),
		NextPuzzleIn: services.TimeUntilNextPuzzle(sc.now),
	}, nil
}
