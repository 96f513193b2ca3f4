package services

import (
	"testing"

	"stumped/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, attempts ...string) *entities.GameState {
	t.Helper()
	state, err := entities.NewGameState(100, 200, entities.DailySlot(), 0)
	require.NoError(t, err)
	state.Attempts = attempts
	return state
}

func miss(candidateID string) entities.GuessFeedback {
	return entities.GuessFeedback{CandidateID: candidateID}
}

func hit(candidateID string) entities.GuessFeedback {
	return entities.GuessFeedback{
		CandidateID: candidateID, PlayedInMatch: true, SameTeam: true, SameRole: true, IsTarget: true,
	}
}

func TestAdvanceGame_WinOnFirstTry(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	outcome, err := AdvanceGame(state, hit("kohli"))

	require.NoError(t, err)
	assert.False(t, outcome.AlreadyTerminal)
	assert.Equal(t, entities.GameStatusWon, state.Status)
	assert.Equal(t, []string{"kohli"}, state.Attempts)
	assert.True(t, outcome.Feedback.IsTarget)
}

func TestAdvanceGame_WinOnLastAttempt(t *testing.T) {
	t.Parallel()

	// Correct guess on the final allowed attempt is a win, not a loss: the
	// win check runs before the exhaustion check.
	state := newTestState(t, "a", "b", "c", "d")
	outcome, err := AdvanceGame(state, hit("kohli"))

	require.NoError(t, err)
	assert.Equal(t, entities.GameStatusWon, state.Status)
	assert.Equal(t, entities.MaxGuesses, state.GuessesUsed())
	assert.False(t, outcome.AlreadyTerminal)
}

func TestAdvanceGame_LossOnExhaustion(t *testing.T) {
	t.Parallel()

	state := newTestState(t, "a", "b", "c", "d")
	outcome, err := AdvanceGame(state, miss("e"))

	require.NoError(t, err)
	assert.Equal(t, entities.GameStatusLost, state.Status)
	assert.Equal(t, entities.MaxGuesses, state.GuessesUsed())
	assert.True(t, state.IsTerminal())
	assert.False(t, outcome.AlreadyTerminal)
}

func TestAdvanceGame_StaysInProgress(t *testing.T) {
	t.Parallel()

	state := newTestState(t, "a")
	_, err := AdvanceGame(state, miss("b"))

	require.NoError(t, err)
	assert.Equal(t, entities.GameStatusInProgress, state.Status)
	assert.Equal(t, 2, state.GuessesUsed())
	assert.Equal(t, 3, state.GuessesRemaining())
}

func TestAdvanceGame_TerminalIsIdempotent(t *testing.T) {
	t.Parallel()

	state := newTestState(t, "a", "kohli")
	state.Status = entities.GameStatusWon

	// A retried submission after the game is decided is a no-op, not an
	// error.
	outcome, err := AdvanceGame(state, miss("b"))

	require.NoError(t, err)
	assert.True(t, outcome.AlreadyTerminal)
	assert.Nil(t, outcome.Feedback)
	assert.Equal(t, entities.GameStatusWon, state.Status)
	assert.Equal(t, []string{"a", "kohli"}, state.Attempts)
}

func TestAdvanceGame_DuplicateGuessRejected(t *testing.T) {
	t.Parallel()

	state := newTestState(t, "rohit")
	_, err := AdvanceGame(state, miss("rohit"))

	assert.ErrorIs(t, err, entities.ErrDuplicateGuess)
	// The rejected guess must not consume an attempt.
	assert.Equal(t, 1, state.GuessesUsed())
	assert.Equal(t, entities.GameStatusInProgress, state.Status)
}

func TestAdvanceGame_FullGameToLoss(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	guesses := []string{"rohit", "bumrah", "starc", "smith", "root"}
	for i, g := range guesses {
		outcome, err := AdvanceGame(state, miss(g))
		require.NoError(t, err)
		if i < len(guesses)-1 {
			assert.Equal(t, entities.GameStatusInProgress, outcome.State.Status, "guess %d", i+1)
		}
	}
	assert.Equal(t, entities.GameStatusLost, state.Status)
	assert.Equal(t, guesses, state.Attempts)
}
