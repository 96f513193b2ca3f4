package services

import (
	"fmt"

	"stumped/domain/entities"
)

// GuessOutcome is the result of advancing a game state by one scored guess
type GuessOutcome struct {
	State           *entities.GameState
	Feedback        *entities.GuessFeedback
	AlreadyTerminal bool // the slot was finished before this submission; nothing changed
}

// AdvanceGame applies one scored guess to a game state, in place.
//
// The transition order is load-bearing: the win check runs before the
// exhaustion check, so a correct guess on the final allowed attempt is a
// win, not a loss. Submitting to a terminal slot is an idempotent no-op,
// which protects against retried network calls and double-clicked buttons.
func AdvanceGame(state *entities.GameState, feedback entities.GuessFeedback) (GuessOutcome, error) {
	if state.IsTerminal() {
		return GuessOutcome{State: state, AlreadyTerminal: true}, nil
	}
	if state.HasGuessed(feedback.CandidateID) {
		return GuessOutcome{}, entities.ErrDuplicateGuess
	}
	if len(state.Attempts) >= entities.MaxGuesses {
		return GuessOutcome{}, fmt.Errorf("attempts overflow: %d attempts with status %s", len(state.Attempts), state.Status)
	}

	state.Attempts = append(state.Attempts, feedback.CandidateID)

	switch {
	case feedback.IsTarget:
		state.Status = entities.GameStatusWon
	case len(state.Attempts) == entities.MaxGuesses:
		state.Status = entities.GameStatusLost
	default:
		state.Status = entities.GameStatusInProgress
	}

	return GuessOutcome{State: state, Feedback: &feedback}, nil
}
