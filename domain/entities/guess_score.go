package entities

import (
	"fmt"
)

// GuessScore represents a value object for a completed puzzle's score
type GuessScore struct {
	Guesses    int
	MaxGuesses int
}

// NewGuessScore creates a new GuessScore with validation
func NewGuessScore(guesses, maxGuesses int) (GuessScore, error) {
	if maxGuesses < 1 || maxGuesses > MaxGuesses {
		return GuessScore{}, fmt.Errorf("maxGuesses must be between 1 and %d, got %d", MaxGuesses, maxGuesses)
	}
	if guesses < 1 || guesses > maxGuesses {
		return GuessScore{}, fmt.Errorf("guesses must be between 1 and %d, got %d", maxGuesses, guesses)
	}

	return GuessScore{
		Guesses:    guesses,
		MaxGuesses: maxGuesses,
	}, nil
}

// IsPerfect returns true if the puzzle was solved in one guess
func (gs GuessScore) IsPerfect() bool {
	return gs.Guesses == 1
}
