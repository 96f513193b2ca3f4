package dto

import (
	"time"

	"stumped/domain/entities"
)

// GuessResultDTO is the outcome of one guess submission as shown to the
// player
type GuessResultDTO struct {
	Puzzle          *entities.Puzzle
	State           *entities.GameState
	Feedback        *entities.GuessFeedback // nil when the slot was already finished
	AlreadyTerminal bool
	Source          string // which validation tier scored the guess
	PuzzleDate      time.Time
	PuzzleNumber    int // 1-based, for display
}

// BoardDTO is the current view of a slot without submitting anything
type BoardDTO struct {
	Puzzle       *entities.Puzzle
	State        *entities.GameState // nil when the slot is unplayed
	PuzzleDate   time.Time
	PuzzleNumber int
	NextPuzzleIn time.Duration // time until the daily slot rolls over
}
