package interfaces

import (
	"context"
	"time"

	"stumped/domain/entities"
	"stumped/domain/events"
)

// Clock supplies "now". The production clock reads real time in UTC; an
// offset clock layers the persisted debug day offset on top so every date
// computation sees the same shifted time.
type Clock interface {
	Now() time.Time
}

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(event events.Event) error
}

// TransactionalEventPublisher holds events until the surrounding database
// transaction resolves: Flush after commit, Discard on rollback
type TransactionalEventPublisher interface {
	EventPublisher
	Flush(ctx context.Context) error
	Discard()
}

// GuessValidator scores a guess against a puzzle. Implementations may
// delegate to a remote authority; the result carries which tier produced it
// so fallback behavior stays observable.
type GuessValidator interface {
	Validate(ctx context.Context, puzzle *entities.Puzzle, candidate *entities.Player) (ScoredGuess, error)
}

// ValidationSource identifies which tier scored a guess
type ValidationSource string

const (
	ValidationSourceRemote ValidationSource = "remote"
	ValidationSourceLocal  ValidationSource = "local"
)

// ScoredGuess pairs feedback with the tier that produced it. Remote and
// local scoring are bit-for-bit identical for the same inputs; consumers
// must not behave differently based on Source.
type ScoredGuess struct {
	Source   ValidationSource
	Feedback entities.GuessFeedback
}
