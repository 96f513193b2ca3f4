package events

import "time"

// EventType represents different types of events in the system
type EventType string

const (
	EventTypePuzzleCompleted EventType = "puzzle_completed"
	EventTypeResultSubmitted EventType = "result_submitted"
	EventTypePuzzleRollover  EventType = "puzzle_rollover"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// PuzzleCompletedEvent fires when a daily-slot game reaches a terminal state
type PuzzleCompletedEvent struct {
	DiscordID   int64     `json:"discord_id"`
	GuildID     int64     `json:"guild_id"`
	PuzzleDate  time.Time `json:"puzzle_date"`
	PuzzleIndex int       `json:"puzzle_index"`
	GuessesUsed int       `json:"guesses_used"`
	Won         bool      `json:"won"`
}

func (e PuzzleCompletedEvent) Type() EventType {
	return EventTypePuzzleCompleted
}

// ResultSubmittedEvent fires when a result lands on the leaderboard
type ResultSubmittedEvent struct {
	DiscordID   int64     `json:"discord_id"`
	GuildID     int64     `json:"guild_id"`
	PuzzleDate  time.Time `json:"puzzle_date"`
	GuessesUsed int       `json:"guesses_used"`
	Won         bool      `json:"won"`
}

func (e ResultSubmittedEvent) Type() EventType {
	return EventTypeResultSubmitted
}

// PuzzleRolloverEvent fires when a new daily puzzle becomes active
type PuzzleRolloverEvent struct {
	PuzzleDate  time.Time `json:"puzzle_date"`
	PuzzleIndex int       `json:"puzzle_index"`
}

func (e PuzzleRolloverEvent) Type() EventType {
	return EventTypePuzzleRollover
}
