package infrastructure

import (
	"fmt"

	"stumped/domain/events"
)

// EventSubjectMapper handles mapping between domain events and NATS subjects
type EventSubjectMapper struct{}

// NewEventSubjectMapper creates a new event subject mapper
func NewEventSubjectMapper() *EventSubjectMapper {
	return &EventSubjectMapper{}
}

// MapEventToSubject converts a domain event to its corresponding NATS subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypePuzzleCompleted:
		return "stumped.puzzles.completed"
	case events.EventTypeResultSubmitted:
		return "stumped.leaderboard.result_submitted"
	case events.EventTypePuzzleRollover:
		return "stumped.puzzles.rollover"
	default:
		// Fallback for unknown event types
		return fmt.Sprintf("stumped.unknown.%s", event.Type())
	}
}

// MapSubjectToEventType converts a NATS subject back to an event type
func (m *EventSubjectMapper) MapSubjectToEventType(subject string) events.EventType {
	switch subject {
	case "stumped.puzzles.completed":
		return events.EventTypePuzzleCompleted
	case "stumped.leaderboard.result_submitted":
		return events.EventTypeResultSubmitted
	case "stumped.puzzles.rollover":
		return events.EventTypePuzzleRollover
	default:
		return events.EventType(subject)
	}
}

// GetAllSubjects returns all subjects that this service publishes to
func (m *EventSubjectMapper) GetAllSubjects() []string {
	return []string{
		"stumped.puzzles.completed",
		"stumped.leaderboard.result_submitted",
		"stumped.puzzles.rollover",
	}
}
