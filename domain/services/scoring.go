package services

import (
	"stumped/domain/entities"
)

// ScoreGuess computes the feedback for one guess. Pure: exact equality on
// every attribute, no partial credit, and identical output for identical
// inputs wherever it runs, so the remote authority and the local fallback
// are indistinguishable to consumers.
func ScoreGuess(candidate *entities.Player, puzzle *entities.Puzzle) entities.GuessFeedback {
	isTarget := candidate.ID == puzzle.TargetID
	return entities.GuessFeedback{
		CandidateID:   candidate.ID,
		PlayedInMatch: isTarget || puzzle.HasParticipant(candidate.ID),
		SameTeam:      candidate.Team == puzzle.TargetTeam,
		SameRole:      candidate.Role == puzzle.TargetRole,
		IsTarget:      isTarget,
	}
}
