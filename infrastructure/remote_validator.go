package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"

	"stumped/domain/entities"
	"stumped/domain/interfaces"
)

// validationRequest is the wire format sent to the remote scoring authority
type validationRequest struct {
	PuzzleIndex   int    `json:"puzzle_index"`
	TargetID      string `json:"target_id"`
	TargetTeam    string `json:"target_team"`
	TargetRole    string `json:"target_role"`
	CandidateID   string `json:"candidate_id"`
	CandidateTeam string `json:"candidate_team"`
	CandidateRole string `json:"candidate_role"`
	Participant   bool   `json:"participant"`
}

// validationResponse is the remote authority's verdict
type validationResponse struct {
	PlayedInMatch bool   `json:"played_in_match"`
	SameTeam      bool   `json:"same_team"`
	SameRole      bool   `json:"same_role"`
	IsTarget      bool   `json:"is_target"`
	Error         string `json:"error,omitempty"`
}

// RemoteValidator scores guesses over NATS request/reply. Unreachable or
// slow responders surface as ErrValidationUnavailable for the caller's
// fallback tier.
type RemoteValidator struct {
	natsClient *NATSClient
	subject    string
}

// NewRemoteValidator creates a validator backed by the remote scoring service
func NewRemoteValidator(natsClient *NATSClient, subject string) *RemoteValidator {
	return &RemoteValidator{
		natsClient: natsClient,
		subject:    subject,
	}
}

// Validate asks the remote authority to score one guess
func (v *RemoteValidator) Validate(ctx context.Context, puzzle *entities.Puzzle, candidate *entities.Player) (interfaces.ScoredGuess, error) {
	request := validationRequest{
		PuzzleIndex:   puzzle.PuzzleIndex,
		TargetID:      puzzle.TargetID,
		TargetTeam:    puzzle.TargetTeam,
		TargetRole:    string(puzzle.TargetRole),
		CandidateID:   candidate.ID,
		CandidateTeam: candidate.Team,
		CandidateRole: string(candidate.Role),
		Participant:   puzzle.HasParticipant(candidate.ID),
	}

	data, err := json.Marshal(request)
	if err != nil {
		return interfaces.ScoredGuess{}, fmt.Errorf("failed to marshal validation request: %w", err)
	}

	replyData, err := v.natsClient.Request(ctx, v.subject, data)
	if err != nil {
		return interfaces.ScoredGuess{}, err
	}

	var reply validationResponse
	if err := json.Unmarshal(replyData, &reply); err != nil {
		return interfaces.ScoredGuess{}, fmt.Errorf("%w: undecodable reply: %v", entities.ErrValidationUnavailable, err)
	}
	if reply.Error != "" {
		return interfaces.ScoredGuess{}, fmt.Errorf("%w: %s", entities.ErrValidationUnavailable, reply.Error)
	}

	return interfaces.ScoredGuess{
		Source: interfaces.ValidationSourceRemote,
		Feedback: entities.GuessFeedback{
			CandidateID:   candidate.ID,
			PlayedInMatch: reply.PlayedInMatch,
			SameTeam:      reply.SameTeam,
			SameRole:      reply.SameRole,
			IsTarget:      reply.IsTarget,
		},
	}, nil
}
