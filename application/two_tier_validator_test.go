package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"stumped/domain/entities"
	"stumped/domain/interfaces"
	"stumped/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRemoteValidator scripts the remote tier's answer
type stubRemoteValidator struct {
	scored interfaces.ScoredGuess
	err    error
	calls  int
}

func (s *stubRemoteValidator) Validate(ctx context.Context, puzzle *entities.Puzzle, candidate *entities.Player) (interfaces.ScoredGuess, error) {
	s.calls++
	return s.scored, s.err
}

func validatorFixture() (*entities.Puzzle, *entities.Player) {
	puzzle := &entities.Puzzle{
		PuzzleIndex:  2,
		TargetID:     "head",
		TargetTeam:   "Australia",
		TargetRole:   entities.RoleBatter,
		Participants: []string{"head", "starc"},
	}
	candidate := &entities.Player{ID: "starc", Name: "Mitchell Starc", Team: "Australia", Role: entities.RoleBowler}
	return puzzle, candidate
}

func TestTwoTierValidator_RemoteAnswerWins(t *testing.T) {
	t.Parallel()

	puzzle, candidate := validatorFixture()
	remote := &stubRemoteValidator{
		scored: interfaces.ScoredGuess{
			Source:   interfaces.ValidationSourceRemote,
			Feedback: services.ScoreGuess(candidate, puzzle),
		},
	}
	validator := NewTwoTierValidator(remote, time.Second)

	scored, err := validator.Validate(context.Background(), puzzle, candidate)
	require.NoError(t, err)

	assert.Equal(t, interfaces.ValidationSourceRemote, scored.Source)
	assert.Equal(t, 1, remote.calls)
	assert.True(t, scored.Feedback.PlayedInMatch)
	assert.True(t, scored.Feedback.SameTeam)
	assert.False(t, scored.Feedback.SameRole)
}

func TestTwoTierValidator_FallsBackToLocalOnRemoteError(t *testing.T) {
	t.Parallel()

	puzzle, candidate := validatorFixture()
	remote := &stubRemoteValidator{err: errors.New("nats: timeout")}
	validator := NewTwoTierValidator(remote, 50*time.Millisecond)

	scored, err := validator.Validate(context.Background(), puzzle, candidate)
	require.NoError(t, err, "remote failure must not surface to the player")

	assert.Equal(t, interfaces.ValidationSourceLocal, scored.Source)
	assert.Equal(t, 1, remote.calls)
	// Local scoring produces the identical feedback
	assert.Equal(t, services.ScoreGuess(candidate, puzzle), scored.Feedback)
}

func TestTwoTierValidator_NilRemoteScoresLocally(t *testing.T) {
	t.Parallel()

	puzzle, candidate := validatorFixture()
	validator := NewTwoTierValidator(nil, time.Second)

	scored, err := validator.Validate(context.Background(), puzzle, candidate)
	require.NoError(t, err)

	assert.Equal(t, interfaces.ValidationSourceLocal, scored.Source)
	assert.Equal(t, "starc", scored.Feedback.CandidateID)
}
