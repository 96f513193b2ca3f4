package application

import (
	"context"
	"time"

	"stumped/domain/entities"
	"stumped/domain/interfaces"
	"stumped/domain/services"

	log "github.com/sirupsen/logrus"
)

// twoTierValidator asks the remote scoring authority first and falls back
// to local scoring when it cannot answer in time. Both tiers compute the
// same feedback for the same inputs, so the fallback is invisible to the
// player.
type twoTierValidator struct {
	remote  interfaces.GuessValidator // nil disables the remote tier
	timeout time.Duration
}

// NewTwoTierValidator creates a validator with a remote tier and a local
// fallback. Pass a nil remote to score everything locally.
func NewTwoTierValidator(remote interfaces.GuessValidator, timeout time.Duration) interfaces.GuessValidator {
	return &twoTierValidator{
		remote:  remote,
		timeout: timeout,
	}
}

func (v *twoTierValidator) Validate(ctx context.Context, puzzle *entities.Puzzle, candidate *entities.Player) (interfaces.ScoredGuess, error) {
	if v.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, v.timeout)
		scored, err := v.remote.Validate(remoteCtx, puzzle, candidate)
		cancel()
		if err == nil {
			return scored, nil
		}
		log.WithError(err).WithFields(log.Fields{
			"candidate":    candidate.ID,
			"puzzle_index": puzzle.PuzzleIndex,
		}).Warn("Remote validation unavailable, scoring locally")
	}

	return interfaces.ScoredGuess{
		Source:   interfaces.ValidationSourceLocal,
		Feedback: services.ScoreGuess(candidate, puzzle),
	}, nil
}
