package entities

import "errors"

var (
	// ErrCatalogEmpty means there is no playable content at all. Fatal to
	// gameplay; it propagates all the way up.
	ErrCatalogEmpty = errors.New("puzzle catalog is empty")

	// ErrUnknownCandidate rejects a guess for a player ID not in the pool.
	// The attempt is not consumed.
	ErrUnknownCandidate = errors.New("unknown candidate")

	// ErrDuplicateGuess rejects a candidate already attempted in this slot
	ErrDuplicateGuess = errors.New("candidate already guessed")

	// ErrDuplicateSubmission means a leaderboard entry already exists for
	// this player and puzzle date. The existing entry stands untouched.
	ErrDuplicateSubmission = errors.New("result already submitted for this puzzle date")

	// ErrValidationUnavailable means the remote scoring authority could not
	// be reached. Callers fall back to local scoring; this never reaches
	// the player.
	ErrValidationUnavailable = errors.New("remote validation unavailable")
)
