package entities

// GuessFeedback is the categorical result of scoring one guess against a
// puzzle's hidden target. It is derived data: one immutable record per
// attempt. The target trivially matches itself on every attribute, so
// IsTarget implies all other fields are true.
type GuessFeedback struct {
	CandidateID   string `json:"candidate_id"`
	PlayedInMatch bool   `json:"played_in_match"`
	SameTeam      bool   `json:"same_team"`
	SameRole      bool   `json:"same_role"`
	IsTarget      bool   `json:"is_target"`
}
