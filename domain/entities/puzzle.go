package entities

// Puzzle is one entry of the ordered daily catalog. Puzzles are generated
// ahead of time and never mutated at runtime; the running system only
// selects them by index.
type Puzzle struct {
	ID           int64
	PuzzleIndex  int // position in the catalog, 0-based
	MatchContext string
	Venue        string
	Scorecard    string
	TargetID     string // the hidden Man of the Match
	TargetTeam   string
	TargetRole   PlayerRole
	Participants []string // player IDs known to have played in the match
}

// HasParticipant reports whether the given player ID took part in the match
func (p *Puzzle) HasParticipant(playerID string) bool {
	for _, id := range p.Participants {
		if id == playerID {
			return true
		}
	}
	return false
}
