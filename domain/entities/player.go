package entities

// PlayerRole classifies a cricketer's primary role
type PlayerRole string

const (
	RoleBatter       PlayerRole = "batter"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all_rounder"
	RoleWicketKeeper PlayerRole = "wicket_keeper"
)

// Player represents a guessable cricketer from the candidate pool
type Player struct {
	ID   string // canonical slug, e.g. "kohli"
	Name string
	Team string
	Role PlayerRole
}
