package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Display constants
const (
	// MaxAutocompleteChoices is Discord's cap on autocomplete suggestions
	MaxAutocompleteChoices = 25

	// MaxArchiveListed bounds the /archive list output
	MaxArchiveListed = 15

	// MaxLeaderboardRows bounds leaderboard embeds
	MaxLeaderboardRows = 10
)
