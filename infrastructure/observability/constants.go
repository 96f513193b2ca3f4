package observability

// Metric name prefixes
const (
	MetricPrefix = "stumped"
)

// Metric names
const (
	// Gameplay metrics
	GuessesScoredTotal  = MetricPrefix + ".guesses.scored_total"
	GamesCompletedTotal = MetricPrefix + ".games.completed_total"
	SubmissionsTotal    = MetricPrefix + ".leaderboard.submissions_total"

	// NATS metrics
	NATSMessagesPublishedTotal = MetricPrefix + ".nats.messages_published_total"
)

// Label keys
const (
	LabelSource    = "source"
	LabelOutcome   = "outcome"
	LabelGuesses   = "guesses"
	LabelEventType = "event_type"
)

// Outcome label values
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)
