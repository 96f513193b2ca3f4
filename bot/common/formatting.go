package common

import (
	"fmt"
	"strings"
	"time"

	"stumped/domain/entities"
)

// FormatFeedbackSquares renders one guess's categorical feedback as a row of
// squares in fixed order: played in match, same team, same role. The target
// renders as a trophy instead.
func FormatFeedbackSquares(fb entities.GuessFeedback) string {
	if fb.IsTarget {
		return "🏆🏆🏆"
	}
	squares := []bool{fb.PlayedInMatch, fb.SameTeam, fb.SameRole}
	var sb strings.Builder
	for _, hit := range squares {
		if hit {
			sb.WriteString("🟩")
		} else {
			sb.WriteString("⬛")
		}
	}
	return sb.String()
}

// FormatGuessRow renders one attempt line for the board embed
func FormatGuessRow(attemptNo int, name string, fb entities.GuessFeedback) string {
	return fmt.Sprintf("`%d.` %s  **%s**", attemptNo, FormatFeedbackSquares(fb), name)
}

// FormatFeedbackLegend explains the square columns
func FormatFeedbackLegend() string {
	return "Columns: played in match · same team · same role"
}

// FormatResultGrid renders the spoiler-free shareable grid for a finished
// game, one row per attempt
func FormatResultGrid(puzzleNumber int, feedbacks []entities.GuessFeedback, won bool) string {
	var sb strings.Builder
	score := "X"
	if won {
		score = fmt.Sprintf("%d", len(feedbacks))
	}
	sb.WriteString(fmt.Sprintf("Stumped #%d %s/%d\n", puzzleNumber, score, entities.MaxGuesses))
	for _, fb := range feedbacks {
		sb.WriteString(FormatFeedbackSquares(fb))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatGuessesRemaining renders the attempt budget line
func FormatGuessesRemaining(used int) string {
	return fmt.Sprintf("%d/%d guesses used", used, entities.MaxGuesses)
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "R" = relative time, "D" = long date
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatDuration formats a duration in a human-readable format
// Examples: "14h 30m", "45m", "< 1m"
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return "< 1m"
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

// FormatPuzzleDate renders a puzzle date for display
func FormatPuzzleDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
