package play

import (
	"fmt"
	"strings"

	"stumped/application/dto"
	"stumped/bot/common"
	"stumped/domain/entities"
	"stumped/domain/services"

	"github.com/bwmarrin/discordgo"
)

// localFeedback re-scores a stored attempt with the local engine. Remote and
// local scoring agree bit-for-bit, so redisplay never needs the remote tier.
func localFeedback(candidate *entities.Player, puzzle *entities.Puzzle) entities.GuessFeedback {
	return services.ScoreGuess(candidate, puzzle)
}

// puzzleClues renders the visible half of a puzzle: everything except the
// target's identity
func puzzleClues(p *entities.Puzzle) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("**%s**\n", p.MatchContext))
	if p.Venue != "" {
		sb.WriteString(fmt.Sprintf("📍 %s\n", p.Venue))
	}
	if p.Scorecard != "" {
		sb.WriteString(fmt.Sprintf("```\n%s\n```", p.Scorecard))
	}
	return sb.String()
}

func buildResultEmbed(result *dto.GuessResultDTO, view *boardView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏏 Stumped #%d - %s", result.PuzzleNumber, common.FormatPuzzleDate(result.PuzzleDate)),
		Color: common.ColorInfo,
	}

	if result.AlreadyTerminal {
		embed.Description = "This puzzle is already finished. Your result stands."
	}

	var fields []*discordgo.MessageEmbedField
	if len(view.rows) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Guesses",
			Value:  strings.Join(view.rows, "\n"),
			Inline: false,
		})
	}

	switch result.State.Status {
	case entities.GameStatusWon:
		embed.Color = common.ColorSuccess
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🏆 Got it!",
			Value:  fmt.Sprintf("**%s** was the Man of the Match.", view.targetName),
			Inline: false,
		})
		fields = append(fields, shareField(result, view))
	case entities.GameStatusLost:
		embed.Color = common.ColorDanger
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "😔 Stumped",
			Value:  fmt.Sprintf("Out of guesses. The Man of the Match was **%s**.", view.targetName),
			Inline: false,
		})
		fields = append(fields, shareField(result, view))
	default:
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   common.FormatGuessesRemaining(result.State.GuessesUsed()),
			Value:  common.FormatFeedbackLegend(),
			Inline: false,
		})
	}

	embed.Fields = fields
	return embed
}

// shareField carries the spoiler-free grid players paste into chat
func shareField(result *dto.GuessResultDTO, view *boardView) *discordgo.MessageEmbedField {
	won := result.State.Status == entities.GameStatusWon
	grid := common.FormatResultGrid(result.PuzzleNumber, view.feedbacks, won)
	return &discordgo.MessageEmbedField{
		Name:   "Share",
		Value:  fmt.Sprintf("```\n%s\n```", grid),
		Inline: false,
	}
}

func buildBoardEmbed(board *dto.BoardDTO, view *boardView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏏 Stumped #%d - %s", board.PuzzleNumber, common.FormatPuzzleDate(board.PuzzleDate)),
		Description: puzzleClues(board.Puzzle),
		Color:       common.ColorPrimary,
	}

	var fields []*discordgo.MessageEmbedField
	if len(view.rows) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Guesses",
			Value:  strings.Join(view.rows, "\n"),
			Inline: false,
		})
	}

	used := 0
	if board.State != nil {
		used = board.State.GuessesUsed()
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:   common.FormatGuessesRemaining(used),
		Value:  common.FormatFeedbackLegend(),
		Inline: false,
	})

	embed.Fields = fields
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Next puzzle in %s", common.FormatDuration(board.NextPuzzleIn)),
	}
	return embed
}
