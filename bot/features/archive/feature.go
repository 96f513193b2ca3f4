package archive

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"stumped/application"
	"stumped/bot/common"
	"stumped/domain/entities"
	"stumped/domain/interfaces"
	"stumped/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /archive command: browsing and replaying past puzzles.
// Archive games never touch stats, streaks or the leaderboard.
type Feature struct {
	session      *discordgo.Session
	uowFactory   application.UnitOfWorkFactory
	guessHandler application.GuessHandler
	clock        interfaces.Clock
	epoch        time.Time
}

// NewFeature creates a new archive feature instance
func NewFeature(
	session *discordgo.Session,
	uowFactory application.UnitOfWorkFactory,
	guessHandler application.GuessHandler,
	clock interfaces.Clock,
	epoch time.Time,
) *Feature {
	return &Feature{
		session:      session,
		uowFactory:   uowFactory,
		guessHandler: guessHandler,
		clock:        clock,
		epoch:        epoch,
	}
}

// HandleCommand routes archive subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: list or play")
		return
	}

	switch options[0].Name {
	case "list":
		f.handleList(s, i)
	case "play":
		f.handlePlay(s, i, options[0].Options)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}

// handleList shows the most recent past puzzles with the player's completions
func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	settings, err := uow.GuildSettingsRepository().GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Error loading guild settings: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	now := services.NewOffsetClock(f.clock, settings.DebugDayOffset).Now()
	today := services.UTCMidnight(now)

	entries := services.ArchiveDates(f.epoch, today)
	if len(entries) == 0 {
		respondEphemeral(s, i, "The archive is empty - come back after the first daily puzzle rolls over.")
		return
	}
	if len(entries) > common.MaxArchiveListed {
		entries = entries[:common.MaxArchiveListed]
	}

	completions, err := uow.ArchiveCompletionRepository().ListByPlayer(ctx, discordID, len(entries))
	if err != nil {
		log.Errorf("Error listing archive completions: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	completedBy := make(map[string]*entities.ArchiveCompletion, len(completions))
	for _, c := range completions {
		completedBy[services.DateKey(c.PuzzleDate)] = c
	}

	var sb strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("`#%d` %s", e.PuzzleNumber, common.FormatPuzzleDate(e.Date))
		if c, ok := completedBy[services.DateKey(e.Date)]; ok {
			if c.Won {
				line += fmt.Sprintf(" - ✅ %d/%d", c.Score.Guesses, c.Score.MaxGuesses)
			} else {
				line += " - ❌"
			}
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🗄️ Puzzle archive",
		Description: sb.String(),
		Color:       common.ColorPrimary,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Replay with /archive play, guess with /guess and the date option",
		},
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Error responding to archive list: %v", err)
	}
}

// handlePlay opens the board of one past puzzle
func (f *Feature) handlePlay(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	discordID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var dateStr string
	for _, opt := range options {
		if opt.Name == "date" {
			dateStr = opt.StringValue()
		}
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		common.RespondWithError(s, i, "Invalid date. Use the format YYYY-MM-DD.")
		return
	}

	board, err := f.guessHandler.GetBoard(ctx, guildID, discordID, entities.ArchiveSlot(date))
	if err != nil {
		if errors.Is(err, application.ErrFutureArchiveDate) {
			common.RespondWithError(s, i, "That puzzle has not been released yet. Only past dates are in the archive.")
			return
		}
		log.Errorf("Error loading archive board: %v", err)
		common.RespondWithError(s, i, "Unable to load that puzzle. Please try again.")
		return
	}

	used := 0
	if board.State != nil {
		used = board.State.GuessesUsed()
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🗄️ Stumped #%d - %s", board.PuzzleNumber, common.FormatPuzzleDate(board.PuzzleDate)),
		Description: fmt.Sprintf("**%s**\n📍 %s\n```\n%s\n```",
			board.Puzzle.MatchContext, board.Puzzle.Venue, board.Puzzle.Scorecard),
		Color: common.ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   common.FormatGuessesRemaining(used),
				Value:  fmt.Sprintf("Guess with `/guess` and `date:%s`. Archive games never affect your streak.", dateStr),
				Inline: false,
			},
		},
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Error responding to archive play: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}
