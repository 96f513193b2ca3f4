package play

import (
	"context"
	"errors"
	"strconv"
	"time"

	"stumped/application"
	"stumped/bot/common"
	"stumped/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /guess and /board commands
type Feature struct {
	session      *discordgo.Session
	uowFactory   application.UnitOfWorkFactory
	guessHandler application.GuessHandler
}

// NewFeature creates a new play feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, guessHandler application.GuessHandler) *Feature {
	return &Feature{
		session:      session,
		uowFactory:   uowFactory,
		guessHandler: guessHandler,
	}
}

// HandleGuessCommand handles the /guess command
func (f *Feature) HandleGuessCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Failed to parse interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var candidateID string
	slot := entities.DailySlot()
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "player":
			candidateID = opt.StringValue()
		case "date":
			date, err := time.ParseInLocation("2006-01-02", opt.StringValue(), time.UTC)
			if err != nil {
				common.RespondWithError(s, i, "Invalid date. Use the format YYYY-MM-DD.")
				return
			}
			slot = entities.ArchiveSlot(date)
		}
	}
	if candidateID == "" {
		common.RespondWithError(s, i, "Please pick a player to guess.")
		return
	}

	result, err := f.guessHandler.HandleGuess(ctx, guildID, discordID, slot, candidateID)
	if err != nil {
		f.respondGuessError(s, i, err)
		return
	}

	view, err := f.resolveBoardView(ctx, guildID, result.Puzzle, result.State)
	if err != nil {
		log.Errorf("Failed to resolve board view: %v", err)
		common.RespondWithError(s, i, "Unable to render the board. Please try again.")
		return
	}

	embed := buildResultEmbed(result, view)
	respondEmbed(s, i, embed, true)
}

// HandleBoardCommand handles the /board command
func (f *Feature) HandleBoardCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, discordID, err := parseIDs(i)
	if err != nil {
		log.Errorf("Failed to parse interaction IDs: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	slot := entities.DailySlot()
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "date" {
			date, err := time.ParseInLocation("2006-01-02", opt.StringValue(), time.UTC)
			if err != nil {
				common.RespondWithError(s, i, "Invalid date. Use the format YYYY-MM-DD.")
				return
			}
			slot = entities.ArchiveSlot(date)
		}
	}

	board, err := f.guessHandler.GetBoard(ctx, guildID, discordID, slot)
	if err != nil {
		f.respondGuessError(s, i, err)
		return
	}

	view, err := f.resolveBoardView(ctx, guildID, board.Puzzle, board.State)
	if err != nil {
		log.Errorf("Failed to resolve board view: %v", err)
		common.RespondWithError(s, i, "Unable to render the board. Please try again.")
		return
	}

	embed := buildBoardEmbed(board, view)
	respondEmbed(s, i, embed, true)
}

// HandleAutocomplete suggests candidate players for the focused guess option
func (f *Feature) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, _, err := parseIDs(i)
	if err != nil {
		return
	}

	var prefix string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "player" && opt.Focused {
			prefix = opt.StringValue()
		}
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction for autocomplete: %v", err)
		return
	}
	defer uow.Rollback()

	players, err := uow.PlayerRepository().Search(ctx, prefix, common.MaxAutocompleteChoices)
	if err != nil {
		log.Errorf("Error searching candidates for autocomplete: %v", err)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(players))
	for _, p := range players {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  p.Name + " (" + p.Team + ")",
			Value: p.ID,
		})
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		log.Errorf("Error responding to autocomplete: %v", err)
	}
}

// boardView is everything the embeds need beyond the DTO: attempt rows with
// re-derived feedback, and the revealed target name for terminal games.
// Feedback is derived data, so the board is reconstructed from attempt IDs
// alone.
type boardView struct {
	rows       []string
	feedbacks  []entities.GuessFeedback
	targetName string
}

func (f *Feature) resolveBoardView(ctx context.Context, guildID int64, puzzle *entities.Puzzle, state *entities.GameState) (*boardView, error) {
	view := &boardView{targetName: puzzle.TargetID}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if target, err := uow.PlayerRepository().GetByID(ctx, puzzle.TargetID); err == nil && target != nil {
		view.targetName = target.Name
	}

	if state == nil {
		return view, nil
	}
	for n, id := range state.Attempts {
		candidate, err := uow.PlayerRepository().GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		name := id
		var fb entities.GuessFeedback
		if candidate != nil {
			name = candidate.Name
			fb = localFeedback(candidate, puzzle)
		}
		view.rows = append(view.rows, common.FormatGuessRow(n+1, name, fb))
		view.feedbacks = append(view.feedbacks, fb)
	}
	return view, nil
}

func (f *Feature) respondGuessError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	switch {
	case errors.Is(err, entities.ErrDuplicateGuess):
		common.RespondWithError(s, i, "You already guessed that player. Attempts are only consumed by new guesses.")
	case errors.Is(err, entities.ErrUnknownCandidate):
		common.RespondWithError(s, i, "That player is not in the candidate pool. Pick one from the suggestions.")
	case errors.Is(err, application.ErrFutureArchiveDate):
		common.RespondWithError(s, i, "That puzzle has not been released yet. Only past dates are in the archive.")
	case errors.Is(err, entities.ErrCatalogEmpty):
		log.Error("Puzzle catalog is empty")
		common.RespondWithError(s, i, "No puzzles are available right now. Please try again later.")
	default:
		log.Errorf("Error handling guess: %v", err)
		common.RespondWithError(s, i, "Unable to process your guess. Please try again.")
	}
}

func parseIDs(i *discordgo.InteractionCreate) (guildID, discordID int64, err error) {
	guildID, err = strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	discordID, err = strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return guildID, discordID, nil
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}
