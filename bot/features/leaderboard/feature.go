package leaderboard

import (
	"context"
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

// Feature handles the /leaderboard command
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	clock      interfaces.Clock
}

// NewFeature creates a new leaderboard feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory, clock interfaces.Clock) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// HandleCommand routes leaderboard subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please specify a subcommand: today, alltime or rank")
		return
	}

	switch options[0].Name {
	case "today":
		f.handleToday(s, i)
	case "alltime":
		f.handleAllTime(s, i)
	case "rank":
		f.handleRank(s, i)
	default:
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}

// effectiveToday resolves today's puzzle date under the guild's debug offset
func (f *Feature) effectiveToday(ctx context.Context, uow application.UnitOfWork, guildID int64) (time.Time, error) {
	settings, err := uow.GuildSettingsRepository().GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		return time.Time{}, err
	}
	now := services.NewOffsetClock(f.clock, settings.DebugDayOffset).Now()
	return services.UTCMidnight(now), nil
}

// handleToday shows the ranked submissions for today's puzzle
func (f *Feature) handleToday(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
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

	today, err := f.effectiveToday(ctx, uow, guildID)
	if err != nil {
		log.Errorf("Error resolving puzzle date: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	entries, err := uow.LeaderboardRepository().GetByDate(ctx, today)
	if err != nil {
		log.Errorf("Error loading leaderboard entries: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}

	ranked := services.RankEntries(entries)
	if len(ranked) > common.MaxLeaderboardRows {
		ranked = ranked[:common.MaxLeaderboardRows]
	}

	var sb strings.Builder
	for n, e := range ranked {
		name := common.GetDisplayNameInt64(s, i.GuildID, e.DiscordID)
		sb.WriteString(fmt.Sprintf("%s **%s** - %d/%d  %s\n",
			rankBadge(n+1), name, e.GuessesUsed, entities.MaxGuesses,
			common.FormatDiscordTimestamp(e.SubmittedAt, "t")))
	}
	if sb.Len() == 0 {
		sb.WriteString("Nobody has solved today's puzzle yet.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Today's leaderboard - %s", common.FormatPuzzleDate(today)),
		Description: sb.String(),
		Color:       common.ColorWarning,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d submissions in total", len(entries)),
		},
	}

	respondEmbed(s, i, embed)
}

// handleAllTime shows per-player aggregates across every puzzle
func (f *Feature) handleAllTime(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
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

	entries, err := uow.LeaderboardRepository().GetAll(ctx)
	if err != nil {
		log.Errorf("Error loading leaderboard entries: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}

	aggregates := services.AggregateEntries(entries)
	if len(aggregates) > common.MaxLeaderboardRows {
		aggregates = aggregates[:common.MaxLeaderboardRows]
	}

	var sb strings.Builder
	for n, agg := range aggregates {
		name := common.GetDisplayNameInt64(s, i.GuildID, agg.DiscordID)
		avg := "-"
		if agg.TotalWins > 0 {
			avg = fmt.Sprintf("%.1f", agg.AverageGuesses)
		}
		sb.WriteString(fmt.Sprintf("%s **%s** - %d wins / %d played, avg %s\n",
			rankBadge(n+1), name, agg.TotalWins, agg.GamesPlayed, avg))
	}
	if sb.Len() == 0 {
		sb.WriteString("No results submitted yet.")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🏆 All-time leaderboard",
		Description: sb.String(),
		Color:       common.ColorWarning,
	}

	respondEmbed(s, i, embed)
}

// handleRank shows the caller's position and percentile for today's puzzle
func (f *Feature) handleRank(s *discordgo.Session, i *discordgo.InteractionCreate) {
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

	today, err := f.effectiveToday(ctx, uow, guildID)
	if err != nil {
		log.Errorf("Error resolving puzzle date: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	entries, err := uow.LeaderboardRepository().GetByDate(ctx, today)
	if err != nil {
		log.Errorf("Error loading leaderboard entries: %v", err)
		common.RespondWithError(s, i, "Unable to retrieve the leaderboard. Please try again.")
		return
	}

	var own *entities.LeaderboardEntry
	for _, e := range entries {
		if e.DiscordID == discordID {
			own = e
			break
		}
	}
	if own == nil {
		respondContent(s, i, "You have not submitted a result for today's puzzle yet.")
		return
	}

	percentile := services.Percentile(own.GuessesUsed, own.Won, entries)

	var position string
	if rank, ok := services.RankOf(discordID, services.RankEntries(entries)); ok {
		position = fmt.Sprintf("Rank **#%d** of %d submissions", rank, len(entries))
	} else {
		position = fmt.Sprintf("Unranked (no win today) among %d submissions", len(entries))
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📈 Your result - %s", common.FormatPuzzleDate(today)),
		Description: fmt.Sprintf("%s\nYou performed as well as or better than **%d%%** of today's players.",
			position, percentile),
		Color: common.ColorInfo,
	}

	respondEmbed(s, i, embed)
}

func rankBadge(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("`#%d`", rank)
	}
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func respondContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}
