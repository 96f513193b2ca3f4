package stats

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"stumped/application"
	"stumped/bot/common"
	"stumped/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature handles the /stats command
type Feature struct {
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	generator  *DistributionImageGenerator
}

// NewFeature creates a new stats feature instance
func NewFeature(session *discordgo.Session, uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		session:    session,
		uowFactory: uowFactory,
		generator:  NewDistributionImageGenerator(),
	}
}

// HandleCommand displays daily-game statistics for a player
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	// Target user defaults to the command issuer
	targetID, err := strconv.ParseInt(i.Member.User.ID, 10, 64)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", i.Member.User.ID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	options := i.ApplicationCommandData().Options
	if len(options) > 0 && options[0].Name == "user" {
		targetUser := options[0].UserValue(s)
		parsedID, err := strconv.ParseInt(targetUser.ID, 10, 64)
		if err != nil {
			log.Errorf("Error parsing Discord ID %s: %v", targetUser.ID, err)
			common.RespondWithError(s, i, "Unable to process request. Please try again.")
			return
		}
		targetID = parsedID
	}

	uow := f.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	stats, err := uow.StatsRepository().Get(ctx, targetID)
	if err != nil {
		log.Errorf("Error getting stats for %d: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to retrieve statistics. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	displayName := common.GetDisplayNameInt64(s, i.GuildID, targetID)

	if stats == nil || !stats.HasData() {
		respondNoData(s, i, displayName)
		return
	}

	embed := buildStatsEmbed(displayName, stats)

	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}

	image, err := f.generator.Generate(stats.GuessDistribution)
	if err != nil {
		// Stats are still worth showing without the chart
		log.Errorf("Error generating distribution chart: %v", err)
	} else {
		embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://distribution.png"}
		data.Files = []*discordgo.File{
			{
				Name:        "distribution.png",
				ContentType: "image/png",
				Reader:      bytes.NewReader(image),
			},
		}
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}

func buildStatsEmbed(displayName string, stats *entities.PlayerStats) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Stumped statistics for %s", displayName),
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Played",
				Value:  fmt.Sprintf("%d", stats.GamesPlayed),
				Inline: true,
			},
			{
				Name:   "Win %",
				Value:  fmt.Sprintf("%.0f%%", stats.WinPercentage()),
				Inline: true,
			},
			{
				Name:   "Streak",
				Value:  fmt.Sprintf("🔥 %d (best %d)", stats.CurrentStreak, stats.MaxStreak),
				Inline: true,
			},
		},
	}
}

func respondNoData(s *discordgo.Session, i *discordgo.InteractionCreate, displayName string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%s has not finished a daily puzzle yet.", displayName),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		log.Errorf("Error responding to stats command: %v", err)
	}
}
