package bot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"stumped/application"
	"stumped/application/dto"
	"stumped/bot/common"
	"stumped/bot/features/archive"
	"stumped/bot/features/leaderboard"
	"stumped/bot/features/play"
	"stumped/bot/features/settings"
	"stumped/bot/features/stats"
	"stumped/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory

	// Feature modules
	play        *play.Feature
	archive     *archive.Feature
	stats       *stats.Feature
	leaderboard *leaderboard.Feature
	settings    *settings.Feature

	// Worker cleanup functions
	stopRolloverWorker func()
}

// New creates a new bot instance with all features
func New(
	config Config,
	uowFactory application.UnitOfWorkFactory,
	guessHandler application.GuessHandler,
	clock interfaces.Clock,
	epoch time.Time,
) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
	}

	// Create feature modules
	bot.play = play.NewFeature(dg, uowFactory, guessHandler)
	bot.archive = archive.NewFeature(dg, uowFactory, guessHandler, clock, epoch)
	bot.stats = stats.NewFeature(dg, uowFactory)
	bot.leaderboard = leaderboard.NewFeature(dg, uowFactory, clock)
	bot.settings = settings.NewFeature(dg, uowFactory)

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleAutocomplete)
	dg.AddHandler(bot.handleGuildCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// GetDiscordPoster returns a DiscordPoster for rollover announcements
func (b *Bot) GetDiscordPoster() application.DiscordPoster {
	return &discordPoster{session: b.session}
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// SetRolloverWorkerCleanup sets the cleanup function for the rollover worker
func (b *Bot) SetRolloverWorkerCleanup(cleanup func()) {
	b.stopRolloverWorker = cleanup
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.stopRolloverWorker != nil {
		b.stopRolloverWorker()
		log.Info("Background workers stopped")
	}
	return b.session.Close()
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "guess":
		b.play.HandleGuessCommand(s, i)
	case "board":
		b.play.HandleBoardCommand(s, i)
	case "archive":
		b.archive.HandleCommand(s, i)
	case "stats":
		b.stats.HandleCommand(s, i)
	case "leaderboard":
		b.leaderboard.HandleCommand(s, i)
	case "settings":
		b.settings.HandleCommand(s, i)
	}
}

// handleAutocomplete routes autocomplete requests
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommandAutocomplete {
		return
	}

	if i.ApplicationCommandData().Name == "guess" {
		b.play.HandleAutocomplete(s, i)
	}
}

// handleGuildCreate handles when the bot joins a new guild
func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	ctx := context.Background()

	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", g.ID, err)
		return
	}

	uow := b.uowFactory.CreateForGuild(guildID)
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	settings, err := uow.GuildSettingsRepository().GetOrCreateGuildSettings(ctx, guildID)
	if err != nil {
		log.Errorf("Failed to track new guild %s (%s): %v", g.Name, g.ID, err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit transaction: %v", err)
		return
	}

	log.Infof("Bot joined new guild: %s (ID: %d, Announce Channel: %v)",
		g.Name, settings.GuildID, settings.AnnounceChannelID)
}

// discordPoster implements the application.DiscordPoster interface
type discordPoster struct {
	session *discordgo.Session
}

// PostRolloverAnnouncement posts the new-puzzle announcement to a guild's
// configured channel
func (p *discordPoster) PostRolloverAnnouncement(ctx context.Context, announcement dto.RolloverAnnouncementDTO) error {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🏏 Stumped #%d is live!", announcement.PuzzleNumber),
		Description: fmt.Sprintf("A new Man of the Match is hiding in the scorecard of %s.\nOpen the board with `/board` and guess with `/guess`.",
			common.FormatPuzzleDate(announcement.PuzzleDate)),
		Color: common.ColorPrimary,
	}

	channelID := strconv.FormatInt(announcement.ChannelID, 10)
	if _, err := p.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("failed to announce puzzle to channel %s: %w", channelID, err)
	}

	log.WithFields(log.Fields{
		"guild_id":   announcement.GuildID,
		"channel_id": announcement.ChannelID,
		"puzzle":     announcement.PuzzleNumber,
	}).Info("Posted rollover announcement")
	return nil
}
