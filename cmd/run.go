package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"stumped/application"
	"stumped/bot"
	"stumped/config"
	"stumped/database"
	"stumped/domain/interfaces"
	"stumped/domain/services"
	"stumped/infrastructure"
	"stumped/infrastructure/observability"
	"stumped/repository"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting stumped bot...")

	// Load configuration
	cfg := config.Get()

	epoch, err := cfg.GetEpoch()
	if err != nil {
		return fmt.Errorf("invalid epoch date: %w", err)
	}

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize NATS. The bot stays playable without it: events become
	// no-ops and every guess is scored locally.
	var eventPublisher interfaces.EventPublisher
	var remoteValidator interfaces.GuessValidator
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		log.Printf("NATS unavailable, running without events and remote validation: %v", err)
		eventPublisher = infrastructure.NewNoopEventPublisher()
	} else {
		log.Println("NATS connection established successfully")
		publisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
		if err := publisher.EnsureDomainEventStream(); err != nil {
			return fmt.Errorf("failed to ensure domain event stream: %w", err)
		}
		eventPublisher = publisher
		remoteValidator = infrastructure.NewRemoteValidator(natsClient, cfg.ValidationSubject)
	}

	// Initialize unit of work factory with a fresh transactional publisher
	// per transaction
	uowFactory := repository.NewUnitOfWorkFactory(db, func() interfaces.TransactionalEventPublisher {
		return infrastructure.NewNATSTransactionalPublisher(eventPublisher)
	})

	// Initialize metrics
	var gameMetrics application.GameMetrics
	metricsProvider := observability.NewMetricsProvider(cfg)
	if err := metricsProvider.Initialize(ctx); err != nil {
		log.Printf("Metrics initialization failed, continuing without metrics: %v", err)
		gameMetrics = observability.NewNoopMetrics()
	} else {
		gameMetrics = metricsProvider
	}

	// Initialize gameplay orchestration
	clock := services.UTCClock{}
	validator := application.NewTwoTierValidator(remoteValidator, cfg.ValidationTimeout)
	guessHandler := application.NewGuessHandler(uowFactory, validator, clock, epoch, gameMetrics)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:   cfg.DiscordToken,
		GuildID: cfg.GuildID,
	}
	discordBot, err := bot.New(botConfig, uowFactory, guessHandler, clock, epoch)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Start the rollover worker
	guildDiscovery := bot.NewGuildDiscoveryService(repository.NewGuildSettingsRepository(db))
	rolloverWorker := application.NewRolloverWorker(
		guildDiscovery,
		discordBot.GetDiscordPoster(),
		eventPublisher,
		clock,
		epoch,
	)
	discordBot.SetRolloverWorkerCleanup(rolloverWorker.Start(ctx))
	log.Println("Background workers started")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}

	if err := natsClient.Close(); err != nil {
		log.Printf("Error closing NATS client: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := metricsProvider.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down metrics provider: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Println("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Println("Shutdown completed")
	}

	return nil
}
