package application

import (
	"context"
	"fmt"
	"time"

	"stumped/application/dto"
	domainevents "stumped/domain/events"
	"stumped/domain/interfaces"
	"stumped/domain/services"

	log "github.com/sirupsen/logrus"
)

// RolloverWorker announces each new daily puzzle at UTC midnight
type RolloverWorker struct {
	guildDiscovery GuildDiscoveryService
	poster         DiscordPoster
	publisher      interfaces.EventPublisher
	clock          interfaces.Clock
	epoch          time.Time
}

// NewRolloverWorker creates a new rollover worker
func NewRolloverWorker(
	guildDiscovery GuildDiscoveryService,
	poster DiscordPoster,
	publisher interfaces.EventPublisher,
	clock interfaces.Clock,
	epoch time.Time,
) *RolloverWorker {
	return &RolloverWorker{
		guildDiscovery: guildDiscovery,
		poster:         poster,
		publisher:      publisher,
		clock:          clock,
		epoch:          epoch,
	}
}

// Start begins the rollover worker
func (w *RolloverWorker) Start(ctx context.Context) func() {
	stopChan := make(chan struct{})

	go func() {
		log.Info("Rollover worker started")

		for {
			waitDuration := services.TimeUntilNextPuzzle(w.clock.Now())
			log.Infof("Rollover worker waiting %v until next puzzle", waitDuration)

			select {
			case <-ctx.Done():
				log.Info("Rollover worker shutting down (context cancelled)...")
				return
			case <-stopChan:
				log.Info("Rollover worker shutting down (stop requested)...")
				return
			case <-time.After(waitDuration):
				if err := w.processRollover(ctx); err != nil {
					log.Errorf("Error processing puzzle rollover: %v", err)
				}
			}
		}
	}()

	return func() {
		close(stopChan)
	}
}

// processRollover publishes the rollover event and announces the new puzzle
// to every guild with a configured channel
func (w *RolloverWorker) processRollover(ctx context.Context) error {
	today := services.UTCMidnight(w.clock.Now())
	index := services.PuzzleIndexForDate(today, w.epoch)

	if err := w.publisher.Publish(domainevents.PuzzleRolloverEvent{
		PuzzleDate:  today,
		PuzzleIndex: index,
	}); err != nil {
		log.WithError(err).Warn("Failed to publish rollover event")
	}

	guilds, err := w.guildDiscovery.GetGuildsWithAnnounceChannel(ctx)
	if err != nil {
		return fmt.Errorf("failed to discover guilds: %w", err)
	}

	var successCount, failureCount int
	for _, settings := range guilds {
		if settings.AnnounceChannelID == nil {
			continue
		}
		announcement := dto.RolloverAnnouncementDTO{
			GuildID:      settings.GuildID,
			ChannelID:    *settings.AnnounceChannelID,
			PuzzleDate:   today,
			PuzzleNumber: index + 1,
		}
		if err := w.poster.PostRolloverAnnouncement(ctx, announcement); err != nil {
			log.Errorf("Error announcing rollover to guild %d: %v", settings.GuildID, err)
			failureCount++
			continue
		}
		successCount++
	}

	log.WithFields(log.Fields{
		"total_guilds": len(guilds),
		"successful":   successCount,
		"failed":       failureCount,
		"puzzle_date":  services.DateKey(today),
	}).Info("Completed puzzle rollover")

	return nil
}
