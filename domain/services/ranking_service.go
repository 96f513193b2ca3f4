package services

import (
	"math"
	"sort"

	"stumped/domain/entities"
)

// RankEntries orders one puzzle date's submissions for display. Losses never
// appear ranked. Fewer guesses rank higher; at equal guess counts the
// earlier submission wins. This ordering is the single source of truth for
// rank display, top-N cuts and surrounding-the-player windows.
func RankEntries(entries []*entities.LeaderboardEntry) []*entities.LeaderboardEntry {
	ranked := make([]*entities.LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		if e.Won {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].GuessesUsed != ranked[j].GuessesUsed {
			return ranked[i].GuessesUsed < ranked[j].GuessesUsed
		}
		return ranked[i].SubmittedAt.Before(ranked[j].SubmittedAt)
	})
	return ranked
}

// RankOf returns the 1-based position of a player in a ranked sequence,
// false when absent
func RankOf(discordID int64, ranked []*entities.LeaderboardEntry) (int, bool) {
	for i, e := range ranked {
		if e.DiscordID == discordID {
			return i + 1, true
		}
	}
	return 0, false
}

// Percentile reports what share of a puzzle's submissions performed no
// better than the given result, as 0-100. Any loss counts as worse than any
// win; among wins, strictly fewer guesses counts as better. Zero on an
// empty leaderboard; callers must treat that case explicitly.
func Percentile(guessesUsed int, won bool, entries []*entities.LeaderboardEntry) int {
	if len(entries) == 0 {
		return 0
	}

	better := 0
	for _, e := range entries {
		if !e.Won {
			continue
		}
		if !won || e.GuessesUsed < guessesUsed {
			better++
		}
	}

	total := len(entries)
	return int(math.Round(float64(total-better) / float64(total) * 100))
}

// AggregateEntries groups entries per player and orders the result for the
// all-time leaderboard: most wins first, then lowest average guesses among
// wins. Players without a win carry the sentinel worst-case average so they
// always rank below any winner.
func AggregateEntries(entries []*entities.LeaderboardEntry) []*entities.LeaderboardAggregate {
	byPlayer := make(map[int64]*entities.LeaderboardAggregate)
	guessSums := make(map[int64]int)
	var order []int64

	for _, e := range entries {
		agg, ok := byPlayer[e.DiscordID]
		if !ok {
			agg = &entities.LeaderboardAggregate{DiscordID: e.DiscordID}
			byPlayer[e.DiscordID] = agg
			order = append(order, e.DiscordID)
		}
		agg.GamesPlayed++
		if e.Won {
			agg.TotalWins++
			guessSums[e.DiscordID] += e.GuessesUsed
		}
	}

	aggregates := make([]*entities.LeaderboardAggregate, 0, len(order))
	for _, id := range order {
		agg := byPlayer[id]
		if agg.TotalWins > 0 {
			agg.AverageGuesses = float64(guessSums[id]) / float64(agg.TotalWins)
		} else {
			agg.AverageGuesses = entities.WorstAverage
		}
		aggregates = append(aggregates, agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		if aggregates[i].TotalWins != aggregates[j].TotalWins {
			return aggregates[i].TotalWins > aggregates[j].TotalWins
		}
		return aggregates[i].AverageGuesses < aggregates[j].AverageGuesses
	})
	return aggregates
}
