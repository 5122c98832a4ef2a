package backtest

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// Aggregate reduces raw per-strategy match results into ranked summary
// statistics. The ranking key is average score descending, then jackpot
// count descending, then strategy label ascending, so identical input
// always yields identical ordering.
func Aggregate(results map[string]*StrategyResult, def *game.Definition) []*models.StrategyPerformance {
	performances := make([]*models.StrategyPerformance, 0, len(results))
	for _, result := range results {
		performances = append(performances, summarize(result, def))
	}

	sort.Slice(performances, func(i, j int) bool {
		a, b := performances[i], performances[j]
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		if a.JackpotCount() != b.JackpotCount() {
			return a.JackpotCount() > b.JackpotCount()
		}
		return a.StrategyLabel < b.StrategyLabel
	})

	return performances
}

func summarize(result *StrategyResult, def *game.Definition) *models.StrategyPerformance {
	perf := &models.StrategyPerformance{
		StrategyLabel:   result.StrategyLabel,
		PrizeTierCounts: make(map[int]int),
	}

	winnings := decimal.Zero
	for _, match := range result.Matches {
		perf.TotalCombinations++
		perf.TotalMainMatches += match.MainMatches
		perf.TotalStarMatches += match.StarMatches
		perf.PrizeTierCounts[match.PrizeTier]++
		if match.PrizeTier != models.NoPrize {
			winnings = winnings.Add(def.PrizeTable.PayoutForTier(match.PrizeTier))
		}
	}
	perf.ExpectedWinnings = winnings

	if perf.TotalCombinations > 0 {
		weighted := float64(perf.TotalMainMatches) + float64(perf.TotalStarMatches)*def.SecondaryMatchWeight
		perf.AverageScore = weighted / float64(perf.TotalCombinations)
	}

	return perf
}
