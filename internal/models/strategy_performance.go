package models

import (
	"github.com/shopspring/decimal"
)

// StrategyPerformance aggregates match results for one strategy over an
// evaluation window
type StrategyPerformance struct {
	StrategyLabel     string          `db:"strategy_label" json:"strategy_label"`
	TotalCombinations int             `db:"total_combinations" json:"total_combinations"`
	TotalMainMatches  int             `db:"total_main_matches" json:"total_main_matches"`
	TotalStarMatches  int             `db:"total_star_matches" json:"total_star_matches"`
	PrizeTierCounts   map[int]int     `db:"prize_tier_counts" json:"prize_tier_counts"`
	AverageScore      float64         `db:"average_score" json:"average_score"`
	ExpectedWinnings  decimal.Decimal `db:"expected_winnings" json:"expected_winnings"`
}

// PrizeWins counts results that landed in any paying tier
func (sp *StrategyPerformance) PrizeWins() int {
	wins := 0
	for tier, count := range sp.PrizeTierCounts {
		if tier != NoPrize {
			wins += count
		}
	}
	return wins
}

// JackpotCount returns the number of top-tier hits
func (sp *StrategyPerformance) JackpotCount() int {
	return sp.PrizeTierCounts[1]
}

// BestTier returns the best (lowest ordinal) paying tier hit, or NoPrize
func (sp *StrategyPerformance) BestTier() int {
	best := NoPrize
	for tier, count := range sp.PrizeTierCounts {
		if tier == NoPrize || count == 0 {
			continue
		}
		if best == NoPrize || tier < best {
			best = tier
		}
	}
	return best
}

// AvgMainMatches returns average matched main numbers per combination
func (sp *StrategyPerformance) AvgMainMatches() float64 {
	if sp.TotalCombinations == 0 {
		return 0
	}
	return float64(sp.TotalMainMatches) / float64(sp.TotalCombinations)
}

// AvgStarMatches returns average matched secondary numbers per combination
func (sp *StrategyPerformance) AvgStarMatches() float64 {
	if sp.TotalCombinations == 0 {
		return 0
	}
	return float64(sp.TotalStarMatches) / float64(sp.TotalCombinations)
}
