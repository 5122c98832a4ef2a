package backtest

import (
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// Evaluate scores one combination against one actual draw. It is a pure
// function: the same inputs always produce the same MatchResult.
//
// The prize tier comes from the game's ladder by exact (main, secondary)
// match pair; pairs not in the ladder resolve to models.NoPrize rather
// than an error, so zero-match results are always well defined.
func Evaluate(combo *models.Combination, draw *models.Draw, table game.PrizeTable) models.MatchResult {
	mainMatches := intersectionSize(combo.Numbers, draw.Numbers)
	starMatches := intersectionSize(combo.Stars, draw.Stars)

	return models.MatchResult{
		MainMatches: mainMatches,
		StarMatches: starMatches,
		PrizeTier:   table.TierFor(mainMatches, starMatches),
	}
}

func intersectionSize(a, b []int) int {
	seen := make(map[int]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	count := 0
	for _, v := range b {
		if seen[v] {
			count++
		}
	}
	return count
}
