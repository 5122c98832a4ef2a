package backtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

func resultWithMatches(label string, matches ...models.MatchResult) *StrategyResult {
	return &StrategyResult{StrategyLabel: label, Matches: matches}
}

// TestAggregateScoreFormula tests the weighted average score computation
func TestAggregateScoreFormula(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	results := map[string]*StrategyResult{
		"test": resultWithMatches("test",
			models.MatchResult{MainMatches: 3, StarMatches: 1},
			models.MatchResult{MainMatches: 1, StarMatches: 0},
		),
	}

	rankings := Aggregate(results, def)
	if len(rankings) != 1 {
		t.Fatalf("expected 1 ranking, got %d", len(rankings))
	}

	// (3+1 main) + (1+0 stars) * 2.0 over 2 evaluations
	want := (4.0 + 1.0*2.0) / 2.0
	if got := rankings[0].AverageScore; got != want {
		t.Errorf("expected score %v, got %v", want, got)
	}
}

// TestAggregateRankingOrder tests score-descending ordering
func TestAggregateRankingOrder(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	results := map[string]*StrategyResult{
		"weak":   resultWithMatches("weak", models.MatchResult{MainMatches: 1}),
		"strong": resultWithMatches("strong", models.MatchResult{MainMatches: 4, StarMatches: 2}),
		"middle": resultWithMatches("middle", models.MatchResult{MainMatches: 2, StarMatches: 1}),
	}

	rankings := Aggregate(results, def)
	want := []string{"strong", "middle", "weak"}
	for i, label := range want {
		if rankings[i].StrategyLabel != label {
			t.Errorf("position %d: expected %s, got %s", i, label, rankings[i].StrategyLabel)
		}
	}
}

// TestAggregateTieBreaks tests jackpot-count then label ordering on equal scores
func TestAggregateTieBreaks(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	// All three score identically; "bravo" holds a jackpot, the others tie
	// on zero jackpots and fall back to label order.
	jackpot := models.MatchResult{MainMatches: 5, StarMatches: 2, PrizeTier: 1}
	plain := models.MatchResult{MainMatches: 5, StarMatches: 2}

	results := map[string]*StrategyResult{
		"delta":   resultWithMatches("delta", plain),
		"bravo":   resultWithMatches("bravo", jackpot),
		"charlie": resultWithMatches("charlie", plain),
	}

	rankings := Aggregate(results, def)
	want := []string{"bravo", "charlie", "delta"}
	for i, label := range want {
		if rankings[i].StrategyLabel != label {
			t.Errorf("position %d: expected %s, got %s", i, label, rankings[i].StrategyLabel)
		}
	}
}

// TestAggregateStability tests that repeated aggregation yields the same order
func TestAggregateStability(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	results := map[string]*StrategyResult{
		"a": resultWithMatches("a", models.MatchResult{MainMatches: 2}),
		"b": resultWithMatches("b", models.MatchResult{MainMatches: 2}),
		"c": resultWithMatches("c", models.MatchResult{MainMatches: 2}),
	}

	first := Aggregate(results, def)
	for run := 0; run < 5; run++ {
		again := Aggregate(results, def)
		for i := range first {
			if first[i].StrategyLabel != again[i].StrategyLabel {
				t.Fatalf("run %d: order changed at %d", run, i)
			}
		}
	}
}

// TestAggregateWinnings tests prize payout accumulation
func TestAggregateWinnings(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	results := map[string]*StrategyResult{
		"test": resultWithMatches("test",
			models.MatchResult{MainMatches: 2, StarMatches: 0, PrizeTier: 13},
			models.MatchResult{MainMatches: 3, StarMatches: 0, PrizeTier: 10},
			models.MatchResult{MainMatches: 0, StarMatches: 0, PrizeTier: models.NoPrize},
		),
	}

	rankings := Aggregate(results, def)
	want := decimal.NewFromInt(14)
	if !rankings[0].ExpectedWinnings.Equal(want) {
		t.Errorf("expected winnings %s, got %s", want, rankings[0].ExpectedWinnings)
	}
	if rankings[0].PrizeWins() != 2 {
		t.Errorf("expected 2 prize wins, got %d", rankings[0].PrizeWins())
	}
}
