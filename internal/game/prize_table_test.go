package game

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/yourusername/lotto-better/internal/models"
)

// TestEuromillionsLadder tests exact-pair lookup across the full ladder
func TestEuromillionsLadder(t *testing.T) {
	def, err := ByName(Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	tests := []struct {
		main, stars, tier int
	}{
		{5, 2, 1},
		{5, 1, 2},
		{5, 0, 3},
		{4, 2, 4},
		{3, 2, 6},
		{2, 2, 8},
		{1, 2, 11},
		{2, 0, 13},
		{1, 1, models.NoPrize},
		{1, 0, models.NoPrize},
		{0, 2, models.NoPrize},
		{0, 0, models.NoPrize},
	}

	for _, tt := range tests {
		if got := def.PrizeTable.TierFor(tt.main, tt.stars); got != tt.tier {
			t.Errorf("TierFor(%d, %d): expected %d, got %d", tt.main, tt.stars, tt.tier, got)
		}
	}
}

// TestFrenchLotoLadder tests exact-pair lookup for the Loto ladder
func TestFrenchLotoLadder(t *testing.T) {
	def, err := ByName(FrenchLoto)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	tests := []struct {
		main, stars, tier int
	}{
		{5, 1, 1},
		{5, 0, 2},
		{4, 1, 3},
		{3, 0, 6},
		{2, 1, 7},
		{2, 0, models.NoPrize},
		{1, 1, models.NoPrize},
		{0, 1, models.NoPrize},
	}

	for _, tt := range tests {
		if got := def.PrizeTable.TierFor(tt.main, tt.stars); got != tt.tier {
			t.Errorf("TierFor(%d, %d): expected %d, got %d", tt.main, tt.stars, tt.tier, got)
		}
	}
}

// TestRuleFor tests full-rule lookup
func TestRuleFor(t *testing.T) {
	def, err := ByName(Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	rule, ok := def.PrizeTable.RuleFor(5, 2)
	if !ok {
		t.Fatal("expected rule for jackpot pair")
	}
	if rule.Label != "Jackpot" {
		t.Errorf("expected Jackpot label, got %s", rule.Label)
	}

	if _, ok := def.PrizeTable.RuleFor(1, 0); ok {
		t.Error("expected no rule for non-paying pair")
	}
}

// TestPayoutForTier tests indicative payout lookup
func TestPayoutForTier(t *testing.T) {
	def, err := ByName(FrenchLoto)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	if got := def.PrizeTable.PayoutForTier(7); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected payout 10, got %s", got)
	}
	if got := def.PrizeTable.PayoutForTier(99); !got.Equal(decimal.Zero) {
		t.Errorf("expected zero payout for unknown tier, got %s", got)
	}
}

// TestByName tests game resolution
func TestByName(t *testing.T) {
	for _, name := range Names() {
		def, err := ByName(name)
		if err != nil {
			t.Errorf("expected %s to resolve, got %v", name, err)
		}
		if def.Name != name {
			t.Errorf("expected name %s, got %s", name, def.Name)
		}
		if def.SecondaryMatchWeight != 2.0 {
			t.Errorf("expected secondary weight 2.0 for %s, got %v", name, def.SecondaryMatchWeight)
		}
	}

	if _, err := ByName("powerball"); err == nil {
		t.Error("expected error for unknown game")
	}
}
