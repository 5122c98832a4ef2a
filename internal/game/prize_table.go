package game

import (
	"github.com/shopspring/decimal"

	"github.com/yourusername/lotto-better/internal/models"
)

// PrizeRule maps an exact (main, secondary) match pair to a prize tier.
// Payout is an indicative average winning amount used for reporting only.
type PrizeRule struct {
	MainMatches int
	StarMatches int
	Tier        int
	Label       string
	Payout      decimal.Decimal
}

// PrizeTable is the ordered prize ladder of one game. Lookup is by exact
// match pair; anything not listed pays nothing.
type PrizeTable []PrizeRule

// TierFor returns the prize tier for a match pair, or models.NoPrize when
// the pair is not in the ladder
func (t PrizeTable) TierFor(mainMatches, starMatches int) int {
	for _, rule := range t {
		if rule.MainMatches == mainMatches && rule.StarMatches == starMatches {
			return rule.Tier
		}
	}
	return models.NoPrize
}

// RuleFor returns the full rule for a match pair
func (t PrizeTable) RuleFor(mainMatches, starMatches int) (PrizeRule, bool) {
	for _, rule := range t {
		if rule.MainMatches == mainMatches && rule.StarMatches == starMatches {
			return rule, true
		}
	}
	return PrizeRule{}, false
}

// PayoutForTier returns the indicative payout of a tier, zero when unknown
func (t PrizeTable) PayoutForTier(tier int) decimal.Decimal {
	for _, rule := range t {
		if rule.Tier == tier {
			return rule.Payout
		}
	}
	return decimal.Zero
}

// Euromillions ladder: 13 tiers from 5+2 down to 2+0
var euromillionsPrizes = PrizeTable{
	{MainMatches: 5, StarMatches: 2, Tier: 1, Label: "Jackpot", Payout: decimal.NewFromInt(17_000_000)},
	{MainMatches: 5, StarMatches: 1, Tier: 2, Label: "5+1", Payout: decimal.NewFromInt(250_000)},
	{MainMatches: 5, StarMatches: 0, Tier: 3, Label: "5+0", Payout: decimal.NewFromInt(30_000)},
	{MainMatches: 4, StarMatches: 2, Tier: 4, Label: "4+2", Payout: decimal.NewFromInt(1_500)},
	{MainMatches: 4, StarMatches: 1, Tier: 5, Label: "4+1", Payout: decimal.NewFromInt(120)},
	{MainMatches: 3, StarMatches: 2, Tier: 6, Label: "3+2", Payout: decimal.NewFromInt(60)},
	{MainMatches: 4, StarMatches: 0, Tier: 7, Label: "4+0", Payout: decimal.NewFromInt(40)},
	{MainMatches: 2, StarMatches: 2, Tier: 8, Label: "2+2", Payout: decimal.NewFromInt(15)},
	{MainMatches: 3, StarMatches: 1, Tier: 9, Label: "3+1", Payout: decimal.NewFromInt(12)},
	{MainMatches: 3, StarMatches: 0, Tier: 10, Label: "3+0", Payout: decimal.NewFromInt(10)},
	{MainMatches: 1, StarMatches: 2, Tier: 11, Label: "1+2", Payout: decimal.NewFromInt(8)},
	{MainMatches: 2, StarMatches: 1, Tier: 12, Label: "2+1", Payout: decimal.NewFromInt(7)},
	{MainMatches: 2, StarMatches: 0, Tier: 13, Label: "2+0", Payout: decimal.NewFromInt(4)},
}

// French Loto ladder: 7 tiers from 5+1 down to 2+1
var frenchLotoPrizes = PrizeTable{
	{MainMatches: 5, StarMatches: 1, Tier: 1, Label: "Jackpot", Payout: decimal.NewFromInt(2_000_000)},
	{MainMatches: 5, StarMatches: 0, Tier: 2, Label: "5 numbers", Payout: decimal.NewFromInt(100_000)},
	{MainMatches: 4, StarMatches: 1, Tier: 3, Label: "4+lucky", Payout: decimal.NewFromInt(1_000)},
	{MainMatches: 4, StarMatches: 0, Tier: 4, Label: "4 numbers", Payout: decimal.NewFromInt(400)},
	{MainMatches: 3, StarMatches: 1, Tier: 5, Label: "3+lucky", Payout: decimal.NewFromInt(50)},
	{MainMatches: 3, StarMatches: 0, Tier: 6, Label: "3 numbers", Payout: decimal.NewFromInt(20)},
	{MainMatches: 2, StarMatches: 1, Tier: 7, Label: "2+lucky", Payout: decimal.NewFromInt(10)},
}
