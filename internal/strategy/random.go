package strategy

import (
	"math/rand"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// RandomStrategy picks uniformly from the full number ranges. It exists as
// the baseline every other strategy is measured against.
type RandomStrategy struct {
	BaseStrategy
}

// NewRandomStrategy creates the uniform baseline strategy
func NewRandomStrategy(def *game.Definition) *RandomStrategy {
	return &RandomStrategy{BaseStrategy{def: def, label: "random"}}
}

// Generate produces count uniformly random combinations
func (s *RandomStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	_ = trainingDraws
	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := sampleDistinct(rng, fullRange(s.def.Spec.MainMax), s.def.Spec.MainCount)
		if err != nil {
			return nil, err
		}
		stars, err := sampleDistinct(rng, fullRange(s.def.Spec.StarMax), s.def.Spec.StarCount)
		if err != nil {
			return nil, err
		}
		combo, err := s.buildCombination(numbers, stars, 0)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}
	return combos, nil
}
