package strategy

import (
	"math/rand"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/statistics"
)

// FrequencyStrategy samples from a recency-weighted frequency pool: the
// most frequently drawn numbers in the training window, with newer draws
// counting more. Each generated combination uses a slightly different
// recency weight so the pool stays diverse.
type FrequencyStrategy struct {
	BaseStrategy
	analyzer *statistics.Analyzer
	PoolSize int
	StarPool int
}

// NewFrequencyStrategy creates a recency-weighted frequency strategy
func NewFrequencyStrategy(def *game.Definition) *FrequencyStrategy {
	return &FrequencyStrategy{
		BaseStrategy: BaseStrategy{def: def, label: "frequency"},
		analyzer:     statistics.NewAnalyzer(def),
		PoolSize:     15,
		StarPool:     5,
	}
}

// Generate samples combinations from the top-frequency pools
func (s *FrequencyStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	combos := make([]*models.Combination, 0, count)
	recentWeights := []float64{0.5, 0.6, 0.7}

	starPool := s.StarPool
	if starPool > s.def.Spec.StarMax {
		starPool = s.def.Spec.StarMax
	}

	for i := 0; i < count; i++ {
		weight := recentWeights[i%len(recentWeights)]
		freq := s.analyzer.Frequencies(trainingDraws, weight)

		numbers, err := sampleDistinct(rng, freq.TopNumbers(s.PoolSize), s.def.Spec.MainCount)
		if err != nil {
			return nil, err
		}
		stars, err := sampleDistinct(rng, freq.TopStars(starPool), s.def.Spec.StarCount)
		if err != nil {
			return nil, err
		}

		combo, err := s.buildCombination(numbers, stars, weight)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}
	return combos, nil
}
