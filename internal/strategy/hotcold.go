package strategy

import (
	"math/rand"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/statistics"
)

// HotColdStrategy mixes frequently drawn ("hot") numbers with long-absent
// ("cold") ones. The HotRatio controls the split; the remainder of each
// combination comes from the numbers with the largest gap since last seen.
type HotColdStrategy struct {
	BaseStrategy
	analyzer *statistics.Analyzer
	HotRatio float64
	PoolSize int
}

// NewHotColdStrategy creates a mixed hot/cold strategy
func NewHotColdStrategy(def *game.Definition) *HotColdStrategy {
	return &HotColdStrategy{
		BaseStrategy: BaseStrategy{def: def, label: "hotcold"},
		analyzer:     statistics.NewAnalyzer(def),
		HotRatio:     0.6,
		PoolSize:     12,
	}
}

// Generate mixes hot and cold numbers into each combination
func (s *HotColdStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	freq := s.analyzer.Frequencies(trainingDraws, 0.5)
	gaps := s.analyzer.Gaps(trainingDraws)

	hotCount := int(float64(s.def.Spec.MainCount)*s.HotRatio + 0.5)
	if hotCount > s.def.Spec.MainCount {
		hotCount = s.def.Spec.MainCount
	}
	coldCount := s.def.Spec.MainCount - hotCount

	hotPool := freq.TopNumbers(s.PoolSize)
	coldPool := coldestNumbers(gaps, s.PoolSize)

	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		hot, err := sampleDistinct(rng, hotPool, hotCount)
		if err != nil {
			return nil, err
		}
		cold, err := sampleDistinct(rng, exclude(coldPool, hot), coldCount)
		if err != nil {
			return nil, err
		}

		starPool := s.PoolSize
		if starPool > s.def.Spec.StarMax {
			starPool = s.def.Spec.StarMax
		}
		stars, err := sampleDistinct(rng, freq.TopStars(starPool), s.def.Spec.StarCount)
		if err != nil {
			return nil, err
		}

		combo, err := s.buildCombination(append(hot, cold...), stars, s.HotRatio)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}
	return combos, nil
}

// coldestNumbers returns the n numbers with the largest gap, largest first
func coldestNumbers(gaps *statistics.GapTable, n int) []int {
	weights := make(map[int]float64, len(gaps.Numbers))
	for num, gap := range gaps.Numbers {
		weights[num] = float64(gap)
	}
	table := statistics.FrequencyTable{Numbers: weights}
	return table.TopNumbers(n)
}

func exclude(pool, taken []int) []int {
	seen := make(map[int]bool, len(taken))
	for _, v := range taken {
		seen[v] = true
	}
	out := make([]int, 0, len(pool))
	for _, v := range pool {
		if !seen[v] {
			out = append(out, v)
		}
	}
	return out
}
