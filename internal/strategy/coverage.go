package strategy

import (
	"math/rand"
	"sort"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// CoverageStrategy spreads each combination across equal-width bands of the
// number range so picks are never clustered in one region. One number is
// drawn per band; leftover slots go to randomly chosen bands.
type CoverageStrategy struct {
	BaseStrategy
}

// NewCoverageStrategy creates a range-coverage strategy
func NewCoverageStrategy(def *game.Definition) *CoverageStrategy {
	return &CoverageStrategy{BaseStrategy{def: def, label: "coverage"}}
}

// Generate produces combinations with one pick per range band
func (s *CoverageStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	_ = trainingDraws
	bands := buildBands(s.def.Spec.MainMax, s.def.Spec.MainCount)

	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := pickAcrossBands(rng, bands, s.def.Spec.MainCount)
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

// buildBands splits [1..max] into n contiguous bands of near-equal width
func buildBands(max, n int) [][]int {
	bands := make([][]int, n)
	width := max / n
	extra := max % n
	start := 1
	for i := 0; i < n; i++ {
		size := width
		if i < extra {
			size++
		}
		band := make([]int, size)
		for j := 0; j < size; j++ {
			band[j] = start + j
		}
		bands[i] = band
		start += size
	}
	return bands
}

// pickAcrossBands draws one value from each band, then fills any remaining
// slots from random bands without reusing values
func pickAcrossBands(rng *rand.Rand, bands [][]int, k int) ([]int, error) {
	picked := make([]int, 0, k)
	used := make(map[int]bool, k)

	for _, band := range bands {
		if len(picked) == k {
			break
		}
		v := band[rng.Intn(len(band))]
		picked = append(picked, v)
		used[v] = true
	}

	for len(picked) < k {
		band := bands[rng.Intn(len(bands))]
		v := band[rng.Intn(len(band))]
		if used[v] {
			continue
		}
		picked = append(picked, v)
		used[v] = true
	}

	sort.Ints(picked)
	return picked, nil
}
