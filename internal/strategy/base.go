package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// BaseStrategy provides shared functionality for generators
type BaseStrategy struct {
	def   *game.Definition
	label string
}

// Name returns the strategy label
func (b *BaseStrategy) Name() string {
	return b.label
}

// buildCombination wraps validated combination construction with the
// strategy label attached
func (b *BaseStrategy) buildCombination(numbers, stars []int, confidence float64) (*models.Combination, error) {
	combo, err := models.NewCombination(numbers, stars, b.label, confidence, b.def.Spec)
	if err != nil {
		return nil, fmt.Errorf("strategy %s: %w", b.label, err)
	}
	return combo, nil
}

// sampleDistinct draws k distinct values from pool without replacement
func sampleDistinct(rng *rand.Rand, pool []int, k int) ([]int, error) {
	if k > len(pool) {
		return nil, fmt.Errorf("cannot sample %d values from pool of %d", k, len(pool))
	}
	shuffled := make([]int, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	picked := make([]int, k)
	copy(picked, shuffled[:k])
	sort.Ints(picked)
	return picked, nil
}

// weightedSample draws k distinct values, each pick proportional to its
// weight. Zero or negative weights are treated as a small floor so every
// in-range value stays reachable.
func weightedSample(rng *rand.Rand, weights map[int]float64, k int) ([]int, error) {
	if k > len(weights) {
		return nil, fmt.Errorf("cannot sample %d values from %d weighted candidates", k, len(weights))
	}

	remaining := make(map[int]float64, len(weights))
	for v, w := range weights {
		if w <= 0 {
			w = 0.01
		}
		remaining[v] = w
	}

	picked := make([]int, 0, k)
	for len(picked) < k {
		total := 0.0
		for _, w := range remaining {
			total += w
		}
		target := rng.Float64() * total

		// Iterate candidates in sorted order so the pick for a given
		// random value is deterministic.
		candidates := sortedKeys(remaining)
		cumulative := 0.0
		chosen := candidates[len(candidates)-1]
		for _, v := range candidates {
			cumulative += remaining[v]
			if target < cumulative {
				chosen = v
				break
			}
		}
		picked = append(picked, chosen)
		delete(remaining, chosen)
	}

	sort.Ints(picked)
	return picked, nil
}

// fullRange returns [1..max]
func fullRange(max int) []int {
	values := make([]int, max)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func sortedKeys(m map[int]float64) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
