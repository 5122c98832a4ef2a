package strategy

import (
	"math/rand"
	"sort"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/statistics"
)

// MarkovStrategy builds a lag-1 transition table between consecutive draws:
// for each number that appeared in draw t, it counts which numbers appeared
// in draw t+1. Combinations are grown by chaining from the most recent draw
// through those transitions, falling back to overall frequency when a number
// has no recorded successors.
type MarkovStrategy struct {
	BaseStrategy
	analyzer *statistics.Analyzer
}

// NewMarkovStrategy creates a transition-chaining strategy
func NewMarkovStrategy(def *game.Definition) *MarkovStrategy {
	return &MarkovStrategy{
		BaseStrategy: BaseStrategy{def: def, label: "markov"},
		analyzer:     statistics.NewAnalyzer(def),
	}
}

// Generate chains combinations from the latest draw's transition weights
func (s *MarkovStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	if len(trainingDraws) < 2 {
		return nil, models.ErrInsufficientData
	}

	sorted := make([]*models.Draw, len(trainingDraws))
	copy(sorted, trainingDraws)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	transitions := buildTransitions(sorted)
	latest := sorted[len(sorted)-1]
	freq := s.analyzer.Frequencies(trainingDraws, 0.5)

	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := s.chainNumbers(rng, transitions, latest.Numbers, freq)
		if err != nil {
			return nil, err
		}
		stars, err := weightedSample(rng, s.starWeights(freq), s.def.Spec.StarCount)
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

// chainNumbers grows a pick set by sampling successors of the current seed
// numbers, seeded from the latest draw
func (s *MarkovStrategy) chainNumbers(rng *rand.Rand, transitions map[int]map[int]float64, seeds []int, freq *statistics.FrequencyTable) ([]int, error) {
	picked := make([]int, 0, s.def.Spec.MainCount)
	used := make(map[int]bool, s.def.Spec.MainCount)
	frontier := make([]int, len(seeds))
	copy(frontier, seeds)

	for len(picked) < s.def.Spec.MainCount {
		weights := successorWeights(transitions, frontier, used)
		if len(weights) == 0 {
			// No unseen successors left; fall back to overall frequency.
			weights = make(map[int]float64, s.def.Spec.MainMax)
			for v := 1; v <= s.def.Spec.MainMax; v++ {
				if !used[v] {
					weights[v] = freq.Numbers[v] + 0.01
				}
			}
		}
		next, err := weightedSample(rng, weights, 1)
		if err != nil {
			return nil, err
		}
		picked = append(picked, next[0])
		used[next[0]] = true
		frontier = append(frontier, next[0])
	}

	sort.Ints(picked)
	return picked, nil
}

func (s *MarkovStrategy) starWeights(freq *statistics.FrequencyTable) map[int]float64 {
	weights := make(map[int]float64, s.def.Spec.StarMax)
	for v := 1; v <= s.def.Spec.StarMax; v++ {
		weights[v] = freq.Stars[v] + 0.01
	}
	return weights
}

// buildTransitions counts co-occurrences between consecutive draws,
// oldest-first input expected
func buildTransitions(sorted []*models.Draw) map[int]map[int]float64 {
	transitions := make(map[int]map[int]float64)
	for i := 0; i < len(sorted)-1; i++ {
		for _, from := range sorted[i].Numbers {
			row := transitions[from]
			if row == nil {
				row = make(map[int]float64)
				transitions[from] = row
			}
			for _, to := range sorted[i+1].Numbers {
				row[to]++
			}
		}
	}
	return transitions
}

// successorWeights merges the transition rows of every frontier number,
// skipping values already picked
func successorWeights(transitions map[int]map[int]float64, frontier []int, used map[int]bool) map[int]float64 {
	weights := make(map[int]float64)
	for _, from := range frontier {
		for to, w := range transitions[from] {
			if !used[to] {
				weights[to] += w
			}
		}
	}
	return weights
}
