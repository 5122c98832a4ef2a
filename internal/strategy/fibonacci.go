package strategy

import (
	"math/rand"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// FibonacciStrategy biases its picks toward Fibonacci numbers within the
// game's range. Fibonacci members get a fixed weight boost over the rest;
// the sampling itself stays weighted-random so combinations vary.
type FibonacciStrategy struct {
	BaseStrategy
	Boost float64
}

// NewFibonacciStrategy creates a Fibonacci-biased strategy
func NewFibonacciStrategy(def *game.Definition) *FibonacciStrategy {
	return &FibonacciStrategy{
		BaseStrategy: BaseStrategy{def: def, label: "fibonacci"},
		Boost:        4.0,
	}
}

// Generate samples combinations with Fibonacci numbers overweighted
func (s *FibonacciStrategy) Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	_ = trainingDraws
	mainWeights := s.fibonacciWeights(s.def.Spec.MainMax)
	starWeights := s.fibonacciWeights(s.def.Spec.StarMax)

	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		numbers, err := weightedSample(rng, mainWeights, s.def.Spec.MainCount)
		if err != nil {
			return nil, err
		}
		stars, err := weightedSample(rng, starWeights, s.def.Spec.StarCount)
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

func (s *FibonacciStrategy) fibonacciWeights(max int) map[int]float64 {
	fib := fibonacciSet(max)
	weights := make(map[int]float64, max)
	for v := 1; v <= max; v++ {
		if fib[v] {
			weights[v] = s.Boost
		} else {
			weights[v] = 1.0
		}
	}
	return weights
}

// fibonacciSet returns the Fibonacci numbers up to max as a set
func fibonacciSet(max int) map[int]bool {
	set := make(map[int]bool)
	a, b := 1, 2
	set[a] = true
	for b <= max {
		set[b] = true
		a, b = b, a+b
	}
	return set
}
