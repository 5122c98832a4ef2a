// Package strategy implements pluggable combination generators. Every
// heuristic, from plain frequency counting to Markov chaining, sits behind
// the same Generator interface so the backtest harness stays agnostic to
// how a strategy picks its numbers.
package strategy

import (
	"math/rand"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// Generator produces candidate combinations from a training window.
//
// Implementations must only read trainingDraws, must draw all randomness
// from the injected rng so runs are reproducible under a fixed seed, and
// must return exactly count combinations valid for their game. Returning
// fewer is allowed only as an explicit partial-generation signal.
type Generator interface {
	Name() string
	Generate(trainingDraws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error)
}

// Constructor builds a generator for a game definition
type Constructor func(def *game.Definition) Generator

var registry = map[string]Constructor{
	"random":    func(def *game.Definition) Generator { return NewRandomStrategy(def) },
	"frequency": func(def *game.Definition) Generator { return NewFrequencyStrategy(def) },
	"hotcold":   func(def *game.Definition) Generator { return NewHotColdStrategy(def) },
	"coverage":  func(def *game.Definition) Generator { return NewCoverageStrategy(def) },
	"fibonacci": func(def *game.Definition) Generator { return NewFibonacciStrategy(def) },
	"markov":    func(def *game.Definition) Generator { return NewMarkovStrategy(def) },
}

// Resolve builds a generator by name for the given game
func Resolve(name string, def *game.Definition) (Generator, error) {
	build, ok := registry[name]
	if !ok {
		return nil, models.ErrUnknownStrategy
	}
	return build(def), nil
}

// Known lists the registered strategy names
func Known() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
