// Package game defines the supported lottery games and their prize ladders.
package game

import (
	"fmt"

	"github.com/yourusername/lotto-better/internal/models"
)

// Game identifiers
const (
	Euromillions = "euromillions"
	FrenchLoto   = "loto"
)

// Definition describes the number-set shape and scoring weights of a game
type Definition struct {
	Name string
	Spec models.NumberSpec
	// SecondaryMatchWeight scales secondary matches when computing the
	// aggregate score. Secondary numbers come from a smaller pool, so a
	// match is rarer than a main-number match.
	SecondaryMatchWeight float64
	PrizeTable           PrizeTable
}

// ByName resolves a game definition by identifier
func ByName(name string) (*Definition, error) {
	switch name {
	case Euromillions:
		return euromillions, nil
	case FrenchLoto:
		return frenchLoto, nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownGame, name)
	}
}

// Names lists the supported game identifiers
func Names() []string {
	return []string{Euromillions, FrenchLoto}
}

var euromillions = &Definition{
	Name: Euromillions,
	Spec: models.NumberSpec{
		MainCount: 5,
		MainMax:   50,
		StarCount: 2,
		StarMax:   12,
	},
	SecondaryMatchWeight: 2.0,
	PrizeTable:           euromillionsPrizes,
}

var frenchLoto = &Definition{
	Name: FrenchLoto,
	Spec: models.NumberSpec{
		MainCount: 5,
		MainMax:   49,
		StarCount: 1,
		StarMax:   10,
	},
	SecondaryMatchWeight: 2.0,
	PrizeTable:           frenchLotoPrizes,
}
