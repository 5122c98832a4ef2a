package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Combination is a candidate ticket proposed by a strategy
type Combination struct {
	ID            uuid.UUID `json:"id"`
	Numbers       []int     `json:"numbers"`
	Stars         []int     `json:"stars"`
	StrategyLabel string    `json:"strategy_label"`
	Confidence    float64   `json:"confidence"`
}

// NewCombination constructs a validated combination
func NewCombination(numbers, stars []int, label string, confidence float64, spec NumberSpec) (*Combination, error) {
	combo := &Combination{
		ID:            uuid.New(),
		Numbers:       sortedCopy(numbers),
		Stars:         sortedCopy(stars),
		StrategyLabel: label,
		Confidence:    confidence,
	}
	if err := combo.Validate(spec); err != nil {
		return nil, err
	}
	return combo, nil
}

// Validate checks the count, range and distinctness invariants
func (c *Combination) Validate(spec NumberSpec) error {
	if err := validateNumberSet(c.Numbers, spec.MainCount, spec.MainMax); err != nil {
		return fmt.Errorf("%w: main numbers: %v", ErrInvalidCombination, err)
	}
	if err := validateNumberSet(c.Stars, spec.StarCount, spec.StarMax); err != nil {
		return fmt.Errorf("%w: secondary numbers: %v", ErrInvalidCombination, err)
	}
	return nil
}

// String renders the combination as "1-2-3-4-5 / 6-7"
func (c *Combination) String() string {
	return fmt.Sprintf("%s / %s", joinInts(c.Numbers), joinInts(c.Stars))
}

func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, "-")
}
