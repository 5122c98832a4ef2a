package models

import (
	"fmt"
	"time"
)

// Draw represents one historical lottery drawing
type Draw struct {
	Date    time.Time `db:"date" json:"date" validate:"required"`
	Game    string    `db:"game" json:"game" validate:"required"`
	Numbers []int     `db:"numbers" json:"numbers" validate:"required"`
	Stars   []int     `db:"stars" json:"stars" validate:"required"`
}

// NewDraw constructs a validated draw for the given number ranges
func NewDraw(date time.Time, game string, numbers, stars []int, spec NumberSpec) (*Draw, error) {
	draw := &Draw{
		Date:    date,
		Game:    game,
		Numbers: numbers,
		Stars:   stars,
	}
	if err := draw.Validate(spec); err != nil {
		return nil, err
	}
	return draw, nil
}

// NumberSpec describes the number-set shape of a game
type NumberSpec struct {
	MainCount int
	MainMax   int
	StarCount int
	StarMax   int
}

// Validate checks the count, range and distinctness invariants
func (d *Draw) Validate(spec NumberSpec) error {
	if d.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDraw)
	}
	if err := validateNumberSet(d.Numbers, spec.MainCount, spec.MainMax); err != nil {
		return fmt.Errorf("%w: main numbers: %v", ErrInvalidDraw, err)
	}
	if err := validateNumberSet(d.Stars, spec.StarCount, spec.StarMax); err != nil {
		return fmt.Errorf("%w: secondary numbers: %v", ErrInvalidDraw, err)
	}
	return nil
}

func validateNumberSet(values []int, count, max int) error {
	if len(values) != count {
		return fmt.Errorf("expected %d values, got %d", count, len(values))
	}
	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v < 1 || v > max {
			return fmt.Errorf("value %d out of range 1..%d", v, max)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d", v)
		}
		seen[v] = true
	}
	return nil
}
