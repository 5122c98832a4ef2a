package service

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/datasource"
	"github.com/yourusername/lotto-better/internal/game"
)

// DataValidator validates fetched draw data before it reaches storage
type DataValidator struct {
	logger *logrus.Logger
}

// NewDataValidator creates a new data validator
func NewDataValidator(logger *logrus.Logger) *DataValidator {
	return &DataValidator{logger: logger}
}

// ValidateDraw validates a fetched draw against its game's number ranges.
// Returns a list of human-readable problems; empty means valid.
func (v *DataValidator) ValidateDraw(draw *datasource.DrawData, def *game.Definition) []string {
	var errors []string

	if draw.Game != def.Name {
		errors = append(errors, fmt.Sprintf("game mismatch: expected %s, got %s", def.Name, draw.Game))
	}

	if draw.Date.IsZero() {
		errors = append(errors, "date is required")
	}

	// A draw result dated in the future is a provider error
	if draw.Date.After(time.Now().Add(24 * time.Hour)) {
		errors = append(errors, fmt.Sprintf("draw date %s is in the future", draw.Date.Format("2006-01-02")))
	}

	errors = append(errors, validateNumberSet("main numbers", draw.Numbers, def.Spec.MainCount, def.Spec.MainMax)...)
	errors = append(errors, validateNumberSet("secondary numbers", draw.Stars, def.Spec.StarCount, def.Spec.StarMax)...)

	return errors
}

// ValidateDrawUniqueness checks a draw against already-seen dates in a batch
func (v *DataValidator) ValidateDrawUniqueness(draw *datasource.DrawData, seen map[time.Time]bool) error {
	day := draw.Date.Truncate(24 * time.Hour)
	if seen[day] {
		return fmt.Errorf("duplicate draw for %s", day.Format("2006-01-02"))
	}
	seen[day] = true
	return nil
}

func validateNumberSet(label string, values []int, count, max int) []string {
	var errors []string

	if len(values) != count {
		errors = append(errors, fmt.Sprintf("%s: expected %d values, got %d", label, count, len(values)))
		return errors
	}

	seen := make(map[int]bool, len(values))
	for _, v := range values {
		if v < 1 || v > max {
			errors = append(errors, fmt.Sprintf("%s: value %d out of range 1..%d", label, v, max))
		}
		if seen[v] {
			errors = append(errors, fmt.Sprintf("%s: duplicate value %d", label, v))
		}
		seen[v] = true
	}

	return errors
}
