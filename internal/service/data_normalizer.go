package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/datasource"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// DataNormalizer converts fetched draw data into the storage model
type DataNormalizer struct {
	logger *logrus.Logger
}

// NewDataNormalizer creates a new data normalizer
func NewDataNormalizer(logger *logrus.Logger) *DataNormalizer {
	return &DataNormalizer{logger: logger}
}

// NormalizeDraw converts DrawData to a models.Draw. Numbers are stored in
// ascending order regardless of the order drawn, and dates are truncated
// to midnight UTC so one draw per (game, date) holds.
func (n *DataNormalizer) NormalizeDraw(data *datasource.DrawData, def *game.Definition) (*models.Draw, error) {
	numbers := sortedCopy(data.Numbers)
	stars := sortedCopy(data.Stars)

	date := time.Date(
		data.Date.Year(), data.Date.Month(), data.Date.Day(),
		0, 0, 0, 0, time.UTC,
	)

	draw, err := models.NewDraw(date, data.Game, numbers, stars, def.Spec)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize draw for %s: %w", date.Format("2006-01-02"), err)
	}

	return draw, nil
}

func sortedCopy(values []int) []int {
	out := make([]int, len(values))
	copy(out, values)
	sort.Ints(out)
	return out
}
