package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var euromillionsSpec = NumberSpec{MainCount: 5, MainMax: 50, StarCount: 2, StarMax: 12}

func TestNewDraw(t *testing.T) {
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	draw, err := NewDraw(date, "euromillions", []int{3, 17, 22, 38, 50}, []int{2, 9}, euromillionsSpec)
	require.NoError(t, err)
	assert.Equal(t, "euromillions", draw.Game)
	assert.Len(t, draw.Numbers, 5)
}

func TestDrawValidation(t *testing.T) {
	date := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    time.Time
		numbers []int
		stars   []int
	}{
		{"zero date", time.Time{}, []int{1, 2, 3, 4, 5}, []int{1, 2}},
		{"too few numbers", date, []int{1, 2, 3, 4}, []int{1, 2}},
		{"number above range", date, []int{1, 2, 3, 4, 51}, []int{1, 2}},
		{"number below range", date, []int{0, 2, 3, 4, 5}, []int{1, 2}},
		{"duplicate number", date, []int{1, 1, 3, 4, 5}, []int{1, 2}},
		{"star above range", date, []int{1, 2, 3, 4, 5}, []int{1, 13}},
		{"duplicate star", date, []int{1, 2, 3, 4, 5}, []int{2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDraw(tt.date, "euromillions", tt.numbers, tt.stars, euromillionsSpec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDraw)
		})
	}
}

func TestNewCombinationSortsInput(t *testing.T) {
	combo, err := NewCombination([]int{50, 3, 38, 17, 22}, []int{9, 2}, "frequency", 0.8, euromillionsSpec)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 17, 22, 38, 50}, combo.Numbers)
	assert.Equal(t, []int{2, 9}, combo.Stars)
	assert.Equal(t, "frequency", combo.StrategyLabel)
	assert.NotEqual(t, combo.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestCombinationString(t *testing.T) {
	combo, err := NewCombination([]int{1, 2, 3, 4, 5}, []int{6, 7}, "test", 0, euromillionsSpec)
	require.NoError(t, err)
	assert.Equal(t, "1-2-3-4-5 / 6-7", combo.String())
}

func TestCombinationValidation(t *testing.T) {
	_, err := NewCombination([]int{1, 2, 3, 4, 99}, []int{1, 2}, "test", 0, euromillionsSpec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCombination)
}

func TestMatchResultWon(t *testing.T) {
	assert.False(t, MatchResult{PrizeTier: NoPrize}.Won())
	assert.True(t, MatchResult{MainMatches: 5, StarMatches: 2, PrizeTier: 1}.Won())
}

func TestStrategyPerformanceAccessors(t *testing.T) {
	perf := &StrategyPerformance{
		TotalCombinations: 4,
		TotalMainMatches:  6,
		TotalStarMatches:  2,
		PrizeTierCounts:   map[int]int{NoPrize: 2, 1: 1, 9: 1},
	}

	assert.Equal(t, 2, perf.PrizeWins())
	assert.Equal(t, 1, perf.JackpotCount())
	assert.Equal(t, 1, perf.BestTier())
	assert.InDelta(t, 1.5, perf.AvgMainMatches(), 1e-9)
	assert.InDelta(t, 0.5, perf.AvgStarMatches(), 1e-9)
}
