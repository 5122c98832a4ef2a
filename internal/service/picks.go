package service

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/repository"
	"github.com/yourusername/lotto-better/internal/strategy"
)

// PickService generates suggested combinations for the next draw using a
// chosen strategy trained on the full stored history
type PickService struct {
	drawRepo repository.DrawRepository
	logger   *logrus.Logger
}

// NewPickService creates a new pick service
func NewPickService(drawRepo repository.DrawRepository, logger *logrus.Logger) *PickService {
	return &PickService{
		drawRepo: drawRepo,
		logger:   logger,
	}
}

// GeneratePicks trains the named strategy on every stored draw for the game
// and returns count suggested combinations
func (s *PickService) GeneratePicks(ctx context.Context, gameName, strategyName string, count int, seed int64) ([]*models.Combination, error) {
	def, err := game.ByName(gameName)
	if err != nil {
		return nil, err
	}

	generator, err := strategy.Resolve(strategyName, def)
	if err != nil {
		return nil, err
	}

	draws, err := s.drawRepo.GetAllByGame(ctx, gameName)
	if err != nil {
		return nil, fmt.Errorf("failed to load draw history: %w", err)
	}
	if len(draws) == 0 {
		return nil, models.ErrInsufficientData
	}

	rng := rand.New(rand.NewSource(seed))
	combos, err := generator.Generate(draws, count, rng)
	if err != nil {
		return nil, fmt.Errorf("strategy %s failed: %w", strategyName, err)
	}

	metrics.CombinationsGeneratedTotal.WithLabelValues(gameName, strategyName).Add(float64(len(combos)))
	s.logger.WithFields(logrus.Fields{
		"game":     gameName,
		"strategy": strategyName,
		"count":    len(combos),
		"history":  len(draws),
	}).Info("Generated suggested combinations")

	return combos, nil
}
