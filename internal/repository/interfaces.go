package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/lotto-better/internal/models"
)

// DrawRepository defines the interface for historical draw data access
type DrawRepository interface {
	Insert(ctx context.Context, draw *models.Draw) error
	InsertBatch(ctx context.Context, draws []*models.Draw) (int, error)
	GetAllByGame(ctx context.Context, game string) ([]*models.Draw, error)
	GetMostRecent(ctx context.Context, game string, limit int) ([]*models.Draw, error)
	GetByDateRange(ctx context.Context, game string, start, end time.Time) ([]*models.Draw, error)
	CountByGame(ctx context.Context, game string) (int, error)
}

// BacktestResultRepository defines backtest run persistence
type BacktestResultRepository interface {
	Create(ctx context.Context, result *models.BacktestResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.BacktestResult, error)
	GetRecent(ctx context.Context, game string, limit int) ([]*models.BacktestResult, error)
	GetByDateRange(ctx context.Context, game string, start, end time.Time) ([]*models.BacktestResult, error)
}
