package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yourusername/lotto-better/internal/database"
	"github.com/yourusername/lotto-better/internal/models"
)

const errScanBacktestResult = "failed to scan backtest result: %w"

// PostgresBacktestResultRepository implements BacktestResultRepository for PostgreSQL
type PostgresBacktestResultRepository struct {
	db *database.DB
}

// NewPostgresBacktestResultRepository creates a new backtest result repository
func NewPostgresBacktestResultRepository(db *database.DB) BacktestResultRepository {
	return &PostgresBacktestResultRepository{db: db}
}

// Create inserts a new backtest result
func (r *PostgresBacktestResultRepository) Create(ctx context.Context, result *models.BacktestResult) error {
	query := `
		INSERT INTO backtest_results (id, game, run_date, training_draws, test_draws,
		                              combinations, rankings, failures, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		result.ID, result.Game, result.RunDate, result.TrainingDraws, result.TestDraws,
		result.Combinations, result.Rankings, result.Failures,
	)
	if err != nil {
		return fmt.Errorf("failed to create backtest result: %w", err)
	}

	return nil
}

// GetByID retrieves a backtest result by ID
func (r *PostgresBacktestResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.BacktestResult, error) {
	query := `
		SELECT id, game, run_date, training_draws, test_draws, combinations,
		       rankings, failures, created_at
		FROM backtest_results WHERE id = $1
	`

	result := &models.BacktestResult{}
	err := r.db.GetPool().QueryRow(ctx, query, id).Scan(
		&result.ID, &result.Game, &result.RunDate, &result.TrainingDraws, &result.TestDraws,
		&result.Combinations, &result.Rankings, &result.Failures, &result.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get backtest result: %w", err)
	}

	return result, nil
}

// GetRecent retrieves the latest backtest results for a game, newest first
func (r *PostgresBacktestResultRepository) GetRecent(ctx context.Context, game string, limit int) ([]*models.BacktestResult, error) {
	query := `
		SELECT id, game, run_date, training_draws, test_draws, combinations,
		       rankings, failures, created_at
		FROM backtest_results
		WHERE game = $1
		ORDER BY run_date DESC
		LIMIT $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent backtest results: %w", err)
	}
	defer rows.Close()

	return scanBacktestResults(rows)
}

// GetByDateRange retrieves backtest results within a date range, newest first
func (r *PostgresBacktestResultRepository) GetByDateRange(ctx context.Context, game string, start, end time.Time) ([]*models.BacktestResult, error) {
	query := `
		SELECT id, game, run_date, training_draws, test_draws, combinations,
		       rankings, failures, created_at
		FROM backtest_results
		WHERE game = $1 AND run_date >= $2 AND run_date <= $3
		ORDER BY run_date DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, game, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query backtest results by date range: %w", err)
	}
	defer rows.Close()

	return scanBacktestResults(rows)
}

func scanBacktestResults(rows pgx.Rows) ([]*models.BacktestResult, error) {
	var results []*models.BacktestResult
	for rows.Next() {
		result := &models.BacktestResult{}
		err := rows.Scan(
			&result.ID, &result.Game, &result.RunDate, &result.TrainingDraws, &result.TestDraws,
			&result.Combinations, &result.Rankings, &result.Failures, &result.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanBacktestResult, err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
