package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourusername/lotto-better/internal/database"
	"github.com/yourusername/lotto-better/internal/models"
)

const errScanDraw = "failed to scan draw: %w"

// PostgresDrawRepository implements DrawRepository for PostgreSQL
type PostgresDrawRepository struct {
	db *database.DB
}

// NewPostgresDrawRepository creates a new draw repository
func NewPostgresDrawRepository(db *database.DB) DrawRepository {
	return &PostgresDrawRepository{db: db}
}

// Insert inserts a new draw. A draw already stored for the same game and
// date maps to ErrDuplicateKey.
func (r *PostgresDrawRepository) Insert(ctx context.Context, draw *models.Draw) error {
	query := `
		INSERT INTO draws (game, date, numbers, stars)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.GetPool().Exec(ctx, query,
		draw.Game, draw.Date, draw.Numbers, draw.Stars,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert draw: %w", err)
	}

	return nil
}

// InsertBatch inserts draws in one transaction, skipping duplicates.
// Returns the number of draws actually stored.
func (r *PostgresDrawRepository) InsertBatch(ctx context.Context, draws []*models.Draw) (int, error) {
	query := `
		INSERT INTO draws (game, date, numbers, stars)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (game, date) DO NOTHING
	`

	inserted := 0
	err := r.db.WithTransaction(ctx, func(txCtx context.Context, tx pgx.Tx) error {
		for _, draw := range draws {
			tag, err := tx.Exec(txCtx, query,
				draw.Game, draw.Date, draw.Numbers, draw.Stars,
			)
			if err != nil {
				return fmt.Errorf("failed to insert draw for %s: %w", draw.Date.Format("2006-01-02"), err)
			}
			inserted += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// GetAllByGame retrieves every stored draw for a game, newest first
func (r *PostgresDrawRepository) GetAllByGame(ctx context.Context, game string) ([]*models.Draw, error) {
	query := `
		SELECT game, date, numbers, stars
		FROM draws
		WHERE game = $1
		ORDER BY date DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, game)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	return scanDraws(rows)
}

// GetMostRecent retrieves the latest draws for a game, newest first
func (r *PostgresDrawRepository) GetMostRecent(ctx context.Context, game string, limit int) ([]*models.Draw, error) {
	query := `
		SELECT game, date, numbers, stars
		FROM draws
		WHERE game = $1
		ORDER BY date DESC
		LIMIT $2
	`

	rows, err := r.db.GetPool().Query(ctx, query, game, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent draws: %w", err)
	}
	defer rows.Close()

	return scanDraws(rows)
}

// GetByDateRange retrieves draws within a date range, newest first
func (r *PostgresDrawRepository) GetByDateRange(ctx context.Context, game string, start, end time.Time) ([]*models.Draw, error) {
	query := `
		SELECT game, date, numbers, stars
		FROM draws
		WHERE game = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC
	`

	rows, err := r.db.GetPool().Query(ctx, query, game, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws by date range: %w", err)
	}
	defer rows.Close()

	return scanDraws(rows)
}

// CountByGame counts stored draws for a game
func (r *PostgresDrawRepository) CountByGame(ctx context.Context, game string) (int, error) {
	var count int
	err := r.db.GetPool().QueryRow(ctx,
		"SELECT COUNT(*) FROM draws WHERE game = $1", game,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count draws: %w", err)
	}

	return count, nil
}

func scanDraws(rows pgx.Rows) ([]*models.Draw, error) {
	var draws []*models.Draw
	for rows.Next() {
		draw := &models.Draw{}
		err := rows.Scan(&draw.Game, &draw.Date, &draw.Numbers, &draw.Stars)
		if err != nil {
			return nil, fmt.Errorf(errScanDraw, err)
		}
		draws = append(draws, draw)
	}

	return draws, rows.Err()
}
