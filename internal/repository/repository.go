package repository

import (
	"fmt"

	"github.com/yourusername/lotto-better/internal/database"
)

// Repositories holds all repository implementations
type Repositories struct {
	Draw           DrawRepository
	BacktestResult BacktestResultRepository
}

// NewRepositories creates and returns all repository implementations
func NewRepositories(db *database.DB) (*Repositories, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return &Repositories{
		Draw:           NewPostgresDrawRepository(db),
		BacktestResult: NewPostgresBacktestResultRepository(db),
	}, nil
}
