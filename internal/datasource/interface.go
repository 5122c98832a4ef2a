package datasource

import (
	"context"
	"errors"
	"time"
)

// DataSource defines the interface for fetching draw results from external providers
type DataSource interface {
	// FetchDraws retrieves draw results within the specified date range
	FetchDraws(ctx context.Context, startDate, endDate time.Time) ([]DrawData, error)

	// FetchLatest retrieves the most recent draw results
	FetchLatest(ctx context.Context, limit int) ([]DrawData, error)

	// Game returns the game this source provides results for
	Game() string

	// Name returns the name of the data source
	Name() string

	// IsEnabled returns whether this data source is currently enabled
	IsEnabled() bool
}

// DrawData represents a normalized draw result from any data source
type DrawData struct {
	SourceID  string    `json:"source_id"`  // Provider's unique draw ID, if any
	Game      string    `json:"game"`       // Game the draw belongs to
	Date      time.Time `json:"date"`       // Draw date
	Numbers   []int     `json:"numbers"`    // Main numbers as drawn
	Stars     []int     `json:"stars"`      // Secondary numbers as drawn
	FetchedAt time.Time `json:"fetched_at"` // When data was fetched
}

// DataSourceError represents errors from data source operations
type DataSourceError struct {
	Source  string // Data source name
	Code    string // Error code (e.g., "rate_limit_exceeded")
	Message string // Error message
	Err     error  // Underlying error
}

func (e DataSourceError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Source + ": " + e.Code + ": " + e.Message
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
	ErrCodeUnknown              = "unknown"
)

const dataSourceDisabledMsg = "data source disabled"

// Error constructors
var (
	ErrRateLimitExceeded    = errors.New("rate limit exceeded")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotFound             = errors.New("data not found")
	ErrInvalidData          = errors.New("invalid data format")
	ErrNetworkError         = errors.New("network error")
	ErrServerError          = errors.New("server error")
)

// NewDataSourceError creates a new data source error
func NewDataSourceError(source, code, message string, err error) DataSourceError {
	return DataSourceError{
		Source:  source,
		Code:    code,
		Message: message,
		Err:     err,
	}
}
