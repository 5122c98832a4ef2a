package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/yourusername/lotto-better/internal/game"
)

// EuromillionsAPIClient implements DataSource for a public Euromillions draw API
type EuromillionsAPIClient struct {
	httpClient *RateLimitedHTTPClient
	baseURL    string
	apiKey     string
	enabled    bool
	logger     *log.Logger
}

// euromillionsDraw represents a draw in the API's wire format
type euromillionsDraw struct {
	ID      int    `json:"id"`
	Date    string `json:"date"`
	Numbers []int  `json:"numbers"`
	Stars   []int  `json:"stars"`
}

// NewEuromillionsAPIClient creates a new Euromillions API client
func NewEuromillionsAPIClient(httpClient *RateLimitedHTTPClient, baseURL, apiKey string, enabled bool, logger *log.Logger) *EuromillionsAPIClient {
	if baseURL == "" {
		baseURL = "https://euromillions.api.pedromealha.dev/v1"
	}
	return &EuromillionsAPIClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchDraws retrieves draw results within the specified date range
func (c *EuromillionsAPIClient) FetchDraws(ctx context.Context, startDate, endDate time.Time) ([]DrawData, error) {
	if !c.enabled {
		return nil, NewDataSourceError("euromillions_api", ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/draws?start=%s&end=%s", c.baseURL, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	return c.fetch(ctx, url)
}

// FetchLatest retrieves the most recent draw results
func (c *EuromillionsAPIClient) FetchLatest(ctx context.Context, limit int) ([]DrawData, error) {
	if !c.enabled {
		return nil, NewDataSourceError("euromillions_api", ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	url := fmt.Sprintf("%s/draws?limit=%d&order=desc", c.baseURL, limit)
	return c.fetch(ctx, url)
}

func (c *EuromillionsAPIClient) fetch(ctx context.Context, url string) ([]DrawData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, NewDataSourceError("euromillions_api", ErrCodeNetworkError, "failed to create request", err)
	}

	if c.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, NewDataSourceError("euromillions_api", ErrCodeNetworkError, "failed to fetch draws", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, NewDataSourceError("euromillions_api", ErrCodeAuthenticationFailed, "invalid API key", nil)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewDataSourceError("euromillions_api", ErrCodeRateLimitExceeded, "rate limit exceeded", nil)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, NewDataSourceError("euromillions_api", ErrCodeServerError, fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var apiDraws []euromillionsDraw
	if err := json.NewDecoder(resp.Body).Decode(&apiDraws); err != nil {
		return nil, NewDataSourceError("euromillions_api", ErrCodeInvalidData, "failed to parse response", err)
	}

	draws := make([]DrawData, 0, len(apiDraws))
	for _, apiDraw := range apiDraws {
		draw, err := c.convertDraw(&apiDraw)
		if err != nil {
			if c.logger != nil {
				c.logger.Printf("Failed to convert draw %d: %v", apiDraw.ID, err)
			}
			continue
		}
		draws = append(draws, *draw)
	}

	return draws, nil
}

// Game returns the game this source provides results for
func (c *EuromillionsAPIClient) Game() string {
	return game.Euromillions
}

// Name returns the data source name
func (c *EuromillionsAPIClient) Name() string {
	return "euromillions_api"
}

// IsEnabled returns whether this data source is enabled
func (c *EuromillionsAPIClient) IsEnabled() bool {
	return c.enabled
}

// convertDraw converts the API wire format to DrawData
func (c *EuromillionsAPIClient) convertDraw(apiDraw *euromillionsDraw) (*DrawData, error) {
	date, err := time.Parse("2006-01-02", apiDraw.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid draw date %q: %w", apiDraw.Date, err)
	}

	if len(apiDraw.Numbers) == 0 || len(apiDraw.Stars) == 0 {
		return nil, fmt.Errorf("draw %d is missing numbers", apiDraw.ID)
	}

	return &DrawData{
		SourceID:  fmt.Sprintf("%d", apiDraw.ID),
		Game:      game.Euromillions,
		Date:      date,
		Numbers:   apiDraw.Numbers,
		Stars:     apiDraw.Stars,
		FetchedAt: time.Now(),
	}, nil
}
