package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/lotto-better/internal/game"
)

// FDJCSVClient implements DataSource for FDJ's published draw history CSVs.
// The same CSV layout is used for Loto and Euromillions exports, with the
// secondary number column(s) differing per game.
type FDJCSVClient struct {
	httpClient *RateLimitedHTTPClient
	url        string
	game       string
	enabled    bool
	logger     *log.Logger
}

// NewFDJCSVClient creates a new FDJ CSV history client
func NewFDJCSVClient(httpClient *RateLimitedHTTPClient, url, gameName string, enabled bool, logger *log.Logger) *FDJCSVClient {
	return &FDJCSVClient{
		httpClient: httpClient,
		url:        url,
		game:       gameName,
		enabled:    enabled,
		logger:     logger,
	}
}

// FetchDraws retrieves draw results within the specified date range
func (c *FDJCSVClient) FetchDraws(ctx context.Context, startDate, endDate time.Time) ([]DrawData, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	var draws []DrawData
	for _, draw := range all {
		if draw.Date.Before(startDate) || draw.Date.After(endDate) {
			continue
		}
		draws = append(draws, draw)
	}

	return draws, nil
}

// FetchLatest retrieves the most recent draw results
func (c *FDJCSVClient) FetchLatest(ctx context.Context, limit int) ([]DrawData, error) {
	all, err := c.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	// The export is ordered newest first
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (c *FDJCSVClient) fetchAll(ctx context.Context) ([]DrawData, error) {
	if !c.enabled {
		return nil, NewDataSourceError("fdj_csv", ErrCodeNetworkError, dataSourceDisabledMsg, nil)
	}

	resp, err := c.httpClient.Get(ctx, c.url)
	if err != nil {
		return nil, NewDataSourceError("fdj_csv", ErrCodeNetworkError, "failed to download draw history", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, NewDataSourceError("fdj_csv", ErrCodeServerError, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	parser := NewFDJCSVParser(c.game, c.logger)
	draws, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, NewDataSourceError("fdj_csv", ErrCodeInvalidData, "failed to parse draw history", err)
	}

	return draws, nil
}

// Game returns the game this source provides results for
func (c *FDJCSVClient) Game() string {
	return c.game
}

// Name returns the data source name
func (c *FDJCSVClient) Name() string {
	return "fdj_csv"
}

// IsEnabled returns whether this data source is enabled
func (c *FDJCSVClient) IsEnabled() bool {
	return c.enabled
}

// FDJCSVParser parses FDJ draw history exports. The files are
// semicolon-delimited with a header row; draw dates use dd/mm/yyyy.
type FDJCSVParser struct {
	game   string
	logger *log.Logger
}

// NewFDJCSVParser creates a parser for one game's export layout
func NewFDJCSVParser(gameName string, logger *log.Logger) *FDJCSVParser {
	return &FDJCSVParser{game: gameName, logger: logger}
}

// Parse reads an export and returns the draws it contains. Rows that cannot
// be parsed are skipped and logged rather than failing the whole file.
func (p *FDJCSVParser) Parse(r io.Reader) ([]DrawData, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	dateCol, ok := columns["date_de_tirage"]
	if !ok {
		return nil, fmt.Errorf("missing date_de_tirage column")
	}

	mainCols, starCols, err := p.numberColumns(columns)
	if err != nil {
		return nil, err
	}

	var draws []DrawData
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			if p.logger != nil {
				p.logger.Printf("Skipping malformed row %d: %v", line, err)
			}
			continue
		}

		draw, err := p.parseRow(record, dateCol, mainCols, starCols)
		if err != nil {
			if p.logger != nil {
				p.logger.Printf("Skipping row %d: %v", line, err)
			}
			continue
		}
		draws = append(draws, *draw)
	}

	return draws, nil
}

// numberColumns resolves per-game ball and secondary columns from the header
func (p *FDJCSVParser) numberColumns(columns map[string]int) ([]int, []int, error) {
	mainCols := make([]int, 0, 5)
	for i := 1; i <= 5; i++ {
		col, ok := columns[fmt.Sprintf("boule_%d", i)]
		if !ok {
			return nil, nil, fmt.Errorf("missing boule_%d column", i)
		}
		mainCols = append(mainCols, col)
	}

	var starCols []int
	switch p.game {
	case game.Euromillions:
		for i := 1; i <= 2; i++ {
			col, ok := columns[fmt.Sprintf("etoile_%d", i)]
			if !ok {
				return nil, nil, fmt.Errorf("missing etoile_%d column", i)
			}
			starCols = append(starCols, col)
		}
	case game.FrenchLoto:
		col, ok := columns["numero_chance"]
		if !ok {
			return nil, nil, fmt.Errorf("missing numero_chance column")
		}
		starCols = []int{col}
	default:
		return nil, nil, fmt.Errorf("unsupported game %q", p.game)
	}

	return mainCols, starCols, nil
}

func (p *FDJCSVParser) parseRow(record []string, dateCol int, mainCols, starCols []int) (*DrawData, error) {
	date, err := parseFDJDate(field(record, dateCol))
	if err != nil {
		return nil, err
	}

	numbers, err := parseIntFields(record, mainCols)
	if err != nil {
		return nil, fmt.Errorf("main numbers: %w", err)
	}

	stars, err := parseIntFields(record, starCols)
	if err != nil {
		return nil, fmt.Errorf("secondary numbers: %w", err)
	}

	return &DrawData{
		Game:      p.game,
		Date:      date,
		Numbers:   numbers,
		Stars:     stars,
		FetchedAt: time.Now(),
	}, nil
}

// parseFDJDate accepts the dd/mm/yyyy format of current exports and the
// yyyymmdd format found in older archives
func parseFDJDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("02/01/2006", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("20060102", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid draw date %q", s)
}

func parseIntFields(record []string, cols []int) ([]int, error) {
	values := make([]int, 0, len(cols))
	for _, col := range cols {
		v, err := strconv.Atoi(strings.TrimSpace(field(record, col)))
		if err != nil {
			return nil, fmt.Errorf("invalid value in column %d: %w", col, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func field(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}
	return record[col]
}
