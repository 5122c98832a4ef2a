package service

import (
	"fmt"
	"sync"
	"time"
)

// IngestionMetrics tracks statistics about one ingestion run
type IngestionMetrics struct {
	mu               sync.RWMutex
	StartTime        time.Time
	Duration         time.Duration
	TotalDraws       int
	StoredDraws      int
	Duplicates       int
	ValidationErrors int
	Errors           int
}

// NewIngestionMetrics creates a new metrics tracker
func NewIngestionMetrics() *IngestionMetrics {
	return &IngestionMetrics{
		StartTime: time.Now(),
	}
}

// Reset resets all metrics
func (m *IngestionMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StartTime = time.Now()
	m.Duration = 0
	m.TotalDraws = 0
	m.StoredDraws = 0
	m.Duplicates = 0
	m.ValidationErrors = 0
	m.Errors = 0
}

// SetTotalDraws records how many draws this run fetched
func (m *IngestionMetrics) SetTotalDraws(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TotalDraws = n
}

// SetDuration records the elapsed time of this run
func (m *IngestionMetrics) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duration = d
}

// AddStored adds a batch's worth of stored draws
func (m *IngestionMetrics) AddStored(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoredDraws += n
}

// AddDuplicates adds a batch's worth of skipped duplicates
func (m *IngestionMetrics) AddDuplicates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duplicates += n
}

// TotalCount returns the fetched draw count
func (m *IngestionMetrics) TotalCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.TotalDraws
}

// StoredCount returns the stored draw count
func (m *IngestionMetrics) StoredCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.StoredDraws
}

// RejectedCount returns the validation failure count
func (m *IngestionMetrics) RejectedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ValidationErrors
}

// RecordStored increments stored draw count
func (m *IngestionMetrics) RecordStored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoredDraws++
}

// RecordDuplicate increments duplicate count
func (m *IngestionMetrics) RecordDuplicate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Duplicates++
}

// RecordError increments error count
func (m *IngestionMetrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors++
}

// RecordValidationError increments validation error count
func (m *IngestionMetrics) RecordValidationError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationErrors++
}

// String returns a formatted string representation of metrics
func (m *IngestionMetrics) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	successRate := float64(0)
	if m.TotalDraws > 0 {
		successRate = float64(m.StoredDraws) / float64(m.TotalDraws) * 100
	}

	return fmt.Sprintf(
		"IngestionMetrics{Total=%d, Stored=%d (%.1f%%), Duplicates=%d, ValidationErrors=%d, Errors=%d, Duration=%v}",
		m.TotalDraws,
		m.StoredDraws,
		successRate,
		m.Duplicates,
		m.ValidationErrors,
		m.Errors,
		m.Duration,
	)
}
