// Package metrics records one row of run accounting per shopping-list
// generation, for usage history and retention cleanup.
package metrics

import (
	"context"
	"database/sql"
	"time"

	"smart-shopping-cart/internal/metrics/metricsdb"
)

// RunMetric records metadata for a single shopping-list generation.
type RunMetric struct {
	UserID       string
	RecipeCount  int
	RawItemCount int
	ItemCount    int
	DurationMS   int64
	Timestamp    time.Time
}

// Store handles persistence of run metrics to SQLite.
type Store struct {
	queries *metricsdb.Queries
	db      *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{
		queries: metricsdb.New(db),
		db:      db,
	}
}

// Record saves a run metric to the database.
func (s *Store) Record(ctx context.Context, m RunMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	return s.queries.InsertRunMetric(ctx, metricsdb.InsertRunMetricParams{
		UserID:       m.UserID,
		RecipeCount:  int64(m.RecipeCount),
		RawItemCount: int64(m.RawItemCount),
		ItemCount:    int64(m.ItemCount),
		DurationMs:   m.DurationMS,
		CreatedAt:    ts,
	})
}

// ListRecent retrieves the N most recent run metrics, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]RunMetric, error) {
	rows, err := s.queries.ListRecentRunMetrics(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	var metrics []RunMetric
	for _, r := range rows {
		metrics = append(metrics, RunMetric{
			UserID:       r.UserID,
			RecipeCount:  int(r.RecipeCount),
			RawItemCount: int(r.RawItemCount),
			ItemCount:    int(r.ItemCount),
			DurationMS:   r.DurationMs,
			Timestamp:    r.CreatedAt,
		})
	}
	return metrics, nil
}

// Cleanup removes records older than the specified number of days.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) error {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	return s.queries.CleanupRunMetrics(ctx, threshold)
}
