// Package repo implements the data persistence layer for the generation
// audit log. This file provides the aggregate queries behind the stats
// endpoint and the analytics overview.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

// KindStatusCount is one GROUP BY bucket of the audit log.
type KindStatusCount struct {
	Kind   domain.Kind
	Status string
	Count  int64
}

// GenerationStats holds audit aggregates.
//
//   - Total:       all rows
//   - Buckets:     counts per (kind, status), ordered by kind then status
//   - AvgLatency:  mean latency in ms across successful rows (0 when none)
//   - LastAt:      newest CreatedAt, or nil when the log is empty
type GenerationStats struct {
	Total      int64
	Buckets    []KindStatusCount
	AvgLatency float64
	LastAt     *time.Time
}

// GenerationsStats computes aggregate metadata over the whole audit log.
func GenerationsStats(ctx context.Context, db *gorm.DB) (GenerationStats, error) {
	var st GenerationStats
	q := db.WithContext(ctx).Model(&domain.Generation{})

	if err := q.Count(&st.Total).Error; err != nil {
		return GenerationStats{}, err
	}
	if st.Total == 0 {
		return st, nil
	}

	if err := db.WithContext(ctx).Model(&domain.Generation{}).
		Select("kind, status, COUNT(*) AS count").
		Group("kind, status").
		Order("kind, status").
		Scan(&st.Buckets).Error; err != nil {
		return GenerationStats{}, err
	}

	var avg struct{ Avg *float64 }
	if err := db.WithContext(ctx).Model(&domain.Generation{}).
		Select("AVG(latency_ms) AS avg").
		Where("status = ?", domain.StatusSuccess).
		Scan(&avg).Error; err != nil {
		return GenerationStats{}, err
	}
	if avg.Avg != nil {
		st.AvgLatency = *avg.Avg
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err := db.WithContext(ctx).Model(&domain.Generation{}).
		Select("created_at").Order("created_at DESC").Limit(1).
		Scan(&row).Error; err != nil {
		return GenerationStats{}, err
	}
	st.LastAt = &row.CreatedAt
	return st, nil
}
