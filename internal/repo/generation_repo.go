// Package repo implements the data persistence layer for the generation
// audit log. This file provides the thin repository functions for the
// Generation model.
//
// All functions are context-aware and accept a *gorm.DB handle. They hold no
// business logic: the gateway appends rows, the history endpoints read them.
// The gateway itself never reads this table while serving a generation.
//
// Functions:
//
//   - CreateGeneration(ctx, db, g) -> error
//     Inserts one row, assigning a UUID and UTC timestamp when missing.
//
//   - CountGenerations(ctx, db, kind) -> (int64, error)
//     Counts rows, optionally filtered by kind ("" means all).
//
//   - ListGenerationsPage(ctx, db, kind, offset, limit) -> []domain.Generation, error
//     Returns a page of rows, newest first.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

// CreateGeneration appends g to the audit log. ID and CreatedAt are filled
// in when empty; the (possibly updated) g is persisted as-is otherwise.
func CreateGeneration(ctx context.Context, db *gorm.DB, g *domain.Generation) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	return db.WithContext(ctx).Create(g).Error
}

func byKind(q *gorm.DB, kind domain.Kind) *gorm.DB {
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	return q
}

// CountGenerations returns the number of audit rows, optionally for one kind.
func CountGenerations(ctx context.Context, db *gorm.DB, kind domain.Kind) (int64, error) {
	var total int64
	err := byKind(db.WithContext(ctx).Model(&domain.Generation{}), kind).
		Count(&total).Error
	return total, err
}

// ListGenerationsPage returns audit rows ordered by creation time descending.
// Use CountGenerations for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListGenerationsPage(ctx context.Context, db *gorm.DB, kind domain.Kind, offset, limit int) ([]domain.Generation, error) {
	var out []domain.Generation
	err := byKind(db.WithContext(ctx), kind).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}
