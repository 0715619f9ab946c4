// Package services – HistoryService
//
// HistoryService owns the generation audit log. The Gateway writes to it
// through the Recorder interface; the history endpoints read from it. Reads
// are never part of serving a generation.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/repo"
	"github.com/tbourn/go-content-gateway/internal/utils"
)

// History page bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ClampHistoryPage applies the history page bounds.
func ClampHistoryPage(page, pageSize int) (int, int) {
	return utils.ClampPage(page, pageSize, DefaultPageSize, MaxPageSize)
}

// ParseHistoryKind normalizes a kind filter. Empty means all kinds.
func ParseHistoryKind(kind string) (domain.Kind, error) {
	k := domain.Kind(strings.ToLower(strings.TrimSpace(kind)))
	if k != "" && !k.Valid() {
		return "", &ValidationError{Fields: []FieldError{{Field: "kind", Reason: "must be one of ideas, script, hashtags"}}}
	}
	return k, nil
}

// HistoryService reads and appends audit rows.
type HistoryService struct {
	DB *gorm.DB
}

// NewHistoryService returns a HistoryService, or nil when db is nil so that
// callers can treat "audit disabled" uniformly.
func NewHistoryService(db *gorm.DB) *HistoryService {
	if db == nil {
		return nil
	}
	return &HistoryService{DB: db}
}

// Enabled reports whether the audit log is backed by a database.
func (s *HistoryService) Enabled() bool { return s != nil && s.DB != nil }

// Record implements Recorder.
func (s *HistoryService) Record(ctx context.Context, g *domain.Generation) error {
	if !s.Enabled() {
		return nil
	}
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Record",
		trace.WithAttributes(
			attribute.String("generation.kind", string(g.Kind)),
			attribute.String("generation.status", g.Status),
		),
	)
	defer span.End()

	return repo.CreateGeneration(ctx, s.DB, g)
}

// ListPage returns one page of audit rows, newest first, optionally filtered
// by kind. Page and page size are clamped with ClampHistoryPage.
func (s *HistoryService) ListPage(ctx context.Context, kind string, page, pageSize int) ([]domain.Generation, int64, error) {
	if !s.Enabled() {
		return nil, 0, ErrHistoryDisabled
	}

	k, err := ParseHistoryKind(kind)
	if err != nil {
		return nil, 0, err
	}
	page, pageSize = ClampHistoryPage(page, pageSize)

	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("generation.kind", string(k)),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	total, err := repo.CountGenerations(ctx, s.DB, k)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Generation{}, 0, nil
	}
	items, err := repo.ListGenerationsPage(ctx, s.DB, k, (page-1)*pageSize, pageSize)
	return items, total, err
}

// Stats returns audit aggregates.
func (s *HistoryService) Stats(ctx context.Context) (repo.GenerationStats, error) {
	if !s.Enabled() {
		return repo.GenerationStats{}, ErrHistoryDisabled
	}
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Stats")
	defer span.End()

	return repo.GenerationsStats(ctx, s.DB)
}

// Total returns the number of audit rows.
func (s *HistoryService) Total(ctx context.Context) (int64, error) {
	if !s.Enabled() {
		return 0, ErrHistoryDisabled
	}
	return repo.CountGenerations(ctx, s.DB, "")
}
