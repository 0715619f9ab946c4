package repo

import (
	"context"
	"testing"
	"time"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

func TestGenerationsStats_Error_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := GenerationsStats(context.Background(), db); err == nil {
		t.Fatalf("expected error due to missing generations table")
	}
}

func TestGenerationsStats_Empty(t *testing.T) {
	db := newTestDB(t, &domain.Generation{})
	st, err := GenerationsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("GenerationsStats: %v", err)
	}
	if st.Total != 0 || len(st.Buckets) != 0 || st.LastAt != nil || st.AvgLatency != 0 {
		t.Fatalf("expected zero stats, got %+v", st)
	}
}

func TestGenerationsStats_BucketsLatencyAndLast(t *testing.T) {
	db := newTestDB(t, &domain.Generation{})
	base := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	seedGen(t, db, "1", domain.KindIdeas, domain.StatusSuccess, base, 100)
	seedGen(t, db, "2", domain.KindIdeas, domain.StatusSuccess, base.Add(time.Second), 300)
	seedGen(t, db, "3", domain.KindIdeas, domain.StatusValidationFailed, base.Add(2*time.Second), 0)
	seedGen(t, db, "4", domain.KindHashtags, domain.StatusProviderFailed, base.Add(3*time.Second), 5000)
	last := base.Add(time.Hour)
	seedGen(t, db, "5", domain.KindScript, domain.StatusSuccess, last, 200)

	st, err := GenerationsStats(context.Background(), db)
	if err != nil {
		t.Fatalf("GenerationsStats: %v", err)
	}
	if st.Total != 5 {
		t.Fatalf("Total = %d; want 5", st.Total)
	}
	if st.AvgLatency != 200 {
		t.Fatalf("AvgLatency = %v; want 200 (successes only)", st.AvgLatency)
	}
	if st.LastAt == nil || !st.LastAt.Equal(last) {
		t.Fatalf("LastAt = %v; want %v", st.LastAt, last)
	}

	want := []KindStatusCount{
		{domain.KindHashtags, domain.StatusProviderFailed, 1},
		{domain.KindIdeas, domain.StatusSuccess, 2},
		{domain.KindIdeas, domain.StatusValidationFailed, 1},
		{domain.KindScript, domain.StatusSuccess, 1},
	}
	if len(st.Buckets) != len(want) {
		t.Fatalf("buckets = %+v; want %+v", st.Buckets, want)
	}
	for i := range want {
		if st.Buckets[i] != want[i] {
			t.Fatalf("bucket[%d] = %+v; want %+v", i, st.Buckets[i], want[i])
		}
	}
}
