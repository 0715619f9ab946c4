// Package services – AnalyticsService
//
// AnalyticsService serves the dashboard overview. The reach, engagement and
// top-content figures are fixed sample data; the only live number is the
// count of generations taken from the audit log when it is enabled.
package services

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/tbourn/go-content-gateway/internal/textutil"
)

// Metric is a raw count with its compact display form.
type Metric struct {
	Value   int64  `json:"value"   example:"2456789"`
	Display string `json:"display" example:"2.5M"`
}

func metric(n int64) Metric { return Metric{Value: n, Display: textutil.FormatCount(n)} }

// OverviewTotals are the headline cards.
type OverviewTotals struct {
	TotalReach       Metric  `json:"total_reach"`
	Engagement       float64 `json:"engagement"        example:"8.7"`
	ViralScore       int     `json:"viral_score"       example:"92"`
	ContentGenerated Metric  `json:"content_generated"`
}

// PlatformStat is reach and engagement for one platform.
type PlatformStat struct {
	Platform   string  `json:"platform"   example:"tiktok"`
	Label      string  `json:"label"      example:"TikTok"`
	Reach      Metric  `json:"reach"`
	Engagement float64 `json:"engagement" example:"12.3"`
}

// ContentStat is one top-performing post.
type ContentStat struct {
	Title      string `json:"title"       example:"5 Productivity Hacks That Actually Work"`
	Views      Metric `json:"views"`
	Likes      Metric `json:"likes"`
	Shares     Metric `json:"shares"`
	Comments   Metric `json:"comments"`
	ViralScore int    `json:"viral_score" example:"94"`
}

// Trend is a month-over-month change in percent.
type Trend struct {
	Metric string  `json:"metric" example:"Reach"`
	Change float64 `json:"change" example:"23.5"`
	Up     bool    `json:"up"     example:"true"`
}

// Overview is the full analytics payload.
type Overview struct {
	Overview         OverviewTotals `json:"overview"`
	Platforms        []PlatformStat `json:"platforms"`
	TopContent       []ContentStat  `json:"top_content"`
	Trends           []Trend        `json:"trends"`
	GenerationsTotal *int64         `json:"generations_total,omitempty" example:"42"`
	Sample           bool           `json:"sample" example:"true"`
}

// GenerationCounter is the slice of HistoryService used for the live count.
type GenerationCounter interface {
	Enabled() bool
	Total(ctx context.Context) (int64, error)
}

// AnalyticsService builds the overview.
type AnalyticsService struct {
	History GenerationCounter // optional
}

// Overview returns the sample dashboard, adding generations_total when the
// audit log is enabled. A failing count is dropped rather than failing the
// whole overview.
func (s *AnalyticsService) Overview(ctx context.Context) Overview {
	ctx, span := otel.Tracer("services/AnalyticsService").Start(ctx, "Overview")
	defer span.End()

	out := sampleOverview()
	if s != nil && s.History != nil && s.History.Enabled() {
		if n, err := s.History.Total(ctx); err == nil {
			out.GenerationsTotal = &n
		} else {
			span.RecordError(err)
		}
	}
	return out
}

func sampleOverview() Overview {
	return Overview{
		Overview: OverviewTotals{
			TotalReach:       metric(2456789),
			Engagement:       8.7,
			ViralScore:       92,
			ContentGenerated: metric(1247),
		},
		Platforms: []PlatformStat{
			{Platform: "tiktok", Label: "TikTok", Reach: metric(1200000), Engagement: 12.3},
			{Platform: "instagram", Label: "Instagram", Reach: metric(856000), Engagement: 6.8},
			{Platform: "youtube", Label: "YouTube", Reach: metric(340000), Engagement: 4.2},
			{Platform: "linkedin", Label: "LinkedIn", Reach: metric(60789), Engagement: 3.1},
		},
		TopContent: []ContentStat{
			content("5 Productivity Hacks That Actually Work", 234567, 12453, 2341, 567, 94),
			content("Why Your Marketing Strategy Is Failing", 189234, 8765, 1876, 432, 88),
			content("The $100K Revenue Secret Nobody Talks About", 456789, 23456, 4567, 1234, 96),
			content("I Tried Every Productivity App for 30 Days", 123456, 6789, 1234, 345, 85),
		},
		Trends: []Trend{
			{Metric: "Reach", Change: 23.5, Up: true},
			{Metric: "Engagement", Change: 15.2, Up: true},
			{Metric: "Viral Score", Change: -2.1, Up: false},
			{Metric: "Content Created", Change: 45.8, Up: true},
		},
		Sample: true,
	}
}

func content(title string, views, likes, shares, comments int64, score int) ContentStat {
	return ContentStat{
		Title:      title,
		Views:      metric(views),
		Likes:      metric(likes),
		Shares:     metric(shares),
		Comments:   metric(comments),
		ViralScore: score,
	}
}
