// History HTTP handlers.
//
// Read-only views over the generation audit log:
//   - GET /generations         (paginated, ETag support)
//   - GET /generations/stats   (counts per kind and status)
//
// Both answer 503 when the audit log is disabled.
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/services"
	"github.com/tbourn/go-content-gateway/internal/utils"
)

// ListGenerationsResponse wraps a page of audit rows.
type ListGenerationsResponse struct {
	Generations []domain.Generation `json:"generations"`
	Pagination  utils.Page          `json:"pagination"`
}

// GenerationStatsResponse summarizes the audit log.
type GenerationStatsResponse struct {
	Total int64 `json:"total" example:"42"`
	// kind -> status -> count
	ByKind       map[domain.Kind]map[string]int64 `json:"by_kind"`
	AvgLatencyMs float64                          `json:"avg_latency_ms" example:"1834.5"`
	LastAt       *time.Time                       `json:"last_at,omitempty"`
}

func (h *Handlers) historyEnabled(c *gin.Context) bool {
	if h.hist == nil || !h.hist.Enabled() {
		fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "generation history is disabled")
		return false
	}
	return true
}

// ListGenerations godoc
// @ID          listGenerations
// @Summary     List generation history (paginated)
// @Description Returns audit metadata for past generation calls, newest first. Prompt text and output are never stored. Supports weak ETag via If-None-Match.
// @Tags        History
// @Produce     json
//
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"generations:42:1700000000\")
// @Param       kind           query   string  false "Filter by kind"  Enums(ideas, script, hashtags)
// @Param       page           query   int     false "Page number"     minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page"  minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.ListGenerationsResponse
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Unknown kind"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Failure     503  {object} handlers.ErrorResponse "History disabled"
// @Router      /generations [get]
func (h *Handlers) ListGenerations(c *gin.Context) {
	if !h.historyEnabled(c) {
		return
	}
	kind, err := services.ParseHistoryKind(c.Query("kind"))
	if err != nil {
		historyValidation(c, err)
		return
	}
	ctx := c.Request.Context()
	page, pageSize := services.ClampHistoryPage(
		utils.AtoiDefault(c.Query("page"), 1),
		utils.AtoiDefault(c.Query("page_size"), services.DefaultPageSize),
	)

	// ETag pre-check (best effort). Rows are append-only, so count plus the
	// newest timestamp identifies the log state.
	if st, err := h.hist.Stats(ctx); err == nil {
		var ts int64
		if st.LastAt != nil {
			ts = st.LastAt.UnixNano()
		}
		etag := fmt.Sprintf(`W/"generations:%s:%d:%d:%d:%d"`, kind, page, pageSize, st.Total, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	items, total, err := h.hist.ListPage(ctx, string(kind), page, pageSize)
	if err != nil {
		if _, ok := services.AsValidationError(err); ok {
			historyValidation(c, err)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeHistoryFailed, "failed to list generations")
		return
	}

	ok(c, http.StatusOK, ListGenerationsResponse{
		Generations: items,
		Pagination:  utils.NewPage(page, pageSize, total),
	})
}

func historyValidation(c *gin.Context, err error) {
	ve, _ := services.AsValidationError(err)
	failWith(c, http.StatusBadRequest, ErrorResponse{Code: ErrCodeValidation, Error: ve.Error(), Fields: ve.Fields})
}

// GenerationStats godoc
// @ID          generationStats
// @Summary     Generation history statistics
// @Description Counts audit rows per kind and status, with mean latency of successful calls.
// @Tags        History
// @Produce     json
//
// @Success     200  {object} handlers.GenerationStatsResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Failure     503  {object} handlers.ErrorResponse "History disabled"
// @Router      /generations/stats [get]
func (h *Handlers) GenerationStats(c *gin.Context) {
	if !h.historyEnabled(c) {
		return
	}
	st, err := h.hist.Stats(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrHistoryDisabled) {
			fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, err.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeHistoryFailed, "failed to compute generation stats")
		return
	}

	resp := GenerationStatsResponse{
		Total:        st.Total,
		ByKind:       make(map[domain.Kind]map[string]int64, len(domain.Kinds)),
		AvgLatencyMs: st.AvgLatency,
		LastAt:       st.LastAt,
	}
	for _, k := range domain.Kinds {
		resp.ByKind[k] = map[string]int64{}
	}
	for _, b := range st.Buckets {
		if resp.ByKind[b.Kind] == nil {
			resp.ByKind[b.Kind] = map[string]int64{}
		}
		resp.ByKind[b.Kind][b.Status] = b.Count
	}
	ok(c, http.StatusOK, resp)
}
