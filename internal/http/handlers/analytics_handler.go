package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AnalyticsOverview godoc
// @ID          analyticsOverview
// @Summary     Dashboard overview
// @Description Fixed sample analytics (reach, engagement, top content, trends) with display strings such as "2.5M". generations_total is live when the audit log is enabled.
// @Tags        Analytics
// @Produce     json
//
// @Success     200  {object} services.Overview
// @Failure     503  {object} handlers.ErrorResponse "Analytics not configured"
// @Router      /analytics/overview [get]
func (h *Handlers) AnalyticsOverview(c *gin.Context) {
	if h.an == nil {
		fail(c, http.StatusServiceUnavailable, ErrCodeUnavailable, "analytics not configured")
		return
	}
	ok(c, http.StatusOK, h.an.Overview(c.Request.Context()))
}
