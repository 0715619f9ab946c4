package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/services"
	"github.com/tbourn/go-content-gateway/internal/textutil"
)

// TextStatsRequest is the body of POST /tools/text-stats.
type TextStatsRequest struct {
	Text     string `json:"text"               example:"#fit #workout\n#core"`
	Platform string `json:"platform,omitempty" example:"instagram"`
}

// TextStats godoc
// @ID          textStats
// @Summary     Analyze generated text
// @Description Word count, reading time (ceil(words/150) minutes), hashtag count, the single-line form for copying, and the platform's hashtag guidance when platform is given.
// @Tags        Tools
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.TextStatsRequest  true  "Text to analyze"
//
// @Success     200  {object}  textutil.Stats
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid body or platform"
// @Router      /tools/text-stats [post]
func (h *Handlers) TextStats(c *gin.Context) {
	var req TextStatsRequest
	if !bindJSON(c, &req) {
		return
	}
	if p := strings.TrimSpace(req.Platform); p != "" {
		if _, known := domain.ParsePlatform(p); !known {
			fe := services.FieldError{Field: "platform", Reason: "is not supported"}
			failWith(c, http.StatusBadRequest, ErrorResponse{
				Code:   ErrCodeValidation,
				Error:  fe.String(),
				Fields: []services.FieldError{fe},
			})
			return
		}
	}
	ok(c, http.StatusOK, textutil.Analyze(req.Text, req.Platform))
}
