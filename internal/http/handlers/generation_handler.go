// Generation HTTP handlers.
//
// This file exposes the three gateway endpoints:
//   - POST /generate-ideas
//   - POST /generate-script
//   - POST /generate-hashtags
//
// Handlers are transport-thin: they decode the body, call the gateway and
// translate its two error kinds into 400 and 500 responses.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/http/middleware"
	"github.com/tbourn/go-content-gateway/internal/repo"
	"github.com/tbourn/go-content-gateway/internal/services"
)

//
// Service contracts (context-aware)
//

// Generator is the generation gateway consumed by the HTTP layer.
//
// Implementations must be safe for concurrent use and honor ctx.
type Generator interface {
	RequestIdeas(ctx context.Context, req domain.IdeaRequest) (*domain.Result, error)
	RequestScript(ctx context.Context, req domain.ScriptRequest) (*domain.Result, error)
	RequestHashtags(ctx context.Context, req domain.HashtagRequest) (*domain.Result, error)
}

// History reads the generation audit log.
type History interface {
	Enabled() bool
	ListPage(ctx context.Context, kind string, page, pageSize int) ([]domain.Generation, int64, error)
	Stats(ctx context.Context) (repo.GenerationStats, error)
}

// Analytics serves the dashboard overview.
type Analytics interface {
	Overview(ctx context.Context) services.Overview
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints of the gateway.
type Handlers struct {
	gen  Generator
	hist History
	an   Analytics
}

// New constructs Handlers. hist and an may be nil; the routes backed by them
// then answer 503.
func New(gen Generator, hist History, an Analytics) *Handlers {
	return &Handlers{gen: gen, hist: hist, an: an}
}

//
// DTOs
//

// IdeasResponse carries the provider text verbatim.
type IdeasResponse struct {
	Ideas string `json:"ideas" example:"1. Desk stretches in 30 seconds\n2. ..."`
}

// ScriptResponse carries the provider text verbatim.
type ScriptResponse struct {
	Script string `json:"script" example:"HOOK: ..."`
}

// HashtagsResponse carries the provider text verbatim.
type HashtagsResponse struct {
	Hashtags string `json:"hashtags" example:"HIGH-VOLUME: #fitness #workout ..."`
}

//
// Helpers
//

// requestContext carries the correlation id into the service layer.
func requestContext(c *gin.Context) context.Context {
	return services.WithRequestID(c.Request.Context(), middleware.RequestIDFrom(c))
}

// bindJSON decodes the body into dst. An empty body decodes to the zero
// value so that the gateway reports which fields are missing.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "request body too large")
		return false
	}
	fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
	return false
}

// generationFailed maps gateway errors to responses. Provider detail stays in
// the logs; the client gets a generic message and may retry.
func generationFailed(c *gin.Context, kind domain.Kind, err error) {
	if ve, ok := services.AsValidationError(err); ok {
		failWith(c, http.StatusBadRequest, ErrorResponse{
			Code:   ErrCodeValidation,
			Error:  ve.Error(),
			Fields: ve.Fields,
		})
		return
	}
	if errors.Is(err, context.Canceled) && c.Request.Context().Err() != nil {
		// client went away; nobody reads the response
		c.Abort()
		return
	}
	if _, ok := services.AsProviderError(err); ok {
		fail(c, http.StatusInternalServerError, ErrCodeGenerationFailed, "Failed to generate "+string(kind))
		return
	}
	fail(c, http.StatusInternalServerError, ErrCodeInternal, "internal server error")
}

//
// Handlers
//

// GenerateIdeas godoc
// @ID          generateIdeas
// @Summary     Generate content ideas
// @Description Asks the strong model (temperature 0.8) for a numbered list of ideas. count defaults to 5 when omitted or 0.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.IdeaRequest  true  "Idea request"
//
// @Success     200  {object}  handlers.IdeasResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid fields"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Provider failure"
// @Router      /generate-ideas [post]
func (h *Handlers) GenerateIdeas(c *gin.Context) {
	var req domain.IdeaRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.gen.RequestIdeas(requestContext(c), req)
	if err != nil {
		generationFailed(c, domain.KindIdeas, err)
		return
	}
	ok(c, http.StatusOK, IdeasResponse{Ideas: res.Text})
}

// GenerateScript godoc
// @ID          generateScript
// @Summary     Generate a video script
// @Description Asks the strong model (temperature 0.7) for a 15-60 second script. tone defaults to casual.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.ScriptRequest  true  "Script request"
//
// @Success     200  {object}  handlers.ScriptResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid fields"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Provider failure"
// @Router      /generate-script [post]
func (h *Handlers) GenerateScript(c *gin.Context) {
	var req domain.ScriptRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.gen.RequestScript(requestContext(c), req)
	if err != nil {
		generationFailed(c, domain.KindScript, err)
		return
	}
	ok(c, http.StatusOK, ScriptResponse{Script: res.Text})
}

// GenerateHashtags godoc
// @ID          generateHashtags
// @Summary     Generate hashtags
// @Description Asks the fast model (temperature 0.3) for high-volume, medium and niche hashtag tiers.
// @Tags        Generation
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.HashtagRequest  true  "Hashtag request"
//
// @Success     200  {object}  handlers.HashtagsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing or invalid fields"
// @Failure     429  {object}  handlers.ErrorResponse  "Rate limited"
// @Failure     500  {object}  handlers.ErrorResponse  "Provider failure"
// @Router      /generate-hashtags [post]
func (h *Handlers) GenerateHashtags(c *gin.Context) {
	var req domain.HashtagRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.gen.RequestHashtags(requestContext(c), req)
	if err != nil {
		generationFailed(c, domain.KindHashtags, err)
		return
	}
	ok(c, http.StatusOK, HashtagsResponse{Hashtags: res.Text})
}
