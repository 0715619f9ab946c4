// Package httpapi wires the HTTP transport (Gin) to the generation gateway,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// CORS, security headers, compression and rate limiting.
//
// Middleware order (RequestID → logging → recovery) is fixed so that every
// log line and every error envelope carries the correlation id.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/tbourn/go-content-gateway/docs"
	"github.com/tbourn/go-content-gateway/internal/config"
	"github.com/tbourn/go-content-gateway/internal/http/handlers"
	"github.com/tbourn/go-content-gateway/internal/http/middleware"
)

// maxBodyBytes caps request bodies. Generation inputs are short free text.
const maxBodyBytes = 64 << 10

// Deps are the collaborators built once at startup.
type Deps struct {
	Gateway   handlers.Generator
	History   handlers.History   // optional
	Analytics handlers.Analytics // optional

	// Limiter guards the generation routes. When nil an in-memory token
	// bucket is built from cfg.Rate.
	Limiter middleware.Allower
}

// RegisterRoutes attaches all middleware and HTTP endpoints to r.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. CORS and security headers
//  8. Gzip
//
// The rate limiter is applied to the generation routes only; it protects
// provider spend, not the cheap read endpoints.
func RegisterRoutes(r *gin.Engine, cfg config.Config, deps Deps) {
	r.HandleMethodNotAllowed = true

	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))
	r.Use(middleware.RequestID())
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))
	r.Use(middleware.Recovery())
	r.Use(limitBody(maxBodyBytes))

	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(corsMiddleware(cfg.CORS)...)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      true,
		EnablePolicy: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	if cfg.SwaggerEnabled {
		docs.SwaggerInfo.BasePath = cfg.APIBasePath
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limiter := deps.Limiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.Rate.RPS, cfg.Rate.Burst)
	}

	h := handlers.New(deps.Gateway, deps.History, deps.Analytics)

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		gen := api.Group("", middleware.RateLimit(limiter, middleware.KeyByClientIP()))
		gen.POST("/generate-ideas", h.GenerateIdeas)
		gen.POST("/generate-script", h.GenerateScript)
		gen.POST("/generate-hashtags", h.GenerateHashtags)

		api.GET("/generations", h.ListGenerations)
		api.GET("/generations/stats", h.GenerationStats)
		api.GET("/analytics/overview", h.AnalyticsOverview)
		api.GET("/catalog", h.Catalog)
		api.POST("/tools/text-stats", h.TextStats)
	}
}

// corsMiddleware returns the CORS chain. With no allowlist every origin is
// accepted without credentials; otherwise only listed origins are echoed.
func corsMiddleware(cfg config.CORSConfig) []gin.HandlerFunc {
	base := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Retry-After", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 0 {
		base.AllowAllOrigins = true
		return []gin.HandlerFunc{
			// ACAO: * even without an Origin header (simple health checks)
			func(c *gin.Context) {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Next()
			},
			cors.New(base),
		}
	}

	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}
	base.AllowOrigins = cfg.AllowedOrigins
	return []gin.HandlerFunc{
		func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		},
		cors.New(base),
	}
}

// limitBody caps the request body at maxBytes. Reads past the cap fail with
// *http.MaxBytesError, which handlers turn into 413.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
