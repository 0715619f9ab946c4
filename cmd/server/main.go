// Command server runs the content generation gateway.
//
// @title          Content Generation Gateway API
// @version        1.0
// @description    Relays content-idea, script and hashtag requests to a text-generation provider.
// @BasePath       /api
// @schemes        http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/tbourn/go-content-gateway/internal/config"
	httpapi "github.com/tbourn/go-content-gateway/internal/http"
	"github.com/tbourn/go-content-gateway/internal/llm"
	"github.com/tbourn/go-content-gateway/internal/observability"
	"github.com/tbourn/go-content-gateway/internal/prompts"
	"github.com/tbourn/go-content-gateway/internal/ratelimit"
	"github.com/tbourn/go-content-gateway/internal/repo"
	"github.com/tbourn/go-content-gateway/internal/services"
	"github.com/tbourn/go-content-gateway/internal/sysutil"
)

// Version is injected at build time with -ldflags "-X main.Version=...".
var Version = ""

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// a missing .env is fine; real deployments use the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger not configured yet
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, os.Stdout)
	version := sysutil.Version(Version)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version, observability.ProviderAttributes(cfg.Provider)...)
	if err != nil {
		return fmt.Errorf("otel: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Audit log (optional)
	var history *services.HistoryService
	if cfg.AuditEnabled {
		db, err := repo.OpenSQLite(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open audit db: %w", err)
		}
		if err := repo.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate audit db: %w", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}
		history = services.NewHistoryService(db)
	}

	// Provider handle: built once, read-only afterwards
	provider, err := llm.New(ctx, cfg.Provider)
	if err != nil {
		return fmt.Errorf("llm provider: %w", err)
	}
	registry, err := prompts.NewRegistry()
	if err != nil {
		return fmt.Errorf("prompts: %w", err)
	}

	var recorder services.Recorder
	if history != nil {
		recorder = history
	}
	gateway := services.NewGateway(provider, registry, cfg.Provider.Timeout, recorder)

	deps := httpapi.Deps{
		Gateway:   gateway,
		Analytics: &services.AnalyticsService{History: history},
	}
	if history != nil {
		deps.History = history
	}

	if cfg.Rate.Backend == config.RateBackendRedis {
		lim, err := ratelimit.NewRedisFixedWindowLimiter(
			cfg.Rate.RedisAddr, cfg.Rate.RedisPassword, cfg.Rate.RedisPrefix,
			cfg.Rate.WindowLimit, cfg.Rate.Window,
		)
		if err != nil {
			return fmt.Errorf("redis limiter: %w", err)
		}
		defer lim.Close()
		if err := lim.Ping(ctx); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		deps.Limiter = lim
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, cfg, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Str("provider", provider.Name()).
			Str("model_strong", cfg.Provider.StrongModel).
			Str("model_fast", cfg.Provider.FastModel).
			Bool("audit", history.Enabled()).
			Str("rate_backend", cfg.Rate.Backend).
			Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
