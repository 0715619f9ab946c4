// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes settings such as
// server timeouts, logging, the text-generation provider and its credential,
// the audit store, rate limiting, and observability.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider backends.
const (
	BackendOpenAI = "openai"
	BackendGemini = "gemini"
)

// Rate limiter backends.
const (
	RateBackendMemory = "memory"
	RateBackendRedis  = "redis"
)

// ErrNoCredential is returned when the selected provider has no API key.
var ErrNoCredential = errors.New("provider API credential is not configured")

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME (e.g. "go-content-gateway")
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// ProviderConfig selects and configures the text-generation backend.
// It is read once at startup and never mutated.
type ProviderConfig struct {
	Backend       string        // LLM_PROVIDER: openai|gemini
	OpenAIKey     string        // OPENAI_API_KEY
	OpenAIBaseURL string        // OPENAI_BASE_URL (optional, OpenAI-compatible)
	GeminiKey     string        // GEMINI_API_KEY
	GeminiBaseURL string        // GEMINI_BASE_URL (optional)
	StrongModel   string        // LLM_MODEL_STRONG: ideas and scripts
	FastModel     string        // LLM_MODEL_FAST: hashtags
	Timeout       time.Duration // LLM_TIMEOUT, bounds one provider call
}

// Credential returns the API key for the selected backend.
func (p ProviderConfig) Credential() string {
	if p.Backend == BackendGemini {
		return p.GeminiKey
	}
	return p.OpenAIKey
}

// RateConfig configures per-client request limits.
type RateConfig struct {
	Backend       string        // RATE_BACKEND: memory|redis
	RPS           float64       // RATE_RPS, token bucket (memory)
	Burst         int           // RATE_BURST, token bucket (memory)
	Window        time.Duration // RATE_WINDOW, fixed window (redis)
	WindowLimit   int           // RATE_WINDOW_LIMIT, fixed window (redis)
	RedisAddr     string        // REDIS_ADDR
	RedisPassword string        // REDIS_PASSWORD
	RedisPrefix   string        // REDIS_PREFIX
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // must exceed the provider timeout
	IdleTimeout       time.Duration // e.g. 60s
	ShutdownTimeout   time.Duration // graceful drain
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// Generation
	Provider ProviderConfig

	// Audit log
	AuditEnabled bool   // record one row per gateway call
	DBPath       string // SQLite path

	// Rate limiting
	Rate RateConfig

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	backend := strings.ToLower(strings.TrimSpace(getenv("LLM_PROVIDER", BackendOpenAI)))
	strongDef, fastDef := "gpt-4-turbo-preview", "gpt-3.5-turbo"
	if backend == BackendGemini {
		strongDef, fastDef = "gemini-2.5-pro", "gemini-2.5-flash"
	}

	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 60*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout:   getdur("SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		// Generation
		Provider: ProviderConfig{
			Backend:       backend,
			OpenAIKey:     strings.TrimSpace(getenv("OPENAI_API_KEY", "")),
			OpenAIBaseURL: strings.TrimSpace(getenv("OPENAI_BASE_URL", "")),
			GeminiKey:     strings.TrimSpace(getenv("GEMINI_API_KEY", "")),
			GeminiBaseURL: strings.TrimSpace(getenv("GEMINI_BASE_URL", "")),
			StrongModel:   strings.TrimSpace(getenv("LLM_MODEL_STRONG", strongDef)),
			FastModel:     strings.TrimSpace(getenv("LLM_MODEL_FAST", fastDef)),
			Timeout:       getdur("LLM_TIMEOUT", 45*time.Second),
		},

		// Audit
		AuditEnabled: getbool("AUDIT_ENABLED", true),
		DBPath:       getenv("DB_PATH", "gateway.db"),

		// Rate limiting
		Rate: RateConfig{
			Backend:       strings.ToLower(getenv("RATE_BACKEND", RateBackendMemory)),
			RPS:           getfloat("RATE_RPS", 1.0),
			Burst:         getint("RATE_BURST", 5),
			Window:        getdur("RATE_WINDOW", time.Minute),
			WindowLimit:   getint("RATE_WINDOW_LIMIT", 30),
			RedisAddr:     getenv("REDIS_ADDR", ""),
			RedisPassword: getenv("REDIS_PASSWORD", ""),
			RedisPrefix:   getenv("REDIS_PREFIX", "content-gateway:ratelimit"),
		},

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-content-gateway"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if err := validateProvider(cfg.Provider); err != nil {
		return cfg, err
	}
	if cfg.WriteTimeout <= cfg.Provider.Timeout {
		return cfg, errors.New("WRITE_TIMEOUT must be greater than LLM_TIMEOUT")
	}
	if cfg.AuditEnabled && strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty when AUDIT_ENABLED")
	}
	if err := validateRate(cfg.Rate); err != nil {
		return cfg, err
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

func validateProvider(p ProviderConfig) error {
	switch p.Backend {
	case BackendOpenAI, BackendGemini:
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of: %s, %s", BackendOpenAI, BackendGemini)
	}
	if p.Credential() == "" {
		return fmt.Errorf("%w (set %s)", ErrNoCredential, credentialEnv(p.Backend))
	}
	if p.StrongModel == "" {
		return errors.New("LLM_MODEL_STRONG must not be empty")
	}
	if p.Timeout <= 0 || p.Timeout > 5*time.Minute {
		return errors.New("LLM_TIMEOUT must be in (0, 5m]")
	}
	return nil
}

func validateRate(r RateConfig) error {
	switch r.Backend {
	case RateBackendMemory:
		if r.RPS < 0 {
			return errors.New("RATE_RPS must be >= 0")
		}
		if r.Burst < 1 {
			return errors.New("RATE_BURST must be >= 1")
		}
	case RateBackendRedis:
		if strings.TrimSpace(r.RedisAddr) == "" {
			return errors.New("REDIS_ADDR is required when RATE_BACKEND=redis")
		}
		if r.Window <= 0 || r.WindowLimit < 1 {
			return errors.New("RATE_WINDOW must be > 0 and RATE_WINDOW_LIMIT >= 1")
		}
	default:
		return fmt.Errorf("RATE_BACKEND must be one of: %s, %s", RateBackendMemory, RateBackendRedis)
	}
	return nil
}

func credentialEnv(backend string) string {
	if backend == BackendGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
