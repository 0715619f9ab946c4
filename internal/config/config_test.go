package config

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

// withKey sets the minimum environment Load needs to succeed.
func withKey(t *testing.T) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEY", "")
}

func TestLoad_Defaults(t *testing.T) {
	withKey(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" || cfg.APIBasePath != "/api" || cfg.GinMode != "release" {
		t.Fatalf("server defaults unexpected: %+v", cfg)
	}
	p := cfg.Provider
	if p.Backend != BackendOpenAI || p.StrongModel != "gpt-4-turbo-preview" || p.FastModel != "gpt-3.5-turbo" {
		t.Fatalf("provider defaults unexpected: %+v", p)
	}
	if p.Timeout != 45*time.Second {
		t.Fatalf("LLM_TIMEOUT default = %v; want 45s", p.Timeout)
	}
	if cfg.WriteTimeout <= p.Timeout {
		t.Fatalf("default write timeout %v must exceed provider timeout %v", cfg.WriteTimeout, p.Timeout)
	}
	if cfg.Rate.Backend != RateBackendMemory || cfg.Rate.Burst != 5 {
		t.Fatalf("rate defaults unexpected: %+v", cfg.Rate)
	}
	if !cfg.AuditEnabled || cfg.DBPath != "gateway.db" {
		t.Fatalf("audit defaults unexpected: enabled=%v path=%q", cfg.AuditEnabled, cfg.DBPath)
	}
}

func TestLoad_AllOverrides(t *testing.T) {
	// Server
	t.Setenv("PORT", "8088")
	t.Setenv("READ_TIMEOUT", "2s")
	t.Setenv("READ_HEADER_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "90s")
	t.Setenv("IDLE_TIMEOUT", "4s")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("MAX_HEADER_BYTES", "8192")
	t.Setenv("GIN_MODE", "weird") // normalizes to release

	// Logging / Docs
	t.Setenv("LOG_LEVEL", "WARNING") // normalizes to warn
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("SWAGGER_ENABLED", "yes")
	t.Setenv("API_BASE_PATH", "api/v1/")

	// Provider
	t.Setenv("LLM_PROVIDER", " Gemini ")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", " g-key ")
	t.Setenv("GEMINI_BASE_URL", "http://gemini.local")
	t.Setenv("LLM_MODEL_STRONG", "")
	t.Setenv("LLM_MODEL_FAST", "gemini-fast")
	t.Setenv("LLM_TIMEOUT", "30s")

	// Audit
	t.Setenv("AUDIT_ENABLED", "off")
	t.Setenv("DB_PATH", "")

	// Rate limiting
	t.Setenv("RATE_BACKEND", "REDIS")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_WINDOW", "10s")
	t.Setenv("RATE_WINDOW_LIMIT", "3")
	t.Setenv("RATE_RPS", "nope") // parse fallback

	// Web protection
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.com , , http://b ")
	t.Setenv("ENABLE_HSTS", "1")
	t.Setenv("HSTS_MAX_AGE", "24h")

	// OTEL
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "otel:4317")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "0")
	t.Setenv("OTEL_SERVICE_NAME", "svc")
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.75")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != "8088" ||
		cfg.ReadTimeout != 2*time.Second ||
		cfg.ReadHeaderTimeout != 1*time.Second ||
		cfg.WriteTimeout != 90*time.Second ||
		cfg.IdleTimeout != 4*time.Second ||
		cfg.ShutdownTimeout != 5*time.Second ||
		cfg.MaxHeaderBytes != 8192 ||
		cfg.GinMode != "release" {
		t.Fatalf("server fields unexpected: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || !cfg.LogPretty || !cfg.SwaggerEnabled || cfg.APIBasePath != "/api/v1" {
		t.Fatalf("logging/docs unexpected: %+v", cfg)
	}

	p := cfg.Provider
	if p.Backend != BackendGemini || p.Credential() != "g-key" || p.GeminiBaseURL != "http://gemini.local" {
		t.Fatalf("provider unexpected: %+v", p)
	}
	// empty LLM_MODEL_STRONG falls back to the backend default
	if p.StrongModel != "gemini-2.5-pro" || p.FastModel != "gemini-fast" || p.Timeout != 30*time.Second {
		t.Fatalf("provider models unexpected: %+v", p)
	}

	if cfg.AuditEnabled {
		t.Fatalf("audit should be disabled")
	}

	r := cfg.Rate
	if r.Backend != RateBackendRedis || r.RedisAddr != "redis:6379" || r.Window != 10*time.Second || r.WindowLimit != 3 || r.RPS != 1.0 {
		t.Fatalf("rate unexpected: %+v", r)
	}

	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.com", "http://b"}) {
		t.Fatalf("cors origins unexpected: %#v", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Security.EnableHSTS || cfg.Security.HSTSMaxAge != 24*time.Hour {
		t.Fatalf("security unexpected: %+v", cfg.Security)
	}
	if !cfg.OTEL.Enabled || cfg.OTEL.Endpoint != "otel:4317" || cfg.OTEL.Insecure || cfg.OTEL.ServiceName != "svc" || cfg.OTEL.SampleRatio != 0.75 {
		t.Fatalf("otel unexpected: %+v", cfg.OTEL)
	}
}

func TestLoad_MissingCredential(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		withKey(t)
		t.Setenv("OPENAI_API_KEY", "   ")
		_, err := Load()
		if !errors.Is(err, ErrNoCredential) || !containsErr(err, "OPENAI_API_KEY") {
			t.Fatalf("expected ErrNoCredential naming OPENAI_API_KEY, got: %v", err)
		}
	})
	t.Run("gemini ignores openai key", func(t *testing.T) {
		withKey(t)
		t.Setenv("LLM_PROVIDER", "gemini")
		_, err := Load()
		if !errors.Is(err, ErrNoCredential) || !containsErr(err, "GEMINI_API_KEY") {
			t.Fatalf("expected ErrNoCredential naming GEMINI_API_KEY, got: %v", err)
		}
	})
}

func TestMustLoad_PanicsWithoutCredential(t *testing.T) {
	withKey(t)
	t.Setenv("OPENAI_API_KEY", "")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustLoad should panic without a credential")
		}
	}()
	_ = MustLoad()
}

// --- Load validations (each case triggers exactly one validation error) ---

func TestLoad_ValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"invalid LOG_LEVEL", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"empty PORT via spaces", map[string]string{"PORT": "   "}, "PORT must not be empty"},
		{"non-positive timeouts", map[string]string{"READ_TIMEOUT": "0s"}, "timeouts must be positive"},
		{"max header bytes <= 0", map[string]string{"MAX_HEADER_BYTES": "0"}, "MAX_HEADER_BYTES"},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "cohere"}, "LLM_PROVIDER"},
		{"llm timeout too large", map[string]string{"LLM_TIMEOUT": "10m"}, "LLM_TIMEOUT"},
		{"llm timeout zero", map[string]string{"LLM_TIMEOUT": "0s"}, "LLM_TIMEOUT"},
		{"write timeout below provider", map[string]string{"WRITE_TIMEOUT": "30s", "LLM_TIMEOUT": "45s"}, "WRITE_TIMEOUT"},
		{"empty DB_PATH", map[string]string{"DB_PATH": "   "}, "DB_PATH must not be empty"},
		{"rate rps negative", map[string]string{"RATE_RPS": "-1"}, "RATE_RPS"},
		{"rate burst < 1", map[string]string{"RATE_BURST": "0"}, "RATE_BURST"},
		{"redis without addr", map[string]string{"RATE_BACKEND": "redis"}, "REDIS_ADDR"},
		{"redis window limit", map[string]string{"RATE_BACKEND": "redis", "REDIS_ADDR": "r:6379", "RATE_WINDOW_LIMIT": "0"}, "RATE_WINDOW"},
		{"unknown rate backend", map[string]string{"RATE_BACKEND": "memcached"}, "RATE_BACKEND"},
		{"hsts max age negative", map[string]string{"HSTS_MAX_AGE": "-1s"}, "HSTS_MAX_AGE"},
		{"otel sample ratio out of range", map[string]string{"OTEL_TRACES_SAMPLER_ARG": "1.5"}, "OTEL_TRACES_SAMPLER_ARG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			withKey(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if _, err := Load(); err == nil || !containsErr(err, tc.want) {
				t.Fatalf("expected error containing %q, got: %v", tc.want, err)
			}
		})
	}
}

// --- helpers ---

func TestHelpers_getenv(t *testing.T) {
	t.Setenv("X_EMPTY", "")
	if getenv("X_EMPTY", "d") != "d" {
		t.Fatalf("getenv should fall back to default on empty var")
	}
	t.Setenv("X_SET", "val")
	if getenv("X_SET", "d") != "val" {
		t.Fatalf("getenv should read set value")
	}
}

func TestHelpers_getfloat_getint_getdur(t *testing.T) {
	t.Setenv("F_VALID", "3.14")
	if getfloat("F_VALID", 0) != 3.14 {
		t.Fatalf("getfloat parse failed")
	}
	t.Setenv("F_BAD", "nope")
	if getfloat("F_BAD", 1.23) != 1.23 {
		t.Fatalf("getfloat default on bad parse failed")
	}

	t.Setenv("I_VALID", "42")
	if getint("I_VALID", 0) != 42 {
		t.Fatalf("getint parse failed")
	}
	t.Setenv("I_BAD", "x")
	if getint("I_BAD", 7) != 7 {
		t.Fatalf("getint default on bad parse failed")
	}

	t.Setenv("D_VALID", "150ms")
	if getdur("D_VALID", time.Second) != 150*time.Millisecond {
		t.Fatalf("getdur parse failed")
	}
	t.Setenv("D_BAD", "zzz")
	if getdur("D_BAD", 2*time.Second) != 2*time.Second {
		t.Fatalf("getdur default on bad parse failed")
	}
}

func TestHelpers_getbool(t *testing.T) {
	for i, v := range []string{"1", "true", "TRUE", " yes ", "Y", "on", "On"} {
		k := "B_T_" + string(rune('a'+i))
		t.Setenv(k, v)
		if !getbool(k, false) {
			t.Fatalf("getbool(%q) = false; want true", v)
		}
	}
	for i, v := range []string{"0", "false", "FALSE", " no ", "N", "off", "Off"} {
		k := "B_F_" + string(rune('a'+i))
		t.Setenv(k, v)
		if getbool(k, true) {
			t.Fatalf("getbool(%q) = true; want false", v)
		}
	}
	t.Setenv("B_EMPTY", "")
	if !getbool("B_EMPTY", true) || getbool("B_EMPTY", false) {
		t.Fatalf("getbool default behavior unexpected")
	}
}

func TestHelpers_splitCSV_and_normalizeBasePath(t *testing.T) {
	if out := splitCSV(""); out != nil {
		t.Fatalf("splitCSV empty should return nil")
	}
	if got := splitCSV(" a, ,b ,  c  ,"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("splitCSV mismatch: got %#v", got)
	}

	if normalizeBasePath("") != "/" {
		t.Fatalf("normalizeBasePath empty -> '/' failed")
	}
	if normalizeBasePath("v1") != "/v1" {
		t.Fatalf("normalizeBasePath missing leading slash failed")
	}
	if normalizeBasePath("/v1/") != "/v1" {
		t.Fatalf("normalizeBasePath trailing slash trim failed")
	}
	if normalizeBasePath(" / ") != "/" {
		t.Fatalf("normalizeBasePath whitespace failed")
	}
}

func TestMain(m *testing.M) {
	os.Unsetenv("PORT")
	os.Exit(m.Run())
}

func containsErr(err error, want string) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), want)
}
