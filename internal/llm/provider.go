// Package llm adapts external text-generation services to a single
// Provider contract: one system/user message pair in, the first completion's
// text out. Providers issue exactly one call per Complete and never retry.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tbourn/go-content-gateway/internal/config"
)

// Tier selects between the higher-capability and the lower-cost model.
type Tier string

const (
	TierStrong Tier = "strong"
	TierFast   Tier = "fast"
)

// Models maps tiers to concrete model names.
type Models struct {
	Strong string
	Fast   string
}

// For returns the model name for t, falling back to Strong when the fast
// model is not configured.
func (m Models) For(t Tier) string {
	if t == TierFast && strings.TrimSpace(m.Fast) != "" {
		return m.Fast
	}
	return m.Strong
}

// Completion is a single provider request.
type Completion struct {
	Tier        Tier
	Temperature float32
	System      string
	User        string
}

// Output is the provider's first completion. Text is empty when the provider
// returned no content.
type Output struct {
	Text  string
	Model string
}

// Provider is implemented by every text-generation backend. Implementations
// must be safe for concurrent use and honor ctx for cancellation.
type Provider interface {
	Name() string
	Complete(ctx context.Context, c Completion) (Output, error)
}

// New builds the provider selected by cfg.Backend. The returned handle is
// read-only and shared by all requests.
func New(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	models := Models{Strong: cfg.StrongModel, Fast: cfg.FastModel}
	switch cfg.Backend {
	case config.BackendOpenAI, "":
		return NewEinoProvider(ctx, EinoConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Models:  models,
			Timeout: cfg.Timeout,
		})
	case config.BackendGemini:
		return NewGenAIProvider(ctx, GenAIConfig{
			APIKey:  cfg.GeminiKey,
			BaseURL: cfg.GeminiBaseURL,
			Models:  models,
		})
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}
