// Package services – Gateway
//
// This file implements Gateway, the generation relay: it validates one of
// three structured requests, renders a deterministic prompt pair, issues a
// single provider call under a bounded timeout and returns the provider's
// first completion verbatim.
//
// Requests share nothing mutable. The provider handle and prompt registry are
// built once at startup and only read afterwards; the audit recorder is
// write-only and never consulted while serving a request.
//
// Observability: each operation opens an OpenTelemetry span carrying kind,
// platform, tier and model. Prompt text and output are never logged or
// attached to spans; only their sizes are.
package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-content-gateway/internal/domain"
	"github.com/tbourn/go-content-gateway/internal/llm"
	"github.com/tbourn/go-content-gateway/internal/prompts"
)

const (
	// DefaultProviderTimeout bounds a provider call when none is configured.
	DefaultProviderTimeout = 45 * time.Second
	// DefaultMaxFieldRunes caps each free-text field.
	DefaultMaxFieldRunes = 4000
)

// Policy is the fixed provider setting for one request kind.
type Policy struct {
	Tier        llm.Tier
	Temperature float32
}

// Policies maps each kind to its model tier and temperature.
var Policies = map[domain.Kind]Policy{
	domain.KindIdeas:    {Tier: llm.TierStrong, Temperature: 0.8},
	domain.KindScript:   {Tier: llm.TierStrong, Temperature: 0.7},
	domain.KindHashtags: {Tier: llm.TierFast, Temperature: 0.3},
}

// Recorder receives one audit row per gateway call.
type Recorder interface {
	Record(ctx context.Context, g *domain.Generation) error
}

// Gateway relays generation requests to a Provider.
type Gateway struct {
	Provider llm.Provider
	Prompts  *prompts.Registry
	Audit    Recorder // optional

	// Timeout bounds each provider call; zero means DefaultProviderTimeout.
	Timeout time.Duration
	// MaxFieldRunes caps free-text inputs; zero means DefaultMaxFieldRunes.
	MaxFieldRunes int

	now func() time.Time
}

// NewGateway wires a Gateway with its read-only collaborators.
func NewGateway(p llm.Provider, reg *prompts.Registry, timeout time.Duration, audit Recorder) *Gateway {
	return &Gateway{Provider: p, Prompts: reg, Timeout: timeout, Audit: audit}
}

// call is the normalized form of any request, ready for the provider.
type call struct {
	kind     domain.Kind
	platform domain.Platform
	niche    string
	tone     domain.Tone
	vars     prompts.Vars
}

// RequestIdeas asks for a batch of content ideas. Count 0 means
// domain.DefaultIdeaCount; any other value in 1..domain.MaxIdeaCount is
// requested exactly.
func (g *Gateway) RequestIdeas(ctx context.Context, req domain.IdeaRequest) (*domain.Result, error) {
	niche := clean(req.Niche)
	platform, perr := parsePlatform(req.Platform)

	var fc fieldCollector
	fc.require("niche", niche)
	g.checkLength(&fc, "niche", niche)
	if perr != "" {
		fc.add("platform", perr)
	}
	count := req.Count
	switch {
	case count == 0:
		count = domain.DefaultIdeaCount
	case count < 0:
		fc.add("count", "must be a positive integer")
	case count > domain.MaxIdeaCount:
		fc.add("count", "must not exceed "+strconv.Itoa(domain.MaxIdeaCount))
	}

	return g.run(ctx, fc.err(domain.KindIdeas), call{
		kind:     domain.KindIdeas,
		platform: platform,
		niche:    niche,
		vars:     prompts.IdeasVars(niche, platform, count),
	})
}

// RequestScript asks for a short-form video script. An empty tone means
// domain.DefaultTone.
func (g *Gateway) RequestScript(ctx context.Context, req domain.ScriptRequest) (*domain.Result, error) {
	idea := clean(req.Idea)
	brand := clean(req.Brand)
	tone, ok := domain.ParseTone(req.Tone)

	var fc fieldCollector
	fc.require("idea", idea)
	g.checkLength(&fc, "idea", idea)
	fc.require("brand", brand)
	g.checkLength(&fc, "brand", brand)
	if !ok {
		fc.add("tone", "must be one of "+joinTones())
	}

	return g.run(ctx, fc.err(domain.KindScript), call{
		kind: domain.KindScript,
		tone: tone,
		vars: prompts.ScriptVars(idea, brand, tone),
	})
}

// RequestHashtags asks for a tiered hashtag set.
func (g *Gateway) RequestHashtags(ctx context.Context, req domain.HashtagRequest) (*domain.Result, error) {
	content := clean(req.Content)
	niche := clean(req.Niche)
	platform, perr := parsePlatform(req.Platform)

	var fc fieldCollector
	fc.require("content", content)
	g.checkLength(&fc, "content", content)
	if perr != "" {
		fc.add("platform", perr)
	}
	fc.require("niche", niche)
	g.checkLength(&fc, "niche", niche)

	return g.run(ctx, fc.err(domain.KindHashtags), call{
		kind:     domain.KindHashtags,
		platform: platform,
		niche:    niche,
		vars:     prompts.HashtagVars(content, platform, niche),
	})
}

// run performs the shared part of every operation. A non-nil invalid error
// short-circuits before the provider is touched.
func (g *Gateway) run(ctx context.Context, invalid error, c call) (*domain.Result, error) {
	pol := Policies[c.kind]

	tr := otel.Tracer("services/Gateway")
	ctx, span := tr.Start(ctx, "Request"+kindTitle(c.kind),
		trace.WithAttributes(
			attribute.String("generation.kind", string(c.kind)),
			attribute.String("generation.platform", string(c.platform)),
			attribute.String("generation.tier", string(pol.Tier)),
			attribute.Float64("generation.temperature", float64(pol.Temperature)),
		),
	)
	defer span.End()

	row := &domain.Generation{
		RequestID:   RequestIDFrom(ctx),
		Kind:        c.kind,
		Platform:    string(c.platform),
		Niche:       truncateRunes(c.niche, 255),
		Tone:        string(c.tone),
		Temperature: RoundTemperature(pol.Temperature),
	}

	if invalid != nil {
		span.SetStatus(codes.Error, "validation failed")
		countOutcome(c.kind, outcomeInvalid)
		row.Status = domain.StatusValidationFailed
		row.Error = truncateRunes(invalid.Error(), 1024)
		g.record(ctx, row)
		return nil, invalid
	}

	pair, err := g.Prompts.Build(ctx, c.kind, c.vars)
	if err != nil {
		// Templates are embedded; a render failure is a defect, not caller input.
		span.RecordError(err)
		span.SetStatus(codes.Error, "prompt build failed")
		countOutcome(c.kind, outcomeInternal)
		log.Ctx(ctx).Error().Err(err).Str("kind", string(c.kind)).Msg("prompt build failed")
		row.Status = domain.StatusInternalFailed
		row.Error = truncateRunes(err.Error(), 1024)
		g.record(ctx, row)
		return nil, fmt.Errorf("build %s prompt: %w", c.kind, err)
	}

	timeout := g.Timeout
	if timeout <= 0 {
		timeout = DefaultProviderTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := g.clock()
	out, err := g.Provider.Complete(cctx, llm.Completion{
		Tier:        pol.Tier,
		Temperature: pol.Temperature,
		System:      pair.System,
		User:        pair.User,
	})
	elapsed := g.clock().Sub(start)
	providerLat.WithLabelValues(string(c.kind), string(pol.Tier)).Observe(elapsed.Seconds())

	model := out.Model
	row.Model = model
	row.LatencyMs = elapsed.Milliseconds()
	span.SetAttributes(
		attribute.String("generation.model", model),
		attribute.Int("generation.prompt_chars", len(pair.System)+len(pair.User)),
	)

	if err != nil {
		pe := &ProviderError{Kind: c.kind, Provider: g.Provider.Name(), Model: model, Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider failed")
		if pe.Timeout() {
			countOutcome(c.kind, outcomeTimeout)
		} else {
			countOutcome(c.kind, outcomeError)
		}
		log.Ctx(ctx).Warn().
			Str("kind", string(c.kind)).
			Str("model", model).
			Bool("timeout", pe.Timeout()).
			Dur("latency", elapsed).
			Err(err).
			Msg("provider call failed")
		row.Status = domain.StatusProviderFailed
		row.Error = truncateRunes(err.Error(), 1024)
		g.record(ctx, row)
		return nil, pe
	}

	if out.Text == "" {
		countOutcome(c.kind, outcomeEmptyOut)
	} else {
		countOutcome(c.kind, outcomeSuccess)
	}
	span.SetAttributes(attribute.Int("generation.output_chars", utf8.RuneCountInString(out.Text)))
	row.Status = domain.StatusSuccess
	row.OutputChars = utf8.RuneCountInString(out.Text)
	g.record(ctx, row)

	return &domain.Result{Kind: c.kind, Text: out.Text, Model: model}, nil
}

// record writes the audit row without letting a failure reach the caller.
// The write outlives request cancellation so aborted calls are still logged.
func (g *Gateway) record(ctx context.Context, row *domain.Generation) {
	if g.Audit == nil {
		return
	}
	if err := g.Audit.Record(context.WithoutCancel(ctx), row); err != nil {
		auditFailures.Inc()
		log.Ctx(ctx).Error().Err(err).Str("kind", string(row.Kind)).Msg("audit write failed")
	}
}

func (g *Gateway) checkLength(fc *fieldCollector, name, v string) {
	limit := g.MaxFieldRunes
	if limit <= 0 {
		limit = DefaultMaxFieldRunes
	}
	if utf8.RuneCountInString(v) > limit {
		fc.add(name, "must be at most "+strconv.Itoa(limit)+" characters")
	}
}

func (g *Gateway) clock() time.Time {
	if g.now != nil {
		return g.now()
	}
	return time.Now()
}

// clean trims surrounding whitespace and normalizes to NFC so visually equal
// inputs render identical prompts.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func parsePlatform(s string) (domain.Platform, string) {
	if strings.TrimSpace(s) == "" {
		return "", reasonRequired
	}
	p, ok := domain.ParsePlatform(s)
	if !ok {
		return "", "must be one of " + joinPlatforms()
	}
	return p, ""
}

func joinPlatforms() string {
	out := make([]string, len(domain.Platforms))
	for i, p := range domain.Platforms {
		out[i] = string(p)
	}
	return strings.Join(out, ", ")
}

func joinTones() string {
	out := make([]string, len(domain.Tones))
	for i, t := range domain.Tones {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}

func kindTitle(k domain.Kind) string {
	switch k {
	case domain.KindIdeas:
		return "Ideas"
	case domain.KindScript:
		return "Script"
	case domain.KindHashtags:
		return "Hashtags"
	}
	return string(k)
}

// RoundTemperature rounds to two decimals so that float32 widening noise
// (0.7 -> 0.699999988) stays out of the audit log and the catalog.
func RoundTemperature(t float32) float64 {
	return float64(int(t*100+0.5)) / 100
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
