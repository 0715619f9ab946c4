package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// GenAIConfig configures the Gemini backend.
type GenAIConfig struct {
	APIKey  string
	BaseURL string // optional override, mainly for tests and proxies
	Models  Models
}

// GenAIProvider calls the Gemini API through google.golang.org/genai.
type GenAIProvider struct {
	client *genai.Client
	models Models
}

// NewGenAIProvider creates the Gemini client once.
func NewGenAIProvider(ctx context.Context, cfg GenAIConfig) (*GenAIProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(cfg.Models.Strong) == "" {
		return nil, errors.New("gemini model is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if u := strings.TrimSpace(cfg.BaseURL); u != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: u}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GenAIProvider{client: client, models: cfg.Models}, nil
}

// Name implements Provider.
func (p *GenAIProvider) Name() string { return "gemini" }

// Complete implements Provider. The first candidate's text is returned.
func (p *GenAIProvider) Complete(ctx context.Context, c Completion) (Output, error) {
	name := p.models.For(c.Tier)
	resp, err := p.client.Models.GenerateContent(ctx, name,
		[]*genai.Content{genai.NewContentFromText(c.User, genai.RoleUser)},
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(c.System, genai.RoleUser),
			Temperature:       genai.Ptr(c.Temperature),
		},
	)
	if err != nil {
		return Output{Model: name}, err
	}
	if resp == nil {
		return Output{Model: name}, nil
	}
	return Output{Text: resp.Text(), Model: name}, nil
}
