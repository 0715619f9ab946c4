package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// EinoConfig configures the OpenAI chat-completions backend.
type EinoConfig struct {
	APIKey  string
	BaseURL string // optional; OpenAI-compatible endpoint including /v1
	Models  Models
	Timeout time.Duration
}

// EinoProvider calls an OpenAI-compatible chat completions API through the
// eino openai chat model. Model and temperature are selected per call.
type EinoProvider struct {
	chat   model.BaseChatModel
	models Models
}

// NewEinoProvider builds the chat model once; it is not mutated afterwards.
func NewEinoProvider(ctx context.Context, cfg EinoConfig) (*EinoProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	if strings.TrimSpace(cfg.Models.Strong) == "" {
		return nil, errors.New("openai model is required")
	}
	chat, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		Model:   cfg.Models.Strong,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, err
	}
	return newEinoProvider(chat, cfg.Models), nil
}

func newEinoProvider(chat model.BaseChatModel, models Models) *EinoProvider {
	return &EinoProvider{chat: chat, models: models}
}

// Name implements Provider.
func (p *EinoProvider) Name() string { return "openai" }

// Complete implements Provider.
func (p *EinoProvider) Complete(ctx context.Context, c Completion) (Output, error) {
	name := p.models.For(c.Tier)
	msgs := []*schema.Message{
		schema.SystemMessage(c.System),
		schema.UserMessage(c.User),
	}
	msg, err := p.chat.Generate(ctx, msgs,
		model.WithModel(name),
		model.WithTemperature(c.Temperature),
	)
	if err != nil {
		return Output{Model: name}, err
	}
	if msg == nil {
		return Output{Model: name}, nil
	}
	return Output{Text: msg.Content, Model: name}, nil
}
