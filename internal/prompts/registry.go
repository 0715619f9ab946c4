// Package prompts builds the system/user message pairs sent to the text
// generation provider. Templates are embedded text files rendered with eino
// FString chat templates; rendering is a pure function of its inputs.
package prompts

import (
	"context"
	"embed"
	"fmt"
	"strconv"
	"strings"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/tbourn/go-content-gateway/internal/domain"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// Pair is a rendered system instruction and user instruction.
type Pair struct {
	System string
	User   string
}

// Vars holds template substitutions keyed by placeholder name.
type Vars map[string]any

// Registry holds one parsed chat template per generation kind. It is built
// once and never mutated, so it is safe for concurrent use.
type Registry struct {
	templates map[domain.Kind]einoprompt.ChatTemplate
}

// NewRegistry loads every embedded template pair.
func NewRegistry() (*Registry, error) {
	r := &Registry{templates: make(map[domain.Kind]einoprompt.ChatTemplate, len(domain.Kinds))}
	for _, k := range domain.Kinds {
		system, err := readEmbeddedText("templates/" + string(k) + ".system.txt")
		if err != nil {
			return nil, err
		}
		user, err := readEmbeddedText("templates/" + string(k) + ".user.txt")
		if err != nil {
			return nil, err
		}
		r.templates[k] = einoprompt.FromMessages(
			schema.FString,
			schema.SystemMessage(system),
			schema.UserMessage(user),
		)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry that panics on error. The templates are
// embedded, so an error here is a build defect.
func MustNewRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Messages renders the template for kind into eino messages.
func (r *Registry) Messages(ctx context.Context, kind domain.Kind, vars Vars) ([]*schema.Message, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}
	tpl, ok := r.templates[kind]
	if !ok {
		return nil, fmt.Errorf("unknown prompt kind: %s", kind)
	}
	return tpl.Format(ctx, map[string]any(vars))
}

// Build renders the template for kind into a Pair.
func (r *Registry) Build(ctx context.Context, kind domain.Kind, vars Vars) (Pair, error) {
	msgs, err := r.Messages(ctx, kind, vars)
	if err != nil {
		return Pair{}, err
	}
	var p Pair
	for _, m := range msgs {
		switch m.Role {
		case schema.System:
			p.System = m.Content
		case schema.User:
			p.User = m.Content
		}
	}
	if p.System == "" || p.User == "" {
		return Pair{}, fmt.Errorf("prompt %s rendered an empty message", kind)
	}
	return p, nil
}

// IdeasVars returns substitutions for the ideas template.
func IdeasVars(niche string, platform domain.Platform, count int) Vars {
	return Vars{
		"niche":    niche,
		"platform": string(platform),
		"count":    strconv.Itoa(count),
	}
}

// ScriptVars returns substitutions for the script template.
func ScriptVars(idea, brand string, tone domain.Tone) Vars {
	return Vars{
		"idea":  idea,
		"brand": brand,
		"tone":  string(tone),
	}
}

// HashtagVars returns substitutions for the hashtags template.
func HashtagVars(content string, platform domain.Platform, niche string) Vars {
	return Vars{
		"content":  content,
		"platform": string(platform),
		"niche":    niche,
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
