package llm

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// anthropicProvider adapts the official Anthropic SDK to the Provider
// interface. The SDK client is safe for concurrent use.
type anthropicProvider struct {
	cfg    config.ProviderConfig
	client *anthropic.Client
}

func newAnthropicProvider(cfg config.ProviderConfig) *anthropicProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0), // the gateway owns retry policy
	)
	return &anthropicProvider{cfg: cfg, client: &client}
}

func (p *anthropicProvider) Name() string       { return p.cfg.Name }
func (p *anthropicProvider) Model() string      { return p.cfg.Model }
func (p *anthropicProvider) ContextWindow() int { return p.cfg.ContextWindow }

func (p *anthropicProvider) Generate(ctx context.Context, req Request) (string, Usage, error) {
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = 4096
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(p.cfg.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	// Anthropic takes the system prompt as a separate parameter.
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", Usage{}, classifyProviderError(err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	usage := Usage{
		PromptTokens:     int(message.Usage.InputTokens),
		CompletionTokens: int(message.Usage.OutputTokens),
	}
	return text, usage, nil
}
