package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// openaiProvider adapts the official OpenAI SDK to the Provider
// interface. JSON mode is enabled when the request expects structured
// output.
type openaiProvider struct {
	cfg    config.ProviderConfig
	client *openai.Client
}

func newOpenAIProvider(cfg config.ProviderConfig) *openaiProvider {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	)
	return &openaiProvider{cfg: cfg, client: &client}
}

func (p *openaiProvider) Name() string       { return p.cfg.Name }
func (p *openaiProvider) Model() string      { return p.cfg.Model }
func (p *openaiProvider) ContextWindow() int { return p.cfg.ContextWindow }

func (p *openaiProvider) Generate(ctx context.Context, req Request) (string, Usage, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(p.cfg.Model),
		Messages: messages,
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	// JSON mode keeps the model from wrapping output in prose, but it
	// always emits an object; array-rooted schemas rely on the prompt
	// plus the gateway's wrapper stripping instead.
	if rootType, _ := req.ExpectJSON["type"].(string); rootType == "object" {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: openai.Ptr(shared.NewResponseFormatJSONObjectParam()),
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", Usage{}, classifyProviderError(err)
	}
	if len(completion.Choices) == 0 {
		return "", Usage{}, classifyProviderError(errors.New("empty completion: service unavailable"))
	}

	usage := Usage{
		PromptTokens:     int(completion.Usage.PromptTokens),
		CompletionTokens: int(completion.Usage.CompletionTokens),
	}
	return completion.Choices[0].Message.Content, usage, nil
}
