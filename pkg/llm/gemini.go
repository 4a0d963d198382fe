package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vi3318/Research-AI-sub000/pkg/config"
)

// geminiProvider adapts the Gemini SDK to the Provider interface. The
// genai client dials lazily on first use because its constructor needs
// a context.
type geminiProvider struct {
	cfg config.ProviderConfig

	mu     sync.Mutex
	client *genai.Client
}

func newGeminiProvider(cfg config.ProviderConfig) *geminiProvider {
	return &geminiProvider{cfg: cfg}
}

func (p *geminiProvider) Name() string       { return p.cfg.Name }
func (p *geminiProvider) Model() string      { return p.cfg.Model }
func (p *geminiProvider) ContextWindow() int { return p.cfg.ContextWindow }

func (p *geminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(p.cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	p.client = client
	return client, nil
}

func (p *geminiProvider) Generate(ctx context.Context, req Request) (string, Usage, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return "", Usage{}, classifyProviderError(err)
	}

	model := client.GenerativeModel(p.cfg.Model)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if req.Temperature > 0 {
		model.SetTemperature(float32(req.Temperature))
	}
	if req.ExpectJSON != nil {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", Usage{}, classifyProviderError(err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", Usage{}, classifyProviderError(fmt.Errorf("empty candidates: service unavailable"))
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text += string(t)
		}
	}

	var usage Usage
	if resp.UsageMetadata != nil {
		usage.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	return text, usage, nil
}
