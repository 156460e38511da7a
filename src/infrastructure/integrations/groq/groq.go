package groq

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	DefaultModel = "llama-3.3-70b-versatile"
)

// Client is the reasoning-model client used for query transformation and
// report synthesis. Generation runs at temperature 0 so analytical output
// varies as little as the upstream provider allows.
type Client struct {
	llm   llms.Model
	model string
}

func NewClient(baseURL, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("groq api key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}

	llm, err := openai.New(
		openai.WithBaseURL(baseURL),
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}

	return &Client{
		llm:   llm,
		model: model,
	}, nil
}

// Generate returns the model completion for a single prompt
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt,
		llms.WithTemperature(0.0),
	)
	if err != nil {
		return "", fmt.Errorf("groq generation failed: %w", err)
	}

	return completion, nil
}
