// Package llm is the inference-service collaborator. It is invoked only
// through the prompt composer's output; the scoring pipeline never depends on
// it for a valid score.
package llm

import (
	"context"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Client is an abstraction over inference providers.
type Client interface {
	// Complete sends a composed prompt and returns the model's text output.
	Complete(ctx context.Context, prompt *types.PromptResponse) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client for Google Gemini.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, types.NewConfigurationError("inference API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, types.NewExternalServiceError(err, "creating Gemini client")
	}
	return &GeminiClient{client: client}, nil
}

// Complete sends the formatted prompt using the generation parameters the
// composer selected.
func (c *GeminiClient) Complete(ctx context.Context, prompt *types.PromptResponse) (string, error) {
	if prompt == nil || prompt.FormattedPrompt == "" {
		return "", types.NewValidationError("empty prompt")
	}

	model := c.client.GenerativeModel(prompt.ModelConfig.Model)
	model.SetTemperature(float32(prompt.ModelConfig.Temperature))
	if prompt.ModelConfig.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(prompt.ModelConfig.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt.FormattedPrompt))
	if err != nil {
		return "", types.NewExternalServiceError(err, "generating content")
	}
	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", types.NewExternalServiceError(nil, "no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", types.NewExternalServiceError(nil, "no content in response")
	}

	out := ""
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out += string(text)
		}
	}
	if out == "" {
		return "", types.NewExternalServiceError(nil, "no text parts in response")
	}
	return out, nil
}
