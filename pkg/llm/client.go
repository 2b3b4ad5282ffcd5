package llm

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// GeminiClient is an Oracle backed by the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed oracle.
func NewGeminiClient(ctx context.Context, apiKey, model string) (client *GeminiClient, err error) {
	if model == "" {
		model = DefaultModel
	}

	var inner *genai.Client
	inner, err = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		err = errors.Wrap(err, "failed to create Gemini client")
		return client, err
	}

	client = &GeminiClient{
		client: inner,
		model:  model,
	}
	return client, err
}

// Generate sends a prompt and returns the response text.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (responseText string, err error) {
	var resp *genai.GenerateContentResponse
	resp, err = c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		err = errors.Wrap(err, "generation request failed")
		return responseText, err
	}

	responseText = resp.Text()
	if responseText == "" {
		err = errors.New("no content in model response")
		return responseText, err
	}

	return responseText, err
}
