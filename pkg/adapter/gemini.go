package adapter

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/silaspuma/rogen/pkg/model"
	"google.golang.org/genai"
)

// Gemini is the contract with the generative text service. The model is
// chosen per call because script generation and title derivation use
// different output budgets.
type Gemini interface {
	GenerateContent(ctx context.Context, geminiModel string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiClient struct {
	client *genai.Client
}

// NewGemini creates a client against the public Gemini API.
func NewGemini(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create genai client")
	}

	return &GeminiClient{client: client}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, geminiModel string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := g.client.Models.GenerateContent(ctx, geminiModel, contents, config)
	if err != nil {
		return nil, goerr.Wrap(model.ErrGeneration, err.Error(), goerr.V("model", geminiModel))
	}
	return resp, nil
}

// ResponseText flattens the first candidate into plain text. A response
// without candidates yields an empty string, which callers treat as a
// generation failure.
func ResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
