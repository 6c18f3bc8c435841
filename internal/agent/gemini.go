package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/msomdec/wysider/internal/domain"
	"google.golang.org/genai"
)

// Gemini is the Invoker backed by the Gemini API. A Gemini constructed
// without an API key is valid but every call fails with ErrConfiguration, so
// a misconfigured deployment starts up and reports the problem inline.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini invoker. An empty apiKey yields an unconfigured
// invoker rather than an error.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return &Gemini{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client}, nil
}

// Invoke performs one completion call against the given endpoint.
func (g *Gemini) Invoke(ctx context.Context, ep Endpoint, system string, history []domain.Message, prompt string) (string, error) {
	if g.client == nil {
		return "", fmt.Errorf("%w: GEMINI_API_KEY is not set", domain.ErrConfiguration)
	}

	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == domain.MessageRoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	resp, err := g.client.Models.GenerateContent(ctx, ep.Model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr(ep.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty completion")
	}
	return text, nil
}
