package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")
	model.SetTemperature(0.6)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

const personaPrompt = `Role: You are a straight-talking bourbon and cigar concierge.
Answer the question below in 2-4 sentences of plain prose. No markdown, no lists.
Stick to proof, mashbill, aging, availability, and flavor facts; skip hype.

Question: %s`

// GenerateAnswer asks the model for a short prose answer to an open-domain
// bourbon/cigar question.
func (p *GeminiProvider) GenerateAnswer(ctx context.Context, topicPrompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(personaPrompt, topicPrompt)))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}

	answer := cleanAnswer(out.String())
	if answer == "" {
		return "", fmt.Errorf("empty answer from Gemini")
	}
	return answer, nil
}

// cleanAnswer strips stray markdown fences the model occasionally emits.
func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
