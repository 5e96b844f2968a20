package ai

import (
	"context"
)

// TextGenerator defines the contract for the hosted language model.
// The dialogue engine only needs a black box that turns a topic prompt
// into prose; swapping providers (Gemini, OpenAI, etc.) stays cheap.
type TextGenerator interface {
	// GenerateAnswer produces a short free-text answer for an open-domain
	// question. Errors are expected and must be recovered by the caller.
	GenerateAnswer(ctx context.Context, topicPrompt string) (string, error)
}
