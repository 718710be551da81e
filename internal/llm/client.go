// Package llm implements an optional LLM-backed classifier behind the
// same contract as the rule-based one. It has no algorithmic depth of its
// own: each feedback text becomes one prompt, and the response is
// validated against the live category list.
package llm

import "context"

// Client abstracts one LLM provider API.
type Client interface {
	// Classify sends a classification prompt and returns the raw category
	// answer.
	Classify(ctx context.Context, prompt string) (ClassificationResponse, error)
}

// ClassificationResponse is a provider's answer to one prompt.
type ClassificationResponse struct {
	Category string
}
