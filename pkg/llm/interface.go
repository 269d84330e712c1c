// Package llm defines the chat-completion client abstraction used by the
// fingerprint stage to query multiple models through an LLM gateway.
package llm

import "context"

// Request describes a single chat completion.
type Request struct {
	// Model is the gateway model identifier (e.g. "openai/gpt-4o").
	Model string
	// System is the optional system prompt.
	System string
	// Prompt is the user prompt.
	Prompt string
	// MaxTokens caps the completion length; 0 uses the client default.
	MaxTokens int
	// Temperature controls sampling; fingerprint prompts use a low value for
	// stable JSON answers.
	Temperature float64
	// JSONOnly asks the gateway to force a JSON object response when the
	// underlying model supports it.
	JSONOnly bool
}

// Client is the abstraction for LLM gateways. Implementations send one chat
// completion per call and return the raw completion text.
//
//go:generate mockgen -package mockllm -source=interface.go -destination=mock/mockllm.go *
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
