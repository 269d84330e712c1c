package domain

import (
	"time"

	"github.com/google/uuid"
)

// FingerprintID uniquely identifies a visibility fingerprint.
type FingerprintID uuid.UUID

// ModelResult is the parsed answer of a single LLM about a business.
// Sentiment and Detail are on a 0..10 scale as instructed in the prompt.
type ModelResult struct {
	// Model is the gateway model identifier (e.g. "openai/gpt-4o").
	Model string `json:"model"`
	// Known reports whether the model claims to know the business.
	Known bool `json:"known"`
	// Sentiment scores how favorably the model describes the business (0..10).
	Sentiment int `json:"sentiment"`
	// Detail scores how much concrete, accurate detail the model produced (0..10).
	Detail int `json:"detail"`
	// Summary is the model's one-paragraph description of the business.
	Summary string `json:"summary,omitempty"`
	// Competitors lists competitor names the model mentioned.
	Competitors []string `json:"competitors,omitempty"`
	// Err records a per-model failure; the fingerprint still counts the
	// remaining models when some fail.
	Err string `json:"error,omitempty"`
}

// Fingerprint is a computed visibility score for a business derived from
// querying multiple LLMs about it.
type Fingerprint struct {
	// ID is the unique identifier of the fingerprint.
	ID FingerprintID `json:"id"`
	// BusinessID is the business this fingerprint was computed for.
	BusinessID BusinessID `json:"businessId"`

	// VisibilityScore is the aggregate score in 0..100.
	VisibilityScore int `json:"visibilityScore"`
	// ModelResults holds the per-model answers the score was derived from.
	ModelResults []ModelResult `json:"modelResults"`
	// Summary is a short synthesis of what the models know about the business.
	Summary string `json:"summary,omitempty"`

	// CreatedAt is when the fingerprint was computed.
	CreatedAt time.Time `json:"createdAt"`
}

// Competitor is a competitor name surfaced by the fingerprint stage, with the
// number of models that mentioned it.
type Competitor struct {
	// BusinessID is the business the competitor was extracted for.
	BusinessID BusinessID `json:"businessId"`
	// Name is the competitor business name as reported by the models.
	Name string `json:"name"`
	// Mentions is how many models named this competitor.
	Mentions int `json:"mentions"`
	// CreatedAt is when the competitor row was recorded.
	CreatedAt time.Time `json:"createdAt"`
}
