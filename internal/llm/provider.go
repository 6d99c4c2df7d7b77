// Package llm abstracts the single-turn, schema-constrained LLM calls the
// coach makes. A Provider takes a prompt and returns JSON; when a Schema is
// set the JSON is validated against it before it reaches the caller.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured response per call.
type Provider interface {
	// Generate sends the request and returns validated JSON content.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single-turn generation request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message.
	Prompt string

	// Schema, when set, constrains the response to conforming JSON via the
	// provider's structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name is kebab-case, e.g. "coach-advice". Used as the schema name for
	// providers that require one.
	Name string

	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (validated when a Schema was set).
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string
}

// resolveModel maps a friendly model name through aliases, passing unknown
// names straight to the SDK.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
