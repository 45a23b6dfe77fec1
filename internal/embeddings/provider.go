// Package embeddings provides the optional external embedding model. When no
// provider is configured the engine falls back to its own term-weight
// vectorizer, so everything here is best-effort.
package embeddings

import (
	"context"
	"fmt"
)

// Provider embeds text into a fixed-length float vector.
//
// Implementations must be deterministic for the same input text and model.
type Provider interface {
	ModelID() string
	Dim() int
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config is the resolved embeddings configuration.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewFromConfig returns a provider, or (nil, nil) when none is configured.
func NewFromConfig(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		return NewOpenAI(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported embeddings provider: %s", cfg.Provider)
	}
}
