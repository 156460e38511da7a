package analysis

import (
	"context"
)

// LLMProvider defines text generation against a language model. The
// implementation is expected to run at temperature 0.
type LLMProvider interface {
	// Generate returns the model's completion for the given prompt
	Generate(ctx context.Context, prompt string) (string, error)
}

// Embedder defines text embedding operations
type Embedder interface {
	// EmbedQuery generates an embedding for a single query text
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	// EmbedDocuments generates embeddings for a batch of documents
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

// PatentIndex defines similarity search against the patent corpus.
// A non-empty cpcCodes restricts matches to documents whose stored
// classification codes intersect the given set.
type PatentIndex interface {
	Query(ctx context.Context, vector []float32, cpcCodes []string, topK int) ([]IndexMatch, error)
}

// IndexMatch is a single nearest-neighbor result with its stored metadata
type IndexMatch struct {
	ID       string
	Score    float64
	Metadata map[string]interface{}
}
