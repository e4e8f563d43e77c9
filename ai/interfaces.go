package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a fixed-dimension vector embedding for a single
	// text string. The returned vector represents the semantic meaning of
	// the text and must use the same model as the vectors stored in the
	// similarity index.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
