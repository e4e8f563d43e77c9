package index

import (
	"context"

	"github.com/poiesic/compsearch/core"
)

// Filter restricts a nearest-neighbor query to candidates whose stored
// metadata matches. An empty set on either field means that field is
// unrestricted; values within a set are OR-ed.
type Filter struct {
	Countries []string
	Sectors   []string
}

// Match is a single ranked candidate from a nearest-neighbor query.
type Match struct {
	// ID is the vector identifier in the index.
	ID string

	// Company is the identity metadata stored with the vector.
	Company core.Company

	// Score is the similarity score reported by the index.
	Score float32
}

// Index is a nearest-neighbor search service over stored company
// embeddings. Implementations must be thread-safe for concurrent use.
type Index interface {
	// Query returns up to topK candidates nearest to vector that satisfy
	// filter, ordered by descending relevance.
	Query(ctx context.Context, vector []float32, filter Filter, topK int) ([]Match, error)
}
