package findata

import (
	"context"

	"github.com/poiesic/compsearch/core"
)

// Provider is a live financial-data lookup by ticker symbol.
// Implementations must be thread-safe for concurrent use: the search
// pipeline fans out one lookup per candidate.
type Provider interface {
	// Lookup fetches the financial attribute set for a ticker. Attributes
	// the provider has no data for are nil in the returned Fundamentals;
	// that is a normal outcome, not an error.
	// Returns ErrNotFound if the ticker is unknown to the provider.
	Lookup(ctx context.Context, ticker string) (*core.Fundamentals, error)
}
