package mock

import (
	"context"

	"github.com/poiesic/compsearch/index"
)

// MockIndex is a test double for index.Index.
// It allows custom behavior injection via function fields and records the
// arguments of the most recent query for assertions.
type MockIndex struct {
	// QueryFunc is called by Query if set.
	// If nil, Matches is returned as-is (truncated to topK).
	QueryFunc func(ctx context.Context, vector []float32, filter index.Filter, topK int) ([]index.Match, error)

	// Matches is the scripted result used when QueryFunc is nil.
	Matches []index.Match

	// LastVector, LastFilter and LastTopK record the most recent call.
	LastVector []float32
	LastFilter index.Filter
	LastTopK   int

	callCount int
}

// NewMockIndex creates a mock index with no scripted matches.
// Note: Returns concrete type to allow test assertions.
func NewMockIndex() *MockIndex {
	return &MockIndex{}
}

// Query records its arguments and returns the scripted or injected result.
func (m *MockIndex) Query(ctx context.Context, vector []float32, filter index.Filter, topK int) ([]index.Match, error) {
	m.callCount++
	m.LastVector = vector
	m.LastFilter = filter
	m.LastTopK = topK

	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, vector, filter, topK)
	}

	matches := m.Matches
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// CallCount returns the number of times Query was called.
func (m *MockIndex) CallCount() int {
	return m.callCount
}

// Reset clears recorded state and injected behavior.
func (m *MockIndex) Reset() {
	*m = MockIndex{}
}
