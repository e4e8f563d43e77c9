package mock

import (
	"context"
	"fmt"
	"sync"

	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/findata"
)

// MockProvider is a test double for findata.Provider.
// It serves scripted fundamentals per ticker and allows custom behavior
// injection via LookupFunc. Safe for concurrent use: the search pipeline
// fans lookups out across a worker pool.
type MockProvider struct {
	// LookupFunc is called by Lookup if set.
	// If nil, Fundamentals is consulted; unknown tickers return ErrNotFound.
	LookupFunc func(ctx context.Context, ticker string) (*core.Fundamentals, error)

	// Fundamentals holds the scripted attribute sets keyed by ticker.
	Fundamentals map[string]*core.Fundamentals

	mu        sync.Mutex
	callCount int
	tickers   []string
}

// NewMockProvider creates a mock provider with no scripted data.
// Note: Returns concrete type to allow test assertions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Fundamentals: map[string]*core.Fundamentals{},
	}
}

// Lookup records the call and returns the scripted or injected result.
func (m *MockProvider) Lookup(ctx context.Context, ticker string) (*core.Fundamentals, error) {
	m.mu.Lock()
	m.callCount++
	m.tickers = append(m.tickers, ticker)
	m.mu.Unlock()

	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, ticker)
	}

	fund, ok := m.Fundamentals[ticker]
	if !ok {
		return nil, fmt.Errorf("%w: %s", findata.ErrNotFound, ticker)
	}

	// Copy so callers cannot mutate the script.
	out := *fund
	return &out, nil
}

// CallCount returns the number of times Lookup was called.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Tickers returns the tickers looked up so far, in call order.
func (m *MockProvider) Tickers() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.tickers))
	copy(out, m.tickers)
	return out
}

// Reset clears recorded state and injected behavior.
func (m *MockProvider) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.tickers = nil
	m.LookupFunc = nil
	m.Fundamentals = map[string]*core.Fundamentals{}
}
