package search

import (
	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/index"
)

// SearchMonitor provides hooks to observe the result assembly process.
// Implement this interface to track intermediate steps during a search.
type SearchMonitor interface {
	Start(query string)
	AfterEmbedding(vector []float32)
	AfterIndexQuery(matches []index.Match)
	EnrichmentFailed(ticker string, err error)
	AfterEnrichment(records []*core.CompanyRecord)
	DuplicateDropped(dropped, kept *core.CompanyRecord, ratio float64)
	SparseDropped(dropped *core.CompanyRecord, ratio float64)
	Finish(results []*core.CompanyRecord)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                           {}
func (n *noopMonitor) AfterEmbedding(_ []float32)                               {}
func (n *noopMonitor) AfterIndexQuery(_ []index.Match)                          {}
func (n *noopMonitor) EnrichmentFailed(_ string, _ error)                       {}
func (n *noopMonitor) AfterEnrichment(_ []*core.CompanyRecord)                  {}
func (n *noopMonitor) DuplicateDropped(_, _ *core.CompanyRecord, _ float64)     {}
func (n *noopMonitor) SparseDropped(_ *core.CompanyRecord, _ float64)           {}
func (n *noopMonitor) Finish(_ []*core.CompanyRecord)                           {}
