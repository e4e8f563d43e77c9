package search

import "github.com/poiesic/compsearch/core"

// dedupe removes near-duplicate records, preserving first-seen order.
//
// Records are processed in rank order. Each record is compared against
// every already-accepted record; if its field agreement ratio with any of
// them reaches threshold, it is discarded. The comparison covers the full
// field set including identity fields, so near-duplicate detection is
// about financial-profile similarity across listings, not byte-identity:
// a dual-listed issuer differs in ticker yet still agrees on almost
// everything else. Pairwise comparison is quadratic but the candidate
// count is capped at top-k.
//
// Records whose enrichment failed carry no financial data to compare, so
// they neither count as duplicates nor serve as comparators.
func dedupe(records []*core.CompanyRecord, threshold float64, monitor SearchMonitor) []*core.CompanyRecord {
	accepted := make([]*core.CompanyRecord, 0, len(records))

	for _, record := range records {
		if record.EnrichmentError {
			accepted = append(accepted, record)
			continue
		}

		duplicate := false
		for _, kept := range accepted {
			if kept.EnrichmentError {
				continue
			}
			ratio := core.AgreementRatio(record, kept)
			if ratio >= threshold {
				monitor.DuplicateDropped(record, kept, ratio)
				duplicate = true
				break
			}
		}
		if !duplicate {
			accepted = append(accepted, record)
		}
	}

	return accepted
}

// dropSparse removes records whose missing-attribute ratio exceeds
// threshold, preserving order. A record exactly at the threshold stays.
// Records flagged with an enrichment error are kept: their emptiness
// reflects a lookup failure, not sparse provider data, and the flag
// already tells the caller what happened.
func dropSparse(records []*core.CompanyRecord, threshold float64, monitor SearchMonitor) []*core.CompanyRecord {
	kept := make([]*core.CompanyRecord, 0, len(records))

	for _, record := range records {
		if record.EnrichmentError {
			kept = append(kept, record)
			continue
		}
		ratio := record.MissingRatio()
		if ratio > threshold {
			monitor.SparseDropped(record, ratio)
			continue
		}
		kept = append(kept, record)
	}

	return kept
}
