// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package search assembles comparable-company search results.
//
// The Searcher type implements the pipeline:
//   - Embed the query text (free description or a ticker's business summary)
//   - Nearest-neighbor query against the similarity index, with optional
//     country/sector restrictions
//   - Concurrent per-candidate enrichment with live financial attributes
//   - Near-duplicate elimination by field agreement ratio
//   - Quality filtering by missing-attribute ratio
//
// Ordering is relevance-descending throughout: dedup and filtering
// preserve the relative order of surviving records, and concurrent
// enrichment never reorders. Every request recomputes from scratch; the
// searcher holds no cross-request state.
package search
