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


package core

import "errors"

// Boundary error kinds. The HTTP layer maps these to status codes; the
// search pipeline wraps adapter failures into them with fmt.Errorf("%w: ...").
var (
	// ErrInvalidInput indicates the query payload is missing required text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a ticker could not be resolved to a company
	// with a business summary.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable indicates a critical-path upstream call
	// (embedding or index query) failed; the whole request fails.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	// ErrEmptyDescription indicates the search description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrEmptyTicker indicates the ticker symbol is empty.
	ErrEmptyTicker = errors.New("ticker cannot be empty")
)
