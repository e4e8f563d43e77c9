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


package findata

import "errors"

var (
	// ErrNotFound indicates the ticker is unknown to the provider.
	ErrNotFound = errors.New("ticker not found")

	// ErrEmptyTicker indicates an empty ticker symbol was looked up.
	ErrEmptyTicker = errors.New("ticker cannot be empty")
)
