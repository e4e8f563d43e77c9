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


// Package ai provides the text-embedding abstraction used by the search
// pipeline.
//
// The search pipeline depends only on the Embedder interface. Production
// code wires ai/openai (OpenAI-compatible APIs via langchaingo); tests
// wire ai/mock, whose embedder is deterministic and allows behavior
// injection through function fields.
//
// Production constructors return the interface type to enforce the
// abstraction; mock constructors return concrete types so tests can reach
// call counts and injection hooks.
package ai
