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


// Package core defines the domain model for comparable-company search.
//
// The central type is CompanyRecord: a candidate's identity metadata from
// the similarity index merged with a fixed schema of live financial
// attributes. Missing attributes are a first-class state (nil pointers),
// which keeps "no data" distinct from zero and makes the field-wise
// comparisons (AgreementRatio, MissingRatio) well defined across records.
//
// All entities are request-scoped. Nothing in this package persists or is
// shared between requests.
package core
