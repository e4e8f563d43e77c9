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


// Package api exposes the comparable-company search pipeline over HTTP.
//
// Two endpoints, JSON in and out:
//
//	POST /search        {description, countries, sectors} -> []CompanyRecord
//	POST /search_ticker {ticker}                          -> []CompanyRecord
//
// Invalid input maps to 400, an unresolvable ticker to 404, and upstream
// failures on the critical path to 502.
package api
