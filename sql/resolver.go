// Copyright 2020-2021 Dolthub, Inc.
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

package sql

import "strings"

// Resolver is a name-equality function. All name comparisons in the
// analyzer route through one, selected once by the caseSensitiveAnalysis
// configuration flag.
type Resolver func(a, b string) bool

// CaseSensitiveResolver compares names byte-for-byte.
func CaseSensitiveResolver(a, b string) bool { return a == b }

// CaseInsensitiveResolver compares names using ASCII case folding, the
// default for SQL identifiers.
func CaseInsensitiveResolver(a, b string) bool { return strings.EqualFold(a, b) }

// NewResolver returns the Resolver selected by caseSensitiveAnalysis.
func NewResolver(caseSensitiveAnalysis bool) Resolver {
	if caseSensitiveAnalysis {
		return CaseSensitiveResolver
	}
	return CaseInsensitiveResolver
}
