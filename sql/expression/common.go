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

// Package expression implements the closed set of expression-tree node
// variants the analyzer operates on: literals, references (resolved and
// unresolved), aliases, window and aggregate wrappers, and struct/array
// accessors. It intentionally does not attempt to model arbitrary
// user-defined expression types; the analyzer only needs to see through
// the handful of shapes rules pattern-match on (spec.md DESIGN NOTES:
// "Prefer closed unions for expressions").
package expression

import "github.com/suyanNone/logicalplan/sql"

// leaf is embedded by expressions with no children (Literal,
// AttributeReference, UnresolvedAttribute, Star, WindowSpecReference).
// Each concrete leaf type still implements its own WithChildren, since a
// zero-arity WithChildren must return the (unchanged) receiver.
type leaf struct{}

func (leaf) Children() []sql.Expression { return nil }

func requireChildren(typeName string, children []sql.Expression, n int) error {
	if len(children) != n {
		return sql.ErrInvalidChildrenCount.New(typeName, len(children), n)
	}
	return nil
}
