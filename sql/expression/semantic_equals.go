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

package expression

import "github.com/suyanNone/logicalplan/sql"

// SemanticEquals reports whether a and b are equivalent expressions
// modulo ExprId renaming and cosmetic alias naming (spec §3
// "semanticEquals"), used by ResolveGroupingAnalytics to match a
// re-derived expression back to a group-by entry, and by window-spec
// grouping to compare partition/order expressions.
func SemanticEquals(a, b sql.Expression) bool {
	a = stripCosmetic(a)
	b = stripCosmetic(b)

	switch av := a.(type) {
	case *AttributeReference:
		bv, ok := b.(*AttributeReference)
		return ok && av.ExprId() == bv.ExprId()
	case *Alias:
		bv, ok := b.(*Alias)
		return ok && SemanticEquals(av.Child, bv.Child)
	case *Literal:
		bv, ok := b.(*Literal)
		return ok && av.value == bv.value
	}

	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	if typeName(a) != typeName(b) {
		return false
	}
	if !shallowEquals(a, b) {
		return false
	}
	for i := range ac {
		if !SemanticEquals(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// stripCosmetic unwraps UnresolvedAlias, which contributes no semantic
// content of its own.
func stripCosmetic(e sql.Expression) sql.Expression {
	for {
		if ua, ok := e.(*UnresolvedAlias); ok {
			e = ua.Child
			continue
		}
		return e
	}
}

func typeName(e sql.Expression) string {
	switch e.(type) {
	case *UnresolvedAttribute:
		return "UnresolvedAttribute"
	case *UnresolvedFunction:
		return "UnresolvedFunction"
	case *MultiAlias:
		return "MultiAlias"
	case *SortOrder:
		return "SortOrder"
	case *WindowExpression:
		return "WindowExpression"
	case *WindowSpecDefinition:
		return "WindowSpecDefinition"
	case *ScalarFunction:
		return "ScalarFunction"
	case *NondeterministicFunction:
		return "NondeterministicFunction"
	case *Cast:
		return "Cast"
	default:
		return "other"
	}
}

// shallowEquals compares the node-local (non-child) fields relevant to
// semantic equality for the few node kinds whose String() isn't already
// sufficient (UnresolvedAttribute name parts, UnresolvedFunction name).
func shallowEquals(a, b sql.Expression) bool {
	switch av := a.(type) {
	case *UnresolvedAttribute:
		bv := b.(*UnresolvedAttribute)
		if len(av.NameParts) != len(bv.NameParts) {
			return false
		}
		for i := range av.NameParts {
			if av.NameParts[i] != bv.NameParts[i] {
				return false
			}
		}
		return true
	case *UnresolvedFunction:
		bv := b.(*UnresolvedFunction)
		return av.Name == bv.Name && av.IsDistinct == bv.IsDistinct
	case *ScalarFunction:
		bv := b.(*ScalarFunction)
		return av.Name == bv.Name
	case *NondeterministicFunction:
		bv := b.(*NondeterministicFunction)
		return av.Name == bv.Name
	case *GenericAggregateFunc:
		bv, ok := b.(*GenericAggregateFunc)
		return ok && av.Name == bv.Name && av.IsDistinct == bv.IsDistinct
	case *Cast:
		bv := b.(*Cast)
		return av.Typ.Equals(bv.Typ)
	default:
		return true
	}
}
