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

// Package plan implements the closed set of logical plan node variants
// the analyzer rewrites: relations (resolved and unresolved), the
// primitive row operators (Project, Filter, Sort, Aggregate, Join), and
// the handful of higher-level operators (Generate, Window, Expand,
// With, Cube/Rollup/GroupingSets) that exist only until a rule lowers
// them away.
package plan

import (
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

// UnaryNode is embedded by every single-child plan node, following the
// teacher's convention (spec.md §3 "catch-all UnaryNode capability").
// It supplies Children/WithChildren; each concrete node still supplies
// its own Schema/Output/Resolved/Expressions since those depend on the
// node's own semantics.
type UnaryNode struct {
	Child sql.Node
}

func (u UnaryNode) Children() []sql.Node { return []sql.Node{u.Child} }

func requireChildren(typeName string, children []sql.Node, n int) error {
	if len(children) != n {
		return sql.ErrInvalidChildrenCount.New(typeName, len(children), n)
	}
	return nil
}

func requireExprs(typeName string, exprs []sql.Expression, n int) error {
	if len(exprs) != n {
		return sql.ErrInvalidChildrenCount.New(typeName, len(exprs), n)
	}
	return nil
}

// outputOf returns the AttributeReferences among exprs — the NamedExpression
// projections of a Project/Aggregate output list, skipping anything not
// yet resolved to a concrete attribute.
func outputOf(exprs []sql.Expression) []sql.Expression {
	var out []sql.Expression
	for _, e := range exprs {
		switch v := e.(type) {
		case *expression.AttributeReference:
			out = append(out, v)
		case *expression.Alias:
			out = append(out, v.ToAttribute())
		case *expression.MultiAlias:
			// MultiAlias's own output arity isn't known generically here;
			// ResolveGenerate replaces it before Output() is relied upon.
		}
	}
	return out
}

// schemaOf derives a Schema from an output attribute list.
func schemaOf(output []sql.Expression) sql.Schema {
	s := make(sql.Schema, 0, len(output))
	for _, e := range output {
		named, ok := e.(sql.NamedExpression)
		name := ""
		if ok {
			name = named.Name()
		}
		s = append(s, &sql.Column{Name: name, Type: e.Type(), Nullable: e.Nullable()})
	}
	return s
}

// ResolveChildren is the exported form of resolveChildren, used by the
// analyzer package's resolution rules.
func ResolveChildren(nameParts []string, children []sql.Node, resolve sql.Resolver) (sql.Expression, bool) {
	return resolveChildren(nameParts, children, resolve)
}

// ResolveChildrenDetailed is the exported form of resolveChildrenDetailed.
func ResolveChildrenDetailed(nameParts []string, children []sql.Node, resolve sql.Resolver) (sql.Expression, bool, bool) {
	return resolveChildrenDetailed(nameParts, children, resolve)
}

// resolveChildren attempts to bind nameParts against the combined output
// of children, in the style of the teacher's plan.resolveChildren (spec
// §4.3). With two or more name parts the second-to-last one is the
// qualifier; a single-part name matches by name alone, and an attribute
// with no qualifier matches any qualifier. Returns (attribute, true) on a single unambiguous match,
// (nil, false) otherwise — callers treat "not found" and "ambiguous" as
// the same "leave unresolved and retry" outcome at this layer; CheckAnalysis
// reports the distinction to the user using resolveChildrenDetailed.
func resolveChildren(nameParts []string, children []sql.Node, resolve sql.Resolver) (sql.Expression, bool) {
	attr, _, ok := resolveChildrenDetailed(nameParts, children, resolve)
	return attr, ok
}

// resolveChildrenDetailed is resolveChildren plus an "ambiguous" flag so
// CheckAnalysis can report a more specific diagnostic.
func resolveChildrenDetailed(nameParts []string, children []sql.Node, resolve sql.Resolver) (sql.Expression, bool, bool) {
	var qualifier, name string
	switch len(nameParts) {
	case 1:
		name = nameParts[0]
	case 2:
		qualifier, name = nameParts[0], nameParts[1]
	default:
		// Database-qualified references (db.table.col) are resolved by
		// matching on the last two segments only; the leading segments are
		// treated the way CTE name matching treats qualifiers (spec §4.2):
		// ignored for purposes of attribute binding.
		qualifier, name = nameParts[len(nameParts)-2], nameParts[len(nameParts)-1]
	}

	var matches []sql.Expression
	for _, child := range children {
		for _, out := range child.Output() {
			ar, ok := out.(*expression.AttributeReference)
			if !ok || !resolve(ar.Name(), name) {
				continue
			}
			if qualifier != "" && ar.Qualifier() != "" && !resolve(ar.Qualifier(), qualifier) {
				continue
			}
			matches = append(matches, ar)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], false, true
	case 0:
		return nil, false, false
	default:
		return nil, true, false
	}
}
