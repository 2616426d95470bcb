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

package analyzer

import (
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// resolveSortReferences implements ORDER BY referencing attributes
// absent from SELECT (spec §4.3). It handles Sort-over-Project and
// Sort-over-Aggregate; any other Sort child is left for a later rule or
// CheckAnalysis to deal with.
func resolveSortReferences(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	resolve := a.Resolver()

	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		s, ok := node.(*plan.Sort)
		if !ok {
			return node, nil
		}

		switch child := s.Child.(type) {
		case *plan.Project:
			if sortFieldsResolved(s) {
				return node, nil
			}
			return resolveSortOverProject(s, child, resolve)
		case *plan.Aggregate:
			if sortFieldsResolved(s) {
				hasAgg := false
				for _, f := range s.SortFields {
					hasAgg = hasAgg || expression.ContainsAggregate(f)
				}
				if !hasAgg {
					return node, nil
				}
			}
			return resolveSortOverAggregate(s, child, resolve)
		default:
			return node, nil
		}
	}, n)
}

func sortFieldsResolved(s *plan.Sort) bool {
	return sql.ExpressionsResolved(s.SortFields...)
}

// resolveSortOverProject binds the ordering against child directly,
// adds whatever attributes projectList is missing, and wraps a
// project-away Project on top that restores the originally advertised
// schema.
func resolveSortOverProject(s *plan.Sort, child *plan.Project, resolve sql.Resolver) (sql.Node, error) {
	ordering, err := bindSortFields(s.SortFields, []sql.Node{child.Child}, resolve)
	if err != nil {
		return nil, err
	}
	if !sql.ExpressionsResolved(ordering...) {
		return s, nil
	}

	present := sql.NewAttributeSet(outputOfExprs(child.ProjectList)...)
	var missing []sql.Expression
	for _, f := range ordering {
		for _, ref := range sql.CollectExpressions(f, isAttributeRef) {
			ar := ref.(*expression.AttributeReference)
			if !present.Contains(ar.ExprId()) {
				missing = append(missing, ar)
				present[ar.ExprId()] = struct{}{}
			}
		}
	}

	if len(missing) == 0 {
		return plan.NewSort(ordering, child), nil
	}

	widened := plan.NewProject(append(append([]sql.Expression{}, child.ProjectList...), missing...), child.Child)
	sorted := plan.NewSort(ordering, widened)
	return plan.NewProject(append([]sql.Expression{}, child.ProjectList...), sorted), nil
}

// resolveSortOverAggregate binds the ordering against a synthetic
// relation carrying only the aggregate's named grouping attributes
// (spec §4.3); any AggregateExpression the ordering references is
// lifted into the aggregate's select list under a synthetic alias, and
// the sort is rewritten to reference that alias's attribute. A
// project-away Project on top restores the aggregate's originally
// advertised schema.
func resolveSortOverAggregate(s *plan.Sort, agg *plan.Aggregate, resolve sql.Resolver) (sql.Node, error) {
	synthetic := &syntheticOutputNode{out: groupingAttributes(agg.GroupByExprs)}
	ordering, err := bindSortFields(s.SortFields, []sql.Node{synthetic}, resolve)
	if err != nil {
		return nil, err
	}

	extraAggs := make([]sql.Expression, 0, len(ordering))
	newOrdering := make([]sql.Expression, len(ordering))
	for i, f := range ordering {
		so, ok := f.(*expression.SortOrder)
		if !ok || !expression.ContainsAggregate(so.Child) {
			newOrdering[i] = f
			continue
		}
		alias := expression.NewAlias(so.Child, "_aggOrdering")
		extraAggs = append(extraAggs, alias)
		newOrdering[i] = expression.NewSortOrder(alias.ToAttribute(), so.Direction)
	}

	if !sql.ExpressionsResolved(newOrdering...) {
		return s, nil
	}

	if len(extraAggs) == 0 {
		return plan.NewSort(newOrdering, agg), nil
	}

	originalOutput := agg.Output()
	widened := plan.NewAggregate(agg.GroupByExprs, append(append([]sql.Expression{}, agg.AggregateExprs...), extraAggs...), agg.Child)
	sorted := plan.NewSort(newOrdering, widened)
	return plan.NewProject(originalOutput, sorted), nil
}

// groupingAttributes returns the named attribute each groupByExprs
// entry already projects as (reusing groupAttr's AttributeReference/Alias
// extraction from resolve_grouping_analytics.go), dropping any entry
// that is not itself a NamedExpression. ORDER BY can only reach a
// grouping column by the name it groups by, never by an unnamed
// expression.
func groupingAttributes(groupByExprs []sql.Expression) []sql.Expression {
	var out []sql.Expression
	for _, e := range groupByExprs {
		if attr := groupAttr(e); attr != nil {
			out = append(out, attr)
		}
	}
	return out
}

func isAttributeRef(e sql.Expression) bool {
	_, ok := e.(*expression.AttributeReference)
	return ok
}

func outputOfExprs(exprs []sql.Expression) []sql.Expression {
	var out []sql.Expression
	for _, e := range exprs {
		switch v := e.(type) {
		case *expression.AttributeReference:
			out = append(out, v)
		case *expression.Alias:
			out = append(out, v.ToAttribute())
		}
	}
	return out
}

func bindSortFields(fields []sql.Expression, children []sql.Node, resolve sql.Resolver) ([]sql.Expression, error) {
	out := make([]sql.Expression, len(fields))
	for i, f := range fields {
		bound, err := sql.TransformExpressionUp(func(x sql.Expression) (sql.Expression, error) {
			ua, ok := x.(*expression.UnresolvedAttribute)
			if !ok {
				return x, nil
			}
			if attr, ok := plan.ResolveChildren(ua.NameParts, children, resolve); ok {
				return attr, nil
			}
			return x, nil
		}, f)
		if err != nil {
			return nil, err
		}
		out[i] = bound
	}
	return out, nil
}

// syntheticOutputNode is a throwaway Node wrapper used only so
// resolveChildren can bind ORDER BY against an Aggregate's grouping
// attributes without exposing the Aggregate's full machinery.
type syntheticOutputNode struct {
	out []sql.Expression
}

func (s *syntheticOutputNode) Children() []sql.Node          { return nil }
func (s *syntheticOutputNode) WithChildren([]sql.Node) (sql.Node, error) { return s, nil }
func (s *syntheticOutputNode) Expressions() []sql.Expression { return nil }
func (s *syntheticOutputNode) WithExpressions([]sql.Expression) (sql.Node, error) { return s, nil }
func (s *syntheticOutputNode) Schema() sql.Schema            { return nil }
func (s *syntheticOutputNode) Output() []sql.Expression      { return s.out }
func (s *syntheticOutputNode) Resolved() bool                { return true }
func (s *syntheticOutputNode) String() string                { return "syntheticOutputNode" }
