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

// groupingIdName is the synthesized column carrying each Expand row's
// grouping-set bitmask (spec §4.4).
const groupingIdName = "_grouping_id"

// resolveGroupingAnalytics lowers Cube and Rollup into GroupingSets, then
// lowers GroupingSets into Aggregate-over-Expand (spec §4.4).
func resolveGroupingAnalytics(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.Cube:
			gs := plan.NewGroupingSets(cubeMasks(len(node.GroupByExprs)), node.GroupByExprs, node.AggregateExprs, node.Child)
			return lowerGroupingSets(gs)
		case *plan.Rollup:
			gs := plan.NewGroupingSets(rollupMasks(len(node.GroupByExprs)), node.GroupByExprs, node.AggregateExprs, node.Child)
			return lowerGroupingSets(gs)
		case *plan.GroupingSets:
			return lowerGroupingSets(node)
		default:
			return node, nil
		}
	}, n)
}

// cubeMasks returns every subset of n grouping columns: {0, 1, ..., 2^n-1}.
func cubeMasks(n int) []int64 {
	masks := make([]int64, 1<<uint(n))
	for i := range masks {
		masks[i] = int64(i)
	}
	return masks
}

// rollupMasks returns the n+1 nested prefixes of n grouping columns:
// {(1<<0)-1, (1<<1)-1, ..., (1<<n)-1}.
func rollupMasks(n int) []int64 {
	masks := make([]int64, n+1)
	for i := 0; i <= n; i++ {
		masks[i] = int64(1<<uint(i)) - 1
	}
	return masks
}

// groupAttr returns the AttributeReference e already projects as, if e
// is itself a NamedExpression (AttributeReference or Alias); nil
// otherwise.
func groupAttr(e sql.Expression) *expression.AttributeReference {
	switch e := e.(type) {
	case *expression.AttributeReference:
		return e
	case *expression.Alias:
		return e.ToAttribute()
	default:
		return nil
	}
}

type groupingPair struct {
	orig sql.Expression
	attr *expression.AttributeReference
}

// lowerGroupingSets implements the five-step lowering of spec §4.4:
// synthesize a grouping-id attribute, name every unnamed group-by
// expression, rewrite aggregations to reference the named attributes,
// project the new aliases in below the child if any were introduced,
// and emit Aggregate(groupByAttrs+groupingId, rewrittenAggs, Expand(...)).
func lowerGroupingSets(g *plan.GroupingSets) (sql.Node, error) {
	for _, e := range g.GroupByExprs {
		if named, ok := e.(sql.NamedExpression); ok && named.Name() == groupingIdName {
			return nil, sql.ErrGroupingIdCollision.New(groupingIdName)
		}
	}
	for _, out := range g.Child.Output() {
		if named, ok := out.(sql.NamedExpression); ok && named.Name() == groupingIdName {
			return nil, sql.ErrGroupingIdCollision.New(groupingIdName)
		}
	}

	groupingIDAttr := expression.NewAttributeReference(groupingIdName, sql.Int32, false, "")

	newGroupByAttrs := make([]*expression.AttributeReference, len(g.GroupByExprs))
	var aliases []sql.Expression
	pairs := make([]groupingPair, len(g.GroupByExprs))

	for i, e := range g.GroupByExprs {
		if attr := groupAttr(e); attr != nil {
			newGroupByAttrs[i] = attr
			pairs[i] = groupingPair{orig: e, attr: attr}
			continue
		}
		alias := expression.NewAlias(e, e.String())
		aliases = append(aliases, alias)
		attr := alias.ToAttribute()
		newGroupByAttrs[i] = attr
		pairs[i] = groupingPair{orig: e, attr: attr}
	}

	rewrittenAggs := make([]sql.Expression, len(g.AggregateExprs))
	for i, agg := range g.AggregateExprs {
		rewritten, err := sql.TransformExpressionDown(func(x sql.Expression) (sql.Expression, error) {
			for _, p := range pairs {
				if expression.SemanticEquals(x, p.orig) {
					return p.attr, nil
				}
			}
			return x, nil
		}, agg)
		if err != nil {
			return nil, err
		}
		rewrittenAggs[i] = rewritten
	}

	child := g.Child
	if len(aliases) > 0 {
		projectList := append(append([]sql.Expression{}, child.Output()...), aliases...)
		child = plan.NewProject(projectList, child)
	}

	expand := plan.NewExpand(g.Masks, newGroupByAttrs, groupingIDAttr, child)

	aggGroupBy := make([]sql.Expression, 0, len(newGroupByAttrs)+1)
	for _, attr := range newGroupByAttrs {
		aggGroupBy = append(aggGroupBy, attr)
	}
	aggGroupBy = append(aggGroupBy, groupingIDAttr)

	return plan.NewAggregate(aggGroupBy, rewrittenAggs, expand), nil
}
