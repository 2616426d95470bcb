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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

func TestUnresolvedHavingLiftsAggregateCondition(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{
		{Name: "k", Type: sql.Int32},
		{Name: "v", Type: sql.Int32},
	})
	a := newTestAnalyzer(newTestCatalog())

	groupBy := []sql.Expression{table.Output()[0]}
	agg := plan.NewAggregate(groupBy, []sql.Expression{table.Output()[0]}, table)

	// HAVING count(v) > 1: the condition references an aggregate not in
	// the Aggregate's own output list.
	havingCond := expression.NewGenericAggregateFunc("count", table.Output()[1], false, sql.Int64)
	filter := plan.NewFilter(havingCond, agg)

	analyzed, err := unresolvedHavingClauseAttributes(sql.NewEmptyContext(), a, filter)
	require.NoError(err)

	outer, ok := analyzed.(*plan.Project)
	require.True(ok, "expected a restoring Project on top, got %T", analyzed)
	require.Equal(agg.Output(), outer.ProjectList)

	innerFilter, ok := outer.Child.(*plan.Filter)
	require.True(ok, "expected a Filter beneath the restoring Project, got %T", outer.Child)
	_, isAttr := innerFilter.Condition.(*expression.AttributeReference)
	require.True(isAttr, "having condition should now reference the lifted alias, got %T", innerFilter.Condition)

	widenedAgg, ok := innerFilter.Child.(*plan.Aggregate)
	require.True(ok, "expected the widened Aggregate beneath the Filter, got %T", innerFilter.Child)
	require.Len(widenedAgg.AggregateExprs, 2, "widened aggregate should carry the lifted having alias")
	alias, ok := widenedAgg.AggregateExprs[0].(*expression.Alias)
	require.True(ok)
	require.Equal("havingCondition", alias.Name())
}

func TestUnresolvedHavingLeavesNonAggregateFilterAlone(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	filter := plan.NewFilter(table.Output()[0], table)
	analyzed, err := unresolvedHavingClauseAttributes(sql.NewEmptyContext(), a, filter)
	require.NoError(err)
	require.Equal(filter, analyzed)
}

func TestUnresolvedHavingLeavesNonAggregateConditionAlone(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "k", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	groupBy := []sql.Expression{table.Output()[0]}
	agg := plan.NewAggregate(groupBy, []sql.Expression{table.Output()[0]}, table)
	filter := plan.NewFilter(table.Output()[0], agg)

	analyzed, err := unresolvedHavingClauseAttributes(sql.NewEmptyContext(), a, filter)
	require.NoError(err)
	_, ok := analyzed.(*plan.Filter)
	require.True(ok, "a non-aggregate HAVING condition should be left for other rules, got %T", analyzed)
}
