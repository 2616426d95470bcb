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

func TestGlobalAggregatesWrapsBareAggregateProject(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	sum := expression.NewAlias(expression.NewGenericAggregateFunc("sum", table.Output()[0], false, sql.Float64), "total")
	project := plan.NewProject([]sql.Expression{sum}, table)

	analyzed, err := globalAggregates(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	agg, ok := analyzed.(*plan.Aggregate)
	require.True(ok, "expected a bare-aggregate Project to become an Aggregate, got %T", analyzed)
	require.Nil(agg.GroupByExprs)
	require.Equal(table, agg.Child)
}

func TestGlobalAggregatesLeavesNonAggregateProjectAlone(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	project := plan.NewProject([]sql.Expression{table.Output()[0]}, table)
	analyzed, err := globalAggregates(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	_, ok := analyzed.(*plan.Project)
	require.True(ok, "a Project with no aggregate in its output should stay a Project, got %T", analyzed)
}
