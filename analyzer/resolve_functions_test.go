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

func TestResolveFunctionsScalar(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("abs", false, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	analyzed, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	fn, ok := p.ProjectList[0].(*expression.ScalarFunction)
	require.True(ok, "expected a ScalarFunction, got %T", p.ProjectList[0])
	require.Equal("abs", fn.FunctionName())
}

func TestResolveFunctionsLegacyAggregate(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("sum", false, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	analyzed, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	fn, ok := p.ProjectList[0].(*expression.GenericAggregateFunc)
	require.True(ok, "expected a GenericAggregateFunc, got %T", p.ProjectList[0])
	require.Equal("sum", fn.AggregateName())
	require.False(fn.IsDistinct)
}

func TestResolveFunctionsNewStyleAggregate(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("approx_count_distinct", false, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	analyzed, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	agg2, ok := p.ProjectList[0].(*expression.AggregateExpression2)
	require.True(ok, "expected an AggregateExpression2, got %T", p.ProjectList[0])
	require.Equal(expression.Complete, agg2.Mode)
}

func TestResolveFunctionsDistinctUnsupportedOnAvg(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("avg", true, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	_, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.Error(err)
	require.True(sql.ErrDistinctUnsupported.Is(err))
}

func TestResolveFunctionsDropsDistinctOnMax(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("max", true, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	analyzed, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	fn := p.ProjectList[0].(*expression.GenericAggregateFunc)
	require.False(fn.IsDistinct, "DISTINCT should be silently dropped for MAX")
}

func TestResolveFunctionsUnknownFunctionLeftUnresolved(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	call := expression.NewUnresolvedFunction("not_a_real_fn", false, table.Output()[0])
	project := plan.NewProject([]sql.Expression{call}, table)

	analyzed, err := resolveFunctions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	_, ok := p.ProjectList[0].(*expression.UnresolvedFunction)
	require.True(ok, "an unknown function should be left unresolved for CheckAnalysis to report")
}
