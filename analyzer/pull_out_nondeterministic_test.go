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

func TestPullOutNondeterministicLiftsArgumentlessCall(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	rnd := expression.NewNondeterministicFunction("rand", sql.Float64, false)
	sort := plan.NewSort([]sql.Expression{expression.NewSortOrder(rnd, expression.Ascending)}, table)

	analyzed, err := pullOutNondeterministic(sql.NewEmptyContext(), a, sort)
	require.NoError(err)

	top, ok := analyzed.(*plan.Project)
	require.True(ok, "expected a restoring Project on top, got %T", analyzed)
	require.Equal(table.Output(), top.ProjectList)

	innerSort, ok := top.Child.(*plan.Sort)
	require.True(ok, "expected a Sort beneath the restoring Project, got %T", top.Child)
	so := innerSort.SortFields[0].(*expression.SortOrder)
	_, isAttr := so.Child.(*expression.AttributeReference)
	require.True(isAttr, "the nondeterministic call should have been replaced by an attribute reference, got %T", so.Child)

	lowerProject, ok := innerSort.Child.(*plan.Project)
	require.True(ok, "expected a lifting Project beneath the Sort, got %T", innerSort.Child)
	require.Len(lowerProject.ProjectList, 2, "table's own column plus the lifted nondeterministic alias")
}

func TestPullOutNondeterministicLiftsCallWithArgument(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	// rand(a): the nondeterministic node itself has a child, exercising
	// the case where it does not survive the rewrite as the same pointer.
	rnd := expression.NewNondeterministicFunction("rand", sql.Float64, false, table.Output()[0])
	sort := plan.NewSort([]sql.Expression{expression.NewSortOrder(rnd, expression.Ascending)}, table)

	analyzed, err := pullOutNondeterministic(sql.NewEmptyContext(), a, sort)
	require.NoError(err)

	top := analyzed.(*plan.Project)
	innerSort := top.Child.(*plan.Sort)
	so := innerSort.SortFields[0].(*expression.SortOrder)
	_, isAttr := so.Child.(*expression.AttributeReference)
	require.True(isAttr, "a nondeterministic call with arguments should still be lifted, got %T", so.Child)
}

func TestPullOutNondeterministicSkipsProjectAndFilter(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	rnd := expression.NewNondeterministicFunction("rand", sql.Float64, false)
	project := plan.NewProject([]sql.Expression{expression.NewAlias(rnd, "r")}, table)

	analyzed, err := pullOutNondeterministic(sql.NewEmptyContext(), a, project)
	require.NoError(err)
	require.Equal(project, analyzed)
}

func TestPullOutNondeterministicSkipsReinsertedNode(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	rnd := expression.NewNondeterministicFunction("rand", sql.Float64, false)
	sort := plan.NewSort([]sql.Expression{expression.NewSortOrder(rnd, expression.Ascending)}, table)

	once, err := pullOutNondeterministic(sql.NewEmptyContext(), a, sort)
	require.NoError(err)

	// Running the rule again over its own output must be a no-op: every
	// Project it inserted is recorded on the analyzer's skip-list.
	twice, err := pullOutNondeterministic(sql.NewEmptyContext(), a, once)
	require.NoError(err)
	require.Equal(once, twice)
}
