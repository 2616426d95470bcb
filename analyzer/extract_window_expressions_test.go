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

func TestExtractWindowExpressionsExtractsNonAttributePartitionArg(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{
		{Name: "a", Type: sql.Int32},
		{Name: "b", Type: sql.Int32},
	})
	a := newTestAnalyzer(newTestCatalog())

	rankFn := expression.NewScalarFunction("rank", sql.Int64, false)
	partition := expression.NewScalarFunction("abs", sql.Int32, false, table.Output()[0])
	spec := expression.NewWindowSpecDefinition(
		[]sql.Expression{partition},
		[]*expression.SortOrder{expression.NewSortOrder(table.Output()[1], expression.Ascending)},
		expression.WindowFrame{},
	)
	we := expression.NewWindowExpression(rankFn, spec)
	rnk := expression.NewAlias(we, "rnk")
	project := plan.NewProject([]sql.Expression{table.Output()[0], rnk}, table)

	analyzed, err := extractWindowExpressions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	outer, ok := analyzed.(*plan.Project)
	require.True(ok, "expected a restoring Project on top, got %T", analyzed)
	require.Len(outer.ProjectList, 2)
	_, stillWindow := outer.ProjectList[1].(*expression.Alias)
	require.True(stillWindow)
	rnkAttr, ok := outer.ProjectList[1].(*expression.Alias).Child.(*expression.AttributeReference)
	require.True(ok, "the window expression should have been replaced by an attribute reference, got %T", outer.ProjectList[1].(*expression.Alias).Child)
	require.NotNil(rnkAttr)

	window, ok := outer.Child.(*plan.Window)
	require.True(ok, "expected a Window beneath the restoring Project, got %T", outer.Child)
	require.Len(window.WindowExprs, 1)

	widened, ok := window.Child.(*plan.Project)
	require.True(ok, "expected the extraction Project beneath the Window, got %T", window.Child)
	require.Len(widened.ProjectList, 3, "original 2 columns plus the extracted partition expr")
}

func TestExtractWindowExpressionsNoExtractionNeeded(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{
		{Name: "a", Type: sql.Int32},
		{Name: "b", Type: sql.Int32},
	})
	a := newTestAnalyzer(newTestCatalog())

	rankFn := expression.NewScalarFunction("rank", sql.Int64, false)
	spec := expression.NewWindowSpecDefinition(
		[]sql.Expression{table.Output()[0]},
		[]*expression.SortOrder{expression.NewSortOrder(table.Output()[1], expression.Ascending)},
		expression.WindowFrame{},
	)
	we := expression.NewWindowExpression(rankFn, spec)
	rnk := expression.NewAlias(we, "rnk")
	project := plan.NewProject([]sql.Expression{table.Output()[0], rnk}, table)

	analyzed, err := extractWindowExpressions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	outer := analyzed.(*plan.Project)
	rnkAttr, ok := outer.ProjectList[1].(*expression.Alias).Child.(*expression.AttributeReference)
	require.True(ok, "the window expression should have been replaced by an attribute reference, got %T", outer.ProjectList[1].(*expression.Alias).Child)
	require.NotNil(rnkAttr)

	window, ok := outer.Child.(*plan.Window)
	require.True(ok, "expected a Window beneath the restoring Project, got %T", outer.Child)
	require.Equal(table, window.Child, "no extraction was needed, so the Window should sit directly over the table")
}

func TestExtractWindowExpressionsLeavesOrdinaryProjectAlone(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	project := plan.NewProject([]sql.Expression{table.Output()[0]}, table)
	analyzed, err := extractWindowExpressions(sql.NewEmptyContext(), a, project)
	require.NoError(err)
	require.Equal(project, analyzed)
}
