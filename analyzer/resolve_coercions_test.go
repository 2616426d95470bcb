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

func TestResolveCoercionsWidensLiteralArrayElements(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	arr := expression.NewCreateArray(
		expression.NewLiteral(int32(1), sql.Int32),
		expression.NewLiteral(2.5, sql.Float64),
	)
	project := plan.NewProject([]sql.Expression{expression.NewAlias(arr, "arr"), table.Output()[0]}, table)

	analyzed, err := resolveCoercions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	alias := p.ProjectList[0].(*expression.Alias)
	widened := alias.Child.(*expression.CreateArray)

	require.True(widened.ResultTyp.Equals(sql.Float64))
	require.Len(widened.Elements, 2)

	first := widened.Elements[0].(*expression.Literal)
	require.Equal(sql.Float64, first.Type())
	require.InDelta(1.0, first.Value(), 0.0001)

	second := widened.Elements[1].(*expression.Literal)
	require.Equal(sql.Float64, second.Type())
	require.InDelta(2.5, second.Value(), 0.0001)
}

func TestResolveCoercionsWrapsNonLiteralMismatchInCast(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	arr := expression.NewCreateArray(table.Output()[0], expression.NewLiteral(2.5, sql.Float64))
	project := plan.NewProject([]sql.Expression{expression.NewAlias(arr, "arr")}, table)

	analyzed, err := resolveCoercions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	alias := p.ProjectList[0].(*expression.Alias)
	widened := alias.Child.(*expression.CreateArray)

	require.True(widened.ResultTyp.Equals(sql.Float64))
	cast, ok := widened.Elements[0].(*expression.Cast)
	require.True(ok, "expected the Int32 attribute to be wrapped in a Cast, got %T", widened.Elements[0])
	require.True(cast.Typ.Equals(sql.Float64))
	require.Equal(table.Output()[0], cast.Child)
}

func TestResolveCoercionsFailsOnIncompatibleTypes(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())

	arr := expression.NewCreateArray(
		expression.NewLiteral("x", sql.Text),
		expression.NewLiteral(int32(1), sql.Int32),
	)
	project := plan.NewProject([]sql.Expression{expression.NewAlias(arr, "arr")}, plan.NewResolvedTable("t", nil))

	_, err := resolveCoercions(sql.NewEmptyContext(), a, project)
	require.Error(err)
	require.True(sql.ErrCoercionFailure.Is(err))
}

func TestResolveCoercionsIsIdempotent(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())

	arr := expression.NewCreateArray(
		expression.NewLiteral(int32(1), sql.Int32),
		expression.NewLiteral(2.5, sql.Float64),
	)
	project := plan.NewProject([]sql.Expression{expression.NewAlias(arr, "arr")}, plan.NewResolvedTable("t", nil))

	once, err := resolveCoercions(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	twice, err := resolveCoercions(sql.NewEmptyContext(), a, once)
	require.NoError(err)

	require.Equal(once, twice)
}
