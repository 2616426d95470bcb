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

func TestResolveAliasesLeavesNamedExpressionAlone(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	project := plan.NewProject([]sql.Expression{expression.NewUnresolvedAlias(table.Output()[0])}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	_, ok := p.ProjectList[0].(*expression.AttributeReference)
	require.True(ok, "a NamedExpression child should pass through unwrapped, got %T", p.ProjectList[0])
}

func TestResolveAliasesLeavesUnresolvedChildWrapped(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	unresolved := expression.NewUnresolvedAttribute("nope")
	project := plan.NewProject([]sql.Expression{expression.NewUnresolvedAlias(unresolved)}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	_, ok := p.ProjectList[0].(*expression.UnresolvedAlias)
	require.True(ok, "an unresolved child should stay wrapped for a later pass, got %T", p.ProjectList[0])
}

func TestResolveAliasesNamesStructFieldAccessAfterItsField(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "s", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	field := expression.NewGetStructField(table.Output()[0], "inner", sql.Int32)
	project := plan.NewProject([]sql.Expression{expression.NewUnresolvedAlias(field)}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	alias, ok := p.ProjectList[0].(*expression.Alias)
	require.True(ok, "expected a concrete Alias, got %T", p.ProjectList[0])
	require.Equal("inner", alias.Name())
}

func TestResolveAliasesUsesSyntheticNameForBareExpression(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	a := newTestAnalyzer(newTestCatalog())

	fn := expression.NewScalarFunction("abs", sql.Int32, false, table.Output()[0])
	project := plan.NewProject([]sql.Expression{expression.NewUnresolvedAlias(fn)}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	alias := p.ProjectList[0].(*expression.Alias)
	require.Equal("_c0", alias.Name())
}

func TestResolveAliasesWrapsMultiColumnGeneratorInMultiAlias(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "doc", Type: sql.Text}})
	a := newTestAnalyzer(newTestCatalog())

	gen := expression.NewJSONTuple(table.Output()[0], expression.NewLiteral("k1", sql.Text), expression.NewLiteral("k2", sql.Text))
	project := plan.NewProject([]sql.Expression{expression.NewUnresolvedAlias(gen)}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, project)
	require.NoError(err)

	p := analyzed.(*plan.Project)
	_, ok := p.ProjectList[0].(*expression.MultiAlias)
	require.True(ok, "a generator with more than one output column should get a MultiAlias, got %T", p.ProjectList[0])
}

func TestResolveAliasesSkipsAggregateWithUnresolvedChild(t *testing.T) {
	require := require.New(t)

	table := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "absent"}, "")
	a := newTestAnalyzer(newTestCatalog())

	agg := plan.NewAggregate(nil, []sql.Expression{expression.NewUnresolvedAlias(expression.NewUnresolvedAttribute("a"))}, table)
	analyzed, err := resolveAliases(sql.NewEmptyContext(), a, agg)
	require.NoError(err)
	require.Equal(agg, analyzed)
}
