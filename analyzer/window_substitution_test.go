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

func TestWindowsSubstitutionBindsNamedSpec(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})

	fn := expression.NewScalarFunction("rank", sql.Int64, false)
	uwe := expression.NewUnresolvedWindowExpression(fn, expression.NewWindowSpecReference("w"))
	project := plan.NewProject([]sql.Expression{uwe}, table)

	spec := expression.NewWindowSpecDefinition(nil, nil, expression.WindowFrame{})
	wwd := plan.NewWithWindowDefinition([]plan.WindowDef{{Name: "w", Spec: spec}}, project)

	result, err := windowsSubstitution(sql.NewEmptyContext(), a, wwd)
	require.NoError(err)

	p, ok := result.(*plan.Project)
	require.True(ok, "the WithWindowDefinition binder should disappear, got %T", result)

	we, ok := p.ProjectList[0].(*expression.WindowExpression)
	require.True(ok, "expected a bound WindowExpression, got %T", p.ProjectList[0])
	require.Equal(spec, we.Spec)
	require.Equal(fn, we.Function)
}

func TestWindowsSubstitutionRejectsUndeclaredName(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})

	fn := expression.NewScalarFunction("rank", sql.Int64, false)
	uwe := expression.NewUnresolvedWindowExpression(fn, expression.NewWindowSpecReference("missing"))
	project := plan.NewProject([]sql.Expression{uwe}, table)

	wwd := plan.NewWithWindowDefinition(nil, project)

	_, err := windowsSubstitution(sql.NewEmptyContext(), a, wwd)
	require.Error(err)
	require.True(sql.ErrWindowSpecNotFound.Is(err))
}

func TestWindowsSubstitutionLeavesPlanWithoutBinderAlone(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	project := plan.NewProject(table.Output(), table)

	result, err := windowsSubstitution(sql.NewEmptyContext(), a, project)
	require.NoError(err)
	require.Equal(project, result)
}
