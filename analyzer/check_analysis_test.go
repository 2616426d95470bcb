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

func TestCheckAnalysisAcceptsFullyResolvedPlan(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	node := plan.NewProject(table.Output(), table)

	require.NoError(CheckAnalysis(sql.NewEmptyContext(), node))
}

func TestCheckAnalysisRejectsUnresolvedRelation(t *testing.T) {
	require := require.New(t)

	ur := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "absent"}, "")
	err := CheckAnalysis(sql.NewEmptyContext(), ur)
	require.Error(err)
	require.True(sql.ErrNoSuchTable.Is(err))
}

func TestCheckAnalysisRejectsUnresolvedAttribute(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	missing := expression.NewUnresolvedAttribute("missing")
	node := plan.NewProject([]sql.Expression{missing}, table)

	err := CheckAnalysis(sql.NewEmptyContext(), node)
	require.Error(err)
	require.True(sql.ErrUnresolvedPlan.Is(err))
}

func TestCheckAnalysisReportsHavingNeedsAggregate(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	agg := plan.NewAggregate(nil, table.Output(), table)
	missing := expression.NewUnresolvedAttribute("total")
	filter := plan.NewFilter(missing, agg)

	err := CheckAnalysis(sql.NewEmptyContext(), filter)
	require.Error(err)
	require.True(sql.ErrHavingNeedsAggregate.Is(err))
}

func TestCheckAnalysisReportsAmbiguousReference(t *testing.T) {
	require := require.New(t)

	left := plan.NewResolvedTable("l", sql.Schema{{Name: "a", Type: sql.Int32}})
	right := plan.NewResolvedTable("r", sql.Schema{{Name: "a", Type: sql.Int32}})
	join := plan.NewJoin(left, right, plan.CrossJoin, nil)

	unqualified := expression.NewUnresolvedAttribute("a")
	node := plan.NewProject([]sql.Expression{unqualified}, join)

	err := CheckAnalysis(sql.NewEmptyContext(), node)
	require.Error(err)
	require.True(sql.ErrAmbiguousReference.Is(err))
}

func TestCheckAnalysisReportsWindowSpecNotFound(t *testing.T) {
	require := require.New(t)

	table := plan.NewResolvedTable("t", sql.Schema{{Name: "a", Type: sql.Int32}})
	fn := expression.NewScalarFunction("rank", sql.Int64, false)
	uwe := expression.NewUnresolvedWindowExpression(fn, expression.NewWindowSpecReference("w"))
	node := plan.NewProject([]sql.Expression{uwe}, table)

	err := CheckAnalysis(sql.NewEmptyContext(), node)
	require.Error(err)
	require.True(sql.ErrWindowSpecNotFound.Is(err))
}
