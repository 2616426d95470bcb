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
	"github.com/suyanNone/logicalplan/sql/plan"
)

func TestCTESubstitutionReplacesMatchingRelation(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	cteTable := plan.NewResolvedTable("cte", sql.Schema{{Name: "a", Type: sql.Int32}})

	ur := plan.NewUnresolvedRelation(sql.TableIdentifier{Table: "cte1"}, "")
	with := plan.NewWith(ur, []plan.CTE{{Name: "cte1", Plan: cteTable}})

	result, err := cteSubstitution(sql.NewEmptyContext(), a, with)
	require.NoError(err)
	require.Equal(cteTable, result)
}

func TestCTESubstitutionKeepsAliasAsSubquery(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	cteTable := plan.NewResolvedTable("cte", sql.Schema{{Name: "a", Type: sql.Int32}})

	ur := plan.NewUnresolvedRelation(sql.TableIdentifier{Table: "cte1"}, "c")
	with := plan.NewWith(ur, []plan.CTE{{Name: "cte1", Plan: cteTable}})

	result, err := cteSubstitution(sql.NewEmptyContext(), a, with)
	require.NoError(err)

	sq, ok := result.(*plan.Subquery)
	require.True(ok)
	require.Equal("c", sq.Alias)
	require.Equal(cteTable, sq.Child)
}

func TestCTESubstitutionLeavesNonMatchingRelationUnresolved(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	cteTable := plan.NewResolvedTable("cte", sql.Schema{{Name: "a", Type: sql.Int32}})

	ur := plan.NewUnresolvedRelation(sql.TableIdentifier{Table: "other"}, "")
	with := plan.NewWith(ur, []plan.CTE{{Name: "cte1", Plan: cteTable}})

	result, err := cteSubstitution(sql.NewEmptyContext(), a, with)
	require.NoError(err)
	require.Equal(ur, result)
}

func TestCTESubstitutionShadowsCatalogNameOnCollision(t *testing.T) {
	require := require.New(t)

	a := newTestAnalyzer(newTestCatalog())
	cteTable := plan.NewResolvedTable("shadowed", sql.Schema{{Name: "a", Type: sql.Int32}})

	// A CTE named "mytable" takes precedence over any catalog table of
	// the same name, since substitution runs before ResolveRelations
	// ever looks the name up.
	ur := plan.NewUnresolvedRelation(sql.TableIdentifier{Table: "mytable"}, "")
	with := plan.NewWith(ur, []plan.CTE{{Name: "mytable", Plan: cteTable}})

	result, err := cteSubstitution(sql.NewEmptyContext(), a, with)
	require.NoError(err)
	require.Equal(cteTable, result)
}
