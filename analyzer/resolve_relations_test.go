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

	"github.com/suyanNone/logicalplan/memory"
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

func newTestAnalyzer(cat sql.Catalog) *Analyzer {
	return NewBuilder(cat, memory.NewFunctionRegistry()).Build()
}

func newTestCatalog(tables ...*memory.Table) *memory.Catalog {
	db := memory.NewDatabase("mydb")
	for _, t := range tables {
		db.AddTable(t)
	}
	cat := memory.NewCatalog()
	cat.AddDatabase(db)
	return cat
}

func TestResolveRelationsUnaliased(t *testing.T) {
	require := require.New(t)

	table := memory.NewTable("mytable", sql.Schema{{Name: "i", Type: sql.Int32}})
	cat := newTestCatalog(table)
	a := newTestAnalyzer(cat)

	notAnalyzed := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "")
	analyzed, err := resolveRelations(sql.NewEmptyContext(), a, notAnalyzed)
	require.NoError(err)

	resolved, ok := analyzed.(*plan.ResolvedTable)
	require.True(ok)
	require.Equal("mytable", resolved.TableName)
	require.Len(resolved.Attributes, 1)
	require.Equal("i", resolved.Attributes[0].Name())
	require.True(resolved.Resolved())
}

func TestResolveRelationsAliased(t *testing.T) {
	require := require.New(t)

	table := memory.NewTable("mytable", sql.Schema{{Name: "i", Type: sql.Int32}})
	cat := newTestCatalog(table)
	a := newTestAnalyzer(cat)

	notAnalyzed := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "m")
	analyzed, err := resolveRelations(sql.NewEmptyContext(), a, notAnalyzed)
	require.NoError(err)

	sq, ok := analyzed.(*plan.Subquery)
	require.True(ok)
	require.Equal("m", sq.Alias)

	out := sq.Output()
	require.Len(out, 1)
	ar, ok := out[0].(*expression.AttributeReference)
	require.True(ok)
	require.Equal("m", ar.Qualifier())
}

func TestResolveRelationsMissingTable(t *testing.T) {
	require := require.New(t)

	cat := newTestCatalog()
	a := newTestAnalyzer(cat)

	notAnalyzed := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "absent"}, "")
	_, err := resolveRelations(sql.NewEmptyContext(), a, notAnalyzed)
	require.Error(err)
	require.True(sql.ErrNoSuchTable.Is(err))
}

func TestResolveRelationsInsertIntoTargetStripsSubquery(t *testing.T) {
	require := require.New(t)

	table := memory.NewTable("mytable", sql.Schema{{Name: "i", Type: sql.Int32}})
	cat := newTestCatalog(table)
	a := newTestAnalyzer(cat)

	source := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "")
	insert := plan.NewInsertIntoTable(
		plan.NewUnresolvedRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "m"),
		source,
	)

	analyzed, err := resolveRelations(sql.NewEmptyContext(), a, insert)
	require.NoError(err)

	ins, ok := analyzed.(*plan.InsertIntoTable)
	require.True(ok)
	_, isTable := ins.Target.(*plan.ResolvedTable)
	require.True(isTable, "insert target should be unwrapped to a ResolvedTable, got %T", ins.Target)
}
