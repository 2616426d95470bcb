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

package memory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/plan"
)

func TestCatalogLookupRelationQualified(t *testing.T) {
	require := require.New(t)

	table := NewTable("mytable", sql.Schema{{Name: "i", Type: sql.Int32}})
	db := NewDatabase("mydb")
	db.AddTable(table)
	cat := NewCatalog()
	cat.AddDatabase(db)

	node, err := cat.LookupRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "")
	require.NoError(err)

	resolved, ok := node.(*plan.ResolvedTable)
	require.True(ok)
	require.Equal("mytable", resolved.TableName)
}

func TestCatalogLookupRelationUsesDefaultDatabaseWhenUnqualified(t *testing.T) {
	require := require.New(t)

	table := NewTable("mytable", sql.Schema{{Name: "i", Type: sql.Int32}})
	db := NewDatabase("mydb")
	db.AddTable(table)
	cat := NewCatalog()
	cat.AddDatabase(db)

	node, err := cat.LookupRelation(sql.TableIdentifier{Table: "mytable"}, "")
	require.NoError(err)
	_, ok := node.(*plan.ResolvedTable)
	require.True(ok)
}

func TestCatalogLookupRelationIsCaseInsensitiveOnNames(t *testing.T) {
	require := require.New(t)

	table := NewTable("MyTable", sql.Schema{{Name: "i", Type: sql.Int32}})
	db := NewDatabase("MyDB")
	db.AddTable(table)
	cat := NewCatalog()
	cat.AddDatabase(db)

	node, err := cat.LookupRelation(sql.TableIdentifier{Database: "mydb", Table: "mytable"}, "")
	require.NoError(err)
	_, ok := node.(*plan.ResolvedTable)
	require.True(ok)
}

func TestCatalogLookupRelationMissingDatabase(t *testing.T) {
	require := require.New(t)

	cat := NewCatalog()
	_, err := cat.LookupRelation(sql.TableIdentifier{Database: "absent", Table: "t"}, "")
	require.Error(err)
	require.True(sql.ErrNoSuchTable.Is(err))
}

func TestCatalogLookupRelationMissingTable(t *testing.T) {
	require := require.New(t)

	db := NewDatabase("mydb")
	cat := NewCatalog()
	cat.AddDatabase(db)

	_, err := cat.LookupRelation(sql.TableIdentifier{Database: "mydb", Table: "absent"}, "")
	require.Error(err)
	require.True(sql.ErrNoSuchTable.Is(err))
}

func TestCatalogFirstAddedDatabaseBecomesDefault(t *testing.T) {
	require := require.New(t)

	first := NewDatabase("first")
	first.AddTable(NewTable("t", sql.Schema{{Name: "a", Type: sql.Int32}}))
	second := NewDatabase("second")
	second.AddTable(NewTable("t", sql.Schema{{Name: "b", Type: sql.Int32}}))

	cat := NewCatalog()
	cat.AddDatabase(first)
	cat.AddDatabase(second)

	node, err := cat.LookupRelation(sql.TableIdentifier{Table: "t"}, "")
	require.NoError(err)
	resolved := node.(*plan.ResolvedTable)
	require.Equal("a", resolved.Attributes[0].Name())
}
