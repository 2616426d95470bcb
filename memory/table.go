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

// Package memory implements an in-memory Catalog and FunctionRegistry
// (spec §4.12), grounded on the teacher's memory package: enough of a
// storage and function layer to drive the analyzer end to end without a
// real execution engine behind it.
package memory

import "github.com/suyanNone/logicalplan/sql"

// Table is a named relation with a fixed schema. It holds no rows: this
// package exists to give ResolveRelations something to resolve against,
// not to execute queries.
type Table struct {
	name   string
	schema sql.Schema
}

// NewTable creates a table with the given name and schema.
func NewTable(name string, schema sql.Schema) *Table {
	return &Table{name: name, schema: schema}
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Schema returns the table's declared schema.
func (t *Table) Schema() sql.Schema { return t.schema }
