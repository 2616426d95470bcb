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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/suyanNone/logicalplan/memory"
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// columnFixture is one column of a fixture table's declared schema.
type columnFixture struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// tableFixture declares one table available to the fixture's catalog.
type tableFixture struct {
	Name   string          `json:"name"`
	Schema []columnFixture `json:"schema"`
}

// fixture is the JSON shape planfmt reads: a small in-memory database
// plus an unresolved "SELECT columns FROM table" query to analyze.
type fixture struct {
	Database string         `json:"database"`
	Tables   []tableFixture `json:"tables"`
	Table    string         `json:"table"`
	Columns  []string       `json:"columns"`
}

var fixtureTypes = map[string]sql.Type{
	"INT":     sql.Int32,
	"BIGINT":  sql.Int64,
	"DOUBLE":  sql.Float64,
	"TEXT":    sql.Text,
	"BOOLEAN": sql.Boolean,
}

func parseFixtureType(name string) (sql.Type, error) {
	t, ok := fixtureTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture column type %q", name)
	}
	return t, nil
}

// readFixture decodes a fixture from r.
func readFixture(r io.Reader) (*fixture, error) {
	var f fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding fixture: %w", err)
	}
	if f.Database == "" {
		return nil, fmt.Errorf("fixture is missing a database name")
	}
	if f.Table == "" {
		return nil, fmt.Errorf("fixture is missing a query table")
	}
	return &f, nil
}

// buildCatalog turns the fixture's table declarations into an in-memory
// catalog the analyzer can resolve relations against.
func buildCatalog(f *fixture) (*memory.Catalog, error) {
	db := memory.NewDatabase(f.Database)
	for _, tf := range f.Tables {
		schema := make(sql.Schema, len(tf.Schema))
		for i, cf := range tf.Schema {
			t, err := parseFixtureType(cf.Type)
			if err != nil {
				return nil, fmt.Errorf("table %s: %w", tf.Name, err)
			}
			schema[i] = &sql.Column{Name: cf.Name, Type: t, Nullable: cf.Nullable}
		}
		db.AddTable(memory.NewTable(tf.Name, schema))
	}

	cat := memory.NewCatalog()
	cat.AddDatabase(db)
	return cat, nil
}

// buildPlan turns the fixture's query into an unresolved
// Project(columns, UnresolvedRelation(table)).
func buildPlan(f *fixture) sql.Node {
	relation := plan.NewUnresolvedRelation(sql.TableIdentifier{Database: f.Database, Table: f.Table}, "")

	if len(f.Columns) == 0 {
		return plan.NewProject([]sql.Expression{expression.NewStar()}, relation)
	}

	projectList := make([]sql.Expression, len(f.Columns))
	for i, c := range f.Columns {
		projectList[i] = expression.NewUnresolvedAlias(expression.NewUnresolvedAttribute(c))
	}
	return plan.NewProject(projectList, relation)
}
