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

import "strings"

// Database is an in-memory collection of named tables, matching the
// teacher's memory.Database.
type Database struct {
	name   string
	tables map[string]*Table
}

// NewDatabase creates an empty database named name.
func NewDatabase(name string) *Database {
	return &Database{name: name, tables: make(map[string]*Table)}
}

// Name returns the database's name.
func (d *Database) Name() string { return d.name }

// AddTable registers t under its own name.
func (d *Database) AddTable(t *Table) {
	d.tables[strings.ToLower(t.Name())] = t
}

// GetTable looks up a table by name, case-insensitively.
func (d *Database) GetTable(name string) (*Table, bool) {
	t, ok := d.tables[strings.ToLower(name)]
	return t, ok
}

// TableNames returns every table name registered in the database.
func (d *Database) TableNames() []string {
	names := make([]string, 0, len(d.tables))
	for _, t := range d.tables {
		names = append(names, t.Name())
	}
	return names
}
