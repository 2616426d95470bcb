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
	"strings"
	"sync"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// Catalog is an in-memory implementation of sql.Catalog: a collection of
// Database, keyed by name, with one marked the default for unqualified
// table references (spec §4.12).
type Catalog struct {
	mu        sync.RWMutex
	databases map[string]*Database
	defaultDB string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{databases: make(map[string]*Database)}
}

// AddDatabase registers db. The first database added becomes the
// default used to resolve an unqualified table reference.
func (c *Catalog) AddDatabase(db *Database) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.databases[strings.ToLower(db.Name())] = db
	if c.defaultDB == "" {
		c.defaultDB = strings.ToLower(db.Name())
	}
}

// LookupRelation implements sql.Catalog: it resolves tableID against the
// registered databases and wraps the match in a fresh plan.ResolvedTable.
// alias is accepted but unused; ResolveRelations wraps the result in a
// plan.Subquery itself when an alias is present.
func (c *Catalog) LookupRelation(tableID sql.TableIdentifier, alias string) (sql.Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dbName := strings.ToLower(tableID.Database)
	if dbName == "" {
		dbName = c.defaultDB
	}

	db, ok := c.databases[dbName]
	if !ok {
		return nil, sql.ErrNoSuchTable.New(tableID.Table)
	}

	t, ok := db.GetTable(tableID.Table)
	if !ok {
		return nil, sql.ErrNoSuchTable.New(tableID.Table)
	}

	return plan.NewResolvedTable(t.Name(), t.Schema()), nil
}
