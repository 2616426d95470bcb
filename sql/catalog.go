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

package sql

// TableIdentifier names a relation, optionally qualified by database.
// CTESubstitution matches only the final segment (Table), per spec §4.2.
type TableIdentifier struct {
	Database string
	Table    string
}

// Catalog is the external collaborator that resolves table identifiers
// to concrete relations. It must be safe to query concurrently from
// independent analyzer invocations (spec §5).
type Catalog interface {
	// LookupRelation resolves tableID to a Node representing its schema
	// and (conceptually) its data. alias, if non-empty, is the SQL-level
	// alias the relation was referenced under; implementations return the
	// same Node regardless of alias, and callers wrap it as needed. Miss
	// returns ErrNoSuchTable.
	LookupRelation(tableID TableIdentifier, alias string) (Node, error)
}
