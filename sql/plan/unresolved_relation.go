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

package plan

import "github.com/suyanNone/logicalplan/sql"

// UnresolvedRelation is a table reference as parsed: an identifier,
// possibly qualified by database, plus an optional alias. ResolveRelations
// replaces it with the catalog's concrete relation (spec §4.3).
type UnresolvedRelation struct {
	Table sql.TableIdentifier
	Alias string
}

// NewUnresolvedRelation builds an unresolved table reference.
func NewUnresolvedRelation(table sql.TableIdentifier, alias string) *UnresolvedRelation {
	return &UnresolvedRelation{Table: table, Alias: alias}
}

func (u *UnresolvedRelation) Children() []sql.Node                           { return nil }
func (u *UnresolvedRelation) Expressions() []sql.Expression                  { return nil }
func (u *UnresolvedRelation) Schema() sql.Schema                             { return nil }
func (u *UnresolvedRelation) Output() []sql.Expression                       { return nil }
func (u *UnresolvedRelation) Resolved() bool                                 { return false }
func (u *UnresolvedRelation) String() string {
	if u.Alias != "" {
		return "UnresolvedRelation(" + u.Table.Table + " AS " + u.Alias + ")"
	}
	return "UnresolvedRelation(" + u.Table.Table + ")"
}

func (u *UnresolvedRelation) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("UnresolvedRelation", children, 0); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *UnresolvedRelation) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("UnresolvedRelation", exprs, 0); err != nil {
		return nil, err
	}
	return u, nil
}
