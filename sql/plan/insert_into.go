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

// InsertIntoTable writes Source's rows into Target. ResolveRelations
// resolves Target then strips any top-level Subquery wrapper from it
// (spec §4.3), since an insert target is never meaningfully aliased.
type InsertIntoTable struct {
	Target sql.Node
	Source sql.Node
}

// NewInsertIntoTable creates a new insert.
func NewInsertIntoTable(target, source sql.Node) *InsertIntoTable {
	return &InsertIntoTable{Target: target, Source: source}
}

func (i *InsertIntoTable) Children() []sql.Node          { return []sql.Node{i.Target, i.Source} }
func (i *InsertIntoTable) Expressions() []sql.Expression { return nil }
func (i *InsertIntoTable) Schema() sql.Schema            { return i.Target.Schema() }
func (i *InsertIntoTable) Output() []sql.Expression      { return nil }

func (i *InsertIntoTable) Resolved() bool {
	return i.Target.Resolved() && i.Source.Resolved()
}

func (i *InsertIntoTable) String() string { return "InsertIntoTable(" + i.Target.String() + ")" }

func (i *InsertIntoTable) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("InsertIntoTable", children, 2); err != nil {
		return nil, err
	}
	return &InsertIntoTable{Target: children[0], Source: children[1]}, nil
}

func (i *InsertIntoTable) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("InsertIntoTable", exprs, 0); err != nil {
		return nil, err
	}
	return i, nil
}
