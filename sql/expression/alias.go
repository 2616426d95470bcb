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

package expression

import "github.com/suyanNone/logicalplan/sql"

// Alias names an expression and carries its own ExprId, the way a SQL
// "expr AS name" clause does. The aliased attribute's identity is the
// Alias's ExprId, not the child's.
type Alias struct {
	id    sql.ExprId
	name  string
	Child sql.Expression
}

// NewAlias creates a new Alias over child with a fresh ExprId.
func NewAlias(child sql.Expression, name string) *Alias {
	return &Alias{id: sql.NewExprId(), name: name, Child: child}
}

// RestoreAlias reconstructs an Alias with an explicit ExprId.
func RestoreAlias(id sql.ExprId, name string, child sql.Expression) *Alias {
	return &Alias{id: id, name: name, Child: child}
}

func (a *Alias) ExprId() sql.ExprId { return a.id }
func (a *Alias) Name() string       { return a.name }

// ToAttribute returns the AttributeReference this alias projects as,
// carrying the same ExprId so downstream references bind correctly.
func (a *Alias) ToAttribute() *AttributeReference {
	return RestoreAttributeReference(a.id, a.name, a.Child.Type(), a.Nullable(), "")
}

func (a *Alias) Children() []sql.Expression { return []sql.Expression{a.Child} }
func (a *Alias) Resolved() bool             { return a.Child.Resolved() }
func (a *Alias) Type() sql.Type             { return a.Child.Type() }
func (a *Alias) Nullable() bool             { return a.Child.Nullable() }
func (a *Alias) String() string             { return a.Child.String() + " AS " + a.name }

func (a *Alias) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("Alias", children, 1); err != nil {
		return nil, err
	}
	return &Alias{id: a.id, name: a.name, Child: children[0]}, nil
}

// MultiAlias names a multi-output expression (a table-valued generator)
// with one name per produced column. An empty Names list means the
// default naming convention (_c0, _c1, ...) applies.
type MultiAlias struct {
	Child sql.Expression
	Names []string
}

// NewMultiAlias wraps child with one name per output column.
func NewMultiAlias(child sql.Expression, names ...string) *MultiAlias {
	return &MultiAlias{Child: child, Names: names}
}

func (m *MultiAlias) Children() []sql.Expression { return []sql.Expression{m.Child} }
func (m *MultiAlias) Resolved() bool             { return m.Child.Resolved() }
func (m *MultiAlias) Type() sql.Type             { return m.Child.Type() }
func (m *MultiAlias) Nullable() bool             { return m.Child.Nullable() }
func (m *MultiAlias) Name() string {
	if len(m.Names) > 0 {
		return m.Names[0]
	}
	return m.Child.String()
}
func (m *MultiAlias) String() string { return m.Child.String() }

func (m *MultiAlias) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("MultiAlias", children, 1); err != nil {
		return nil, err
	}
	return &MultiAlias{Child: children[0], Names: m.Names}, nil
}
