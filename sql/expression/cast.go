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

// Cast wraps Child with an explicit widening to Typ. ResolveCoercions
// inserts it around any non-literal expression whose natural type
// differs from the common type its containing construct widens to.
// Grounded on the teacher's expression.Convert (sql/expression/convert.go),
// simplified to a resolved target sql.Type rather than a parsed CAST
// syntax type name.
type Cast struct {
	Child sql.Expression
	Typ   sql.Type
}

// NewCast builds a Cast of child to typ.
func NewCast(child sql.Expression, typ sql.Type) *Cast {
	return &Cast{Child: child, Typ: typ}
}

func (c *Cast) Children() []sql.Expression { return []sql.Expression{c.Child} }
func (c *Cast) Resolved() bool             { return c.Child.Resolved() }
func (c *Cast) Type() sql.Type             { return c.Typ }
func (c *Cast) Nullable() bool             { return c.Child.Nullable() }
func (c *Cast) String() string             { return "cast(" + c.Child.String() + " as " + c.Typ.Name() + ")" }

func (c *Cast) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("Cast", children, 1); err != nil {
		return nil, err
	}
	return &Cast{Child: children[0], Typ: c.Typ}, nil
}
