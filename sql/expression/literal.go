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

import (
	"fmt"

	"github.com/suyanNone/logicalplan/sql"
)

// Literal is a constant value of a known type. Literals are always
// Resolved and always Foldable.
type Literal struct {
	leaf
	value interface{}
	typ   sql.Type
}

// NewLiteral creates a Literal wrapping value with the given type.
func NewLiteral(value interface{}, typ sql.Type) *Literal {
	return &Literal{value: value, typ: typ}
}

func (l *Literal) Value() interface{} { return l.value }

func (l *Literal) Resolved() bool { return l.typ != nil && l.typ != sql.Unknown }

func (l *Literal) Type() sql.Type { return l.typ }

func (l *Literal) Nullable() bool { return l.value == nil }

func (l *Literal) Foldable() bool { return true }

func (l *Literal) String() string {
	if l.value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", l.value)
}

func (l *Literal) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("Literal", children, 0); err != nil {
		return nil, err
	}
	return l, nil
}
