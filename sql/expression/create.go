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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// CreateArray builds an array literal expression from its elements.
// Stars nested inside a CreateArray's argument list are expanded in
// place by ResolveReferences (spec §4.3 "wildcard expansion").
type CreateArray struct {
	Elements  []sql.Expression
	ResultTyp sql.Type
}

// NewCreateArray builds an ARRAY(elements...) expression.
func NewCreateArray(elements ...sql.Expression) *CreateArray {
	return &CreateArray{Elements: elements}
}

func (c *CreateArray) Children() []sql.Expression { return c.Elements }
func (c *CreateArray) Resolved() bool             { return sql.ExpressionsResolved(c.Elements...) }
func (c *CreateArray) Type() sql.Type             { return c.ResultTyp }
func (c *CreateArray) Nullable() bool             { return false }
func (c *CreateArray) String() string {
	var parts []string
	for _, e := range c.Elements {
		parts = append(parts, e.String())
	}
	return "array(" + strings.Join(parts, ", ") + ")"
}

func (c *CreateArray) WithChildren(children []sql.Expression) (sql.Expression, error) {
	return &CreateArray{Elements: children, ResultTyp: c.ResultTyp}, nil
}

// CreateStruct builds a struct literal from named field expressions.
// Stars nested inside a CreateStruct's argument list are expanded in
// place by ResolveReferences.
type CreateStruct struct {
	Names    []string
	Elements []sql.Expression
}

// NewCreateStruct builds a STRUCT(name1, expr1, name2, expr2, ...) expression.
func NewCreateStruct(names []string, elements []sql.Expression) *CreateStruct {
	return &CreateStruct{Names: names, Elements: elements}
}

func (c *CreateStruct) Children() []sql.Expression { return c.Elements }
func (c *CreateStruct) Resolved() bool             { return sql.ExpressionsResolved(c.Elements...) }
func (c *CreateStruct) Type() sql.Type             { return sql.Unknown }
func (c *CreateStruct) Nullable() bool             { return false }
func (c *CreateStruct) String() string {
	var parts []string
	for _, e := range c.Elements {
		parts = append(parts, e.String())
	}
	return "struct(" + strings.Join(parts, ", ") + ")"
}

func (c *CreateStruct) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if len(children) != len(c.Names) {
		return nil, sql.ErrInvalidChildrenCount.New("CreateStruct", len(children), len(c.Names))
	}
	return &CreateStruct{Names: c.Names, Elements: children}, nil
}
