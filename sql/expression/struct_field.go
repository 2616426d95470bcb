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

// GetStructField extracts a single named field from a struct-typed
// expression, the resolved form of UnresolvedExtractValue when the
// target field is scalar.
type GetStructField struct {
	Child     sql.Expression
	FieldName string
	FieldType sql.Type
}

// NewGetStructField builds a resolved struct field access.
func NewGetStructField(child sql.Expression, fieldName string, fieldType sql.Type) *GetStructField {
	return &GetStructField{Child: child, FieldName: fieldName, FieldType: fieldType}
}

func (g *GetStructField) Children() []sql.Expression { return []sql.Expression{g.Child} }
func (g *GetStructField) Resolved() bool             { return g.Child.Resolved() }
func (g *GetStructField) Type() sql.Type             { return g.FieldType }
func (g *GetStructField) Nullable() bool             { return true }
func (g *GetStructField) Name() string               { return g.FieldName }
func (g *GetStructField) String() string             { return g.Child.String() + "." + g.FieldName }

func (g *GetStructField) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("GetStructField", children, 1); err != nil {
		return nil, err
	}
	return &GetStructField{Child: children[0], FieldName: g.FieldName, FieldType: g.FieldType}, nil
}

// GetArrayStructFields extracts one named field from every struct
// element of an array-of-struct-typed expression, the resolved form of
// UnresolvedExtractValue applied through an array.
type GetArrayStructFields struct {
	Child     sql.Expression
	FieldName string
	FieldType sql.Type
}

// NewGetArrayStructFields builds a resolved array-of-struct field access.
func NewGetArrayStructFields(child sql.Expression, fieldName string, fieldType sql.Type) *GetArrayStructFields {
	return &GetArrayStructFields{Child: child, FieldName: fieldName, FieldType: fieldType}
}

func (g *GetArrayStructFields) Children() []sql.Expression { return []sql.Expression{g.Child} }
func (g *GetArrayStructFields) Resolved() bool             { return g.Child.Resolved() }
func (g *GetArrayStructFields) Type() sql.Type             { return g.FieldType }
func (g *GetArrayStructFields) Nullable() bool             { return true }
func (g *GetArrayStructFields) Name() string               { return g.FieldName }
func (g *GetArrayStructFields) String() string {
	return g.Child.String() + "[]." + g.FieldName
}

func (g *GetArrayStructFields) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("GetArrayStructFields", children, 1); err != nil {
		return nil, err
	}
	return &GetArrayStructFields{Child: children[0], FieldName: g.FieldName, FieldType: g.FieldType}, nil
}
