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

// AttributeReference is a resolved column reference: a stable ExprId
// plus its name, type, nullability, and optional qualifier (the table
// or subquery alias it came from).
type AttributeReference struct {
	leaf
	id        sql.ExprId
	name      string
	typ       sql.Type
	nullable  bool
	qualifier string
}

// NewAttributeReference mints a brand-new attribute with a fresh ExprId.
// Called at relation resolution (from the catalog schema) and wherever
// an Alias needs its own attribute identity.
func NewAttributeReference(name string, typ sql.Type, nullable bool, qualifier string) *AttributeReference {
	return &AttributeReference{id: sql.NewExprId(), name: name, typ: typ, nullable: nullable, qualifier: qualifier}
}

// RestoreAttributeReference reconstructs an attribute with an explicit
// ExprId, used when freshening (WithExprId) or round-tripping.
func RestoreAttributeReference(id sql.ExprId, name string, typ sql.Type, nullable bool, qualifier string) *AttributeReference {
	return &AttributeReference{id: id, name: name, typ: typ, nullable: nullable, qualifier: qualifier}
}

func (a *AttributeReference) ExprId() sql.ExprId { return a.id }
func (a *AttributeReference) Name() string       { return a.name }
func (a *AttributeReference) Qualifier() string  { return a.qualifier }
func (a *AttributeReference) Resolved() bool     { return a.typ != nil && a.typ != sql.Unknown }
func (a *AttributeReference) Type() sql.Type     { return a.typ }
func (a *AttributeReference) Nullable() bool     { return a.nullable }

// WithExprId returns a copy of this attribute with a fresh ExprId,
// keeping name/type/qualifier. Used by self-join deconfliction.
func (a *AttributeReference) WithExprId(id sql.ExprId) *AttributeReference {
	cp := *a
	cp.id = id
	return &cp
}

// WithQualifier returns a copy of this attribute qualified by q.
func (a *AttributeReference) WithQualifier(q string) *AttributeReference {
	cp := *a
	cp.qualifier = q
	return &cp
}

// Requalify returns e with its qualifier set to q, if e is an
// AttributeReference; any other expression is returned unchanged. Used
// by Subquery.Output to attach its own alias to the child's attributes.
func Requalify(e sql.Expression, q string) sql.Expression {
	if ar, ok := e.(*AttributeReference); ok {
		return ar.WithQualifier(q)
	}
	return e
}

func (a *AttributeReference) String() string {
	if a.qualifier != "" {
		return fmt.Sprintf("%s.%s#%d", a.qualifier, a.name, a.id)
	}
	return fmt.Sprintf("%s#%d", a.name, a.id)
}

func (a *AttributeReference) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("AttributeReference", children, 0); err != nil {
		return nil, err
	}
	return a, nil
}
