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

// UnresolvedAttribute is a column reference as parsed: a list of dotted
// name parts (e.g. []string{"a", "b"} for "a.b") not yet bound to a
// schema element.
type UnresolvedAttribute struct {
	leaf
	NameParts []string
}

// NewUnresolvedAttribute builds an UnresolvedAttribute from dotted name
// parts.
func NewUnresolvedAttribute(nameParts ...string) *UnresolvedAttribute {
	return &UnresolvedAttribute{NameParts: nameParts}
}

func (u *UnresolvedAttribute) Resolved() bool { return false }
func (u *UnresolvedAttribute) Type() sql.Type { return sql.Unknown }
func (u *UnresolvedAttribute) Nullable() bool { return true }
func (u *UnresolvedAttribute) Name() string   { return strings.Join(u.NameParts, ".") }
func (u *UnresolvedAttribute) String() string { return "'" + u.Name() }

func (u *UnresolvedAttribute) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("UnresolvedAttribute", children, 0); err != nil {
		return nil, err
	}
	return u, nil
}

// UnresolvedFunction is a function call as parsed: a name plus already
// (or not yet) resolved argument expressions.
type UnresolvedFunction struct {
	Name       string
	IsDistinct bool
	Args       []sql.Expression
}

// NewUnresolvedFunction builds an UnresolvedFunction call.
func NewUnresolvedFunction(name string, isDistinct bool, args ...sql.Expression) *UnresolvedFunction {
	return &UnresolvedFunction{Name: name, IsDistinct: isDistinct, Args: args}
}

func (u *UnresolvedFunction) Children() []sql.Expression { return u.Args }
func (u *UnresolvedFunction) Resolved() bool             { return false }
func (u *UnresolvedFunction) Type() sql.Type             { return sql.Unknown }
func (u *UnresolvedFunction) Nullable() bool             { return true }
func (u *UnresolvedFunction) String() string             { return u.Name + "(...)" }

func (u *UnresolvedFunction) WithChildren(children []sql.Expression) (sql.Expression, error) {
	return &UnresolvedFunction{Name: u.Name, IsDistinct: u.IsDistinct, Args: children}, nil
}

// UnresolvedAlias wraps an expression whose output name has not yet
// been determined; ResolveAliases replaces it with a concrete Alias or
// MultiAlias once the child's shape is known.
type UnresolvedAlias struct {
	Child sql.Expression
}

// NewUnresolvedAlias wraps child pending name assignment.
func NewUnresolvedAlias(child sql.Expression) *UnresolvedAlias {
	return &UnresolvedAlias{Child: child}
}

func (u *UnresolvedAlias) Children() []sql.Expression { return []sql.Expression{u.Child} }
func (u *UnresolvedAlias) Resolved() bool             { return false }
func (u *UnresolvedAlias) Type() sql.Type             { return u.Child.Type() }
func (u *UnresolvedAlias) Nullable() bool             { return u.Child.Nullable() }
func (u *UnresolvedAlias) String() string             { return u.Child.String() }

func (u *UnresolvedAlias) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("UnresolvedAlias", children, 1); err != nil {
		return nil, err
	}
	return &UnresolvedAlias{Child: children[0]}, nil
}

// UnresolvedExtractValue represents child.field / child[field] before
// the field access has been bound to a concrete struct/array accessor.
type UnresolvedExtractValue struct {
	Child sql.Expression
	Field string
}

// NewUnresolvedExtractValue builds an unbound field-access expression.
func NewUnresolvedExtractValue(child sql.Expression, field string) *UnresolvedExtractValue {
	return &UnresolvedExtractValue{Child: child, Field: field}
}

func (u *UnresolvedExtractValue) Children() []sql.Expression { return []sql.Expression{u.Child} }
func (u *UnresolvedExtractValue) Resolved() bool             { return false }
func (u *UnresolvedExtractValue) Type() sql.Type             { return sql.Unknown }
func (u *UnresolvedExtractValue) Nullable() bool             { return true }
func (u *UnresolvedExtractValue) String() string             { return u.Child.String() + "." + u.Field }

func (u *UnresolvedExtractValue) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("UnresolvedExtractValue", children, 1); err != nil {
		return nil, err
	}
	return &UnresolvedExtractValue{Child: children[0], Field: u.Field}, nil
}

// UnresolvedWindowExpression pairs a window function call with a
// reference to a named window spec (OVER windowName) that
// WindowsSubstitution must still resolve against a WithWindowDefinition.
type UnresolvedWindowExpression struct {
	Function     sql.Expression
	WindowSpecId *WindowSpecReference
}

// NewUnresolvedWindowExpression builds an OVER(windowName) reference.
func NewUnresolvedWindowExpression(function sql.Expression, ref *WindowSpecReference) *UnresolvedWindowExpression {
	return &UnresolvedWindowExpression{Function: function, WindowSpecId: ref}
}

func (u *UnresolvedWindowExpression) Children() []sql.Expression {
	return []sql.Expression{u.Function, u.WindowSpecId}
}
func (u *UnresolvedWindowExpression) Resolved() bool { return false }
func (u *UnresolvedWindowExpression) Type() sql.Type { return sql.Unknown }
func (u *UnresolvedWindowExpression) Nullable() bool { return true }
func (u *UnresolvedWindowExpression) String() string {
	return u.Function.String() + " OVER " + u.WindowSpecId.String()
}

func (u *UnresolvedWindowExpression) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("UnresolvedWindowExpression", children, 2); err != nil {
		return nil, err
	}
	ref, ok := children[1].(*WindowSpecReference)
	if !ok {
		return nil, sql.ErrInvalidChildrenCount.New("UnresolvedWindowExpression", 1, 1)
	}
	return &UnresolvedWindowExpression{Function: children[0], WindowSpecId: ref}, nil
}
