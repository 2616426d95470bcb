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

import (
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

// LocalRelation is an already-resolved, in-memory relation: a fixed
// list of output attributes and (conceptually) a fixed set of rows. It
// implements MultiInstanceRelation (spec §9 open question #3: widened
// beyond just catalog-backed relations) so it can appear twice in a
// self-joined plan without sharing ExprIds.
type LocalRelation struct {
	Name       string
	Attributes []*expression.AttributeReference
}

// NewLocalRelation builds a LocalRelation with the given output attributes.
func NewLocalRelation(name string, attrs []*expression.AttributeReference) *LocalRelation {
	return &LocalRelation{Name: name, Attributes: attrs}
}

func (l *LocalRelation) Children() []sql.Node          { return nil }
func (l *LocalRelation) Expressions() []sql.Expression { return nil }
func (l *LocalRelation) Schema() sql.Schema            { return schemaOf(l.Output()) }

func (l *LocalRelation) Output() []sql.Expression {
	out := make([]sql.Expression, len(l.Attributes))
	for i, a := range l.Attributes {
		out[i] = a
	}
	return out
}

func (l *LocalRelation) Resolved() bool { return true }
func (l *LocalRelation) String() string { return "LocalRelation(" + l.Name + ")" }

func (l *LocalRelation) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("LocalRelation", children, 0); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *LocalRelation) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("LocalRelation", exprs, 0); err != nil {
		return nil, err
	}
	return l, nil
}

// NewInstance implements MultiInstanceRelation: it returns a copy of
// this relation with every attribute given a fresh ExprId.
func (l *LocalRelation) NewInstance() (sql.Node, error) {
	newAttrs := make([]*expression.AttributeReference, len(l.Attributes))
	for i, a := range l.Attributes {
		newAttrs[i] = expression.RestoreAttributeReference(sql.NewExprId(), a.Name(), a.Type(), a.Nullable(), a.Qualifier())
	}
	return &LocalRelation{Name: l.Name, Attributes: newAttrs}, nil
}
