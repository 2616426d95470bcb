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

// ResolvedTable is what ResolveRelations replaces an UnresolvedRelation
// with on a catalog hit: a concrete name, schema, and a fresh
// AttributeReference per column qualified by the table's name. It
// implements MultiInstanceRelation so a self-join can freshen one side.
type ResolvedTable struct {
	TableName  string
	Attributes []*expression.AttributeReference
}

// NewResolvedTable mints fresh attributes for schema, qualified by name.
func NewResolvedTable(name string, schema sql.Schema) *ResolvedTable {
	attrs := make([]*expression.AttributeReference, len(schema))
	for i, c := range schema {
		attrs[i] = expression.NewAttributeReference(c.Name, c.Type, c.Nullable, name)
	}
	return &ResolvedTable{TableName: name, Attributes: attrs}
}

func (r *ResolvedTable) Children() []sql.Node          { return nil }
func (r *ResolvedTable) Expressions() []sql.Expression { return nil }
func (r *ResolvedTable) Schema() sql.Schema            { return schemaOf(r.Output()) }

func (r *ResolvedTable) Output() []sql.Expression {
	out := make([]sql.Expression, len(r.Attributes))
	for i, a := range r.Attributes {
		out[i] = a
	}
	return out
}

func (r *ResolvedTable) Resolved() bool { return true }
func (r *ResolvedTable) String() string { return "Table(" + r.TableName + ")" }

func (r *ResolvedTable) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("ResolvedTable", children, 0); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ResolvedTable) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("ResolvedTable", exprs, 0); err != nil {
		return nil, err
	}
	return r, nil
}

// NewInstance implements MultiInstanceRelation: a copy of this table
// with every attribute given a fresh ExprId, used to deconflict a
// self-join (spec §4.3).
func (r *ResolvedTable) NewInstance() (sql.Node, error) {
	newAttrs := make([]*expression.AttributeReference, len(r.Attributes))
	for i, a := range r.Attributes {
		newAttrs[i] = expression.RestoreAttributeReference(sql.NewExprId(), a.Name(), a.Type(), a.Nullable(), a.Qualifier())
	}
	return &ResolvedTable{TableName: r.TableName, Attributes: newAttrs}, nil
}
