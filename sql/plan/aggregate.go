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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// Aggregate groups its child's rows by GroupByExprs and evaluates
// AggregateExprs (a mix of grouping expressions and aggregate function
// calls, each a NamedExpression) per group.
type Aggregate struct {
	UnaryNode
	GroupByExprs   []sql.Expression
	AggregateExprs []sql.Expression
}

// NewAggregate creates a new Aggregate.
func NewAggregate(groupByExprs, aggregateExprs []sql.Expression, child sql.Node) *Aggregate {
	return &Aggregate{UnaryNode: UnaryNode{child}, GroupByExprs: groupByExprs, AggregateExprs: aggregateExprs}
}

func (a *Aggregate) Expressions() []sql.Expression {
	out := make([]sql.Expression, 0, len(a.GroupByExprs)+len(a.AggregateExprs))
	out = append(out, a.GroupByExprs...)
	out = append(out, a.AggregateExprs...)
	return out
}

func (a *Aggregate) Schema() sql.Schema     { return schemaOf(outputOf(a.AggregateExprs)) }
func (a *Aggregate) Output() []sql.Expression { return outputOf(a.AggregateExprs) }

func (a *Aggregate) Resolved() bool {
	return a.Child.Resolved() &&
		sql.ExpressionsResolved(a.GroupByExprs...) &&
		sql.ExpressionsResolved(a.AggregateExprs...)
}

func (a *Aggregate) String() string {
	var gb, ag []string
	for _, e := range a.GroupByExprs {
		gb = append(gb, e.String())
	}
	for _, e := range a.AggregateExprs {
		ag = append(ag, e.String())
	}
	return "Aggregate(group=[" + strings.Join(gb, ", ") + "], select=[" + strings.Join(ag, ", ") + "])"
}

func (a *Aggregate) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Aggregate", children, 1); err != nil {
		return nil, err
	}
	return &Aggregate{UnaryNode: UnaryNode{children[0]}, GroupByExprs: a.GroupByExprs, AggregateExprs: a.AggregateExprs}, nil
}

func (a *Aggregate) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Aggregate", exprs, len(a.GroupByExprs)+len(a.AggregateExprs)); err != nil {
		return nil, err
	}
	n := len(a.GroupByExprs)
	return &Aggregate{UnaryNode: a.UnaryNode, GroupByExprs: exprs[:n], AggregateExprs: exprs[n:]}, nil
}
