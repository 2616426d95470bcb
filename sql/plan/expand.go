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

// Expand emits one output row per input row per mask in Masks, nulling
// any grouping attribute whose corresponding bit is unset, and setting
// GroupingIDAttr to the mask value (spec §4.4). It is the physical-ish
// operator ResolveGroupingAnalytics lowers CUBE/ROLLUP/GroupingSets into.
type Expand struct {
	UnaryNode
	Masks           []int64
	GroupByAttrs    []*expression.AttributeReference
	GroupingIDAttr  *expression.AttributeReference
}

// NewExpand creates a new Expand.
func NewExpand(masks []int64, groupByAttrs []*expression.AttributeReference, groupingIDAttr *expression.AttributeReference, child sql.Node) *Expand {
	return &Expand{UnaryNode: UnaryNode{child}, Masks: masks, GroupByAttrs: groupByAttrs, GroupingIDAttr: groupingIDAttr}
}

func (e *Expand) Expressions() []sql.Expression { return nil }

func (e *Expand) Output() []sql.Expression {
	out := append([]sql.Expression{}, e.Child.Output()...)
	out = append(out, e.GroupingIDAttr)
	return out
}

func (e *Expand) Schema() sql.Schema { return schemaOf(e.Output()) }

func (e *Expand) Resolved() bool { return e.Child.Resolved() }

func (e *Expand) String() string { return "Expand(...)" }

func (e *Expand) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Expand", children, 1); err != nil {
		return nil, err
	}
	return &Expand{UnaryNode: UnaryNode{children[0]}, Masks: e.Masks, GroupByAttrs: e.GroupByAttrs, GroupingIDAttr: e.GroupingIDAttr}, nil
}

func (e *Expand) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Expand", exprs, 0); err != nil {
		return nil, err
	}
	return e, nil
}
