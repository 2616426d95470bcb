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

import "github.com/suyanNone/logicalplan/sql"

// Filter applies a boolean condition over its child's rows.
type Filter struct {
	UnaryNode
	Condition sql.Expression
}

// NewFilter creates a new Filter.
func NewFilter(condition sql.Expression, child sql.Node) *Filter {
	return &Filter{UnaryNode: UnaryNode{child}, Condition: condition}
}

func (f *Filter) Expressions() []sql.Expression { return []sql.Expression{f.Condition} }
func (f *Filter) Schema() sql.Schema            { return f.Child.Schema() }
func (f *Filter) Output() []sql.Expression      { return f.Child.Output() }

func (f *Filter) Resolved() bool {
	return f.Child.Resolved() && f.Condition.Resolved()
}

func (f *Filter) String() string { return "Filter(" + f.Condition.String() + ")" }

func (f *Filter) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Filter", children, 1); err != nil {
		return nil, err
	}
	return &Filter{UnaryNode: UnaryNode{children[0]}, Condition: f.Condition}, nil
}

func (f *Filter) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Filter", exprs, 1); err != nil {
		return nil, err
	}
	return &Filter{UnaryNode: f.UnaryNode, Condition: exprs[0]}, nil
}
