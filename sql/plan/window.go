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

// Window evaluates WindowExprs (each an alias over a *expression.WindowExpression
// sharing the same WindowSpecDefinition) over its child's rows, adding
// them to the child's existing output (spec §4.7 "AddWindow step").
type Window struct {
	UnaryNode
	WindowExprs []sql.Expression // aliases over WindowExpression, one spec per Window node
}

// NewWindow creates a new Window.
func NewWindow(windowExprs []sql.Expression, child sql.Node) *Window {
	return &Window{UnaryNode: UnaryNode{child}, WindowExprs: windowExprs}
}

func (w *Window) Expressions() []sql.Expression { return w.WindowExprs }

func (w *Window) Schema() sql.Schema {
	return append(w.Child.Schema(), schemaOf(outputOf(w.WindowExprs))...)
}

func (w *Window) Output() []sql.Expression {
	return append(append([]sql.Expression{}, w.Child.Output()...), outputOf(w.WindowExprs)...)
}

func (w *Window) Resolved() bool {
	return w.Child.Resolved() && sql.ExpressionsResolved(w.WindowExprs...)
}

func (w *Window) String() string { return "Window(...)" }

func (w *Window) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Window", children, 1); err != nil {
		return nil, err
	}
	return &Window{UnaryNode: UnaryNode{children[0]}, WindowExprs: w.WindowExprs}, nil
}

func (w *Window) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Window", exprs, len(w.WindowExprs)); err != nil {
		return nil, err
	}
	return &Window{UnaryNode: w.UnaryNode, WindowExprs: exprs}, nil
}
