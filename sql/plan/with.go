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

// CTE names one WITH-clause common table expression.
type CTE struct {
	Name string
	Plan sql.Node
}

// With is the CTE binder introduced by a WITH clause; CTESubstitution
// rewrites it away (spec §4.2), replacing every UnresolvedRelation whose
// final name segment matches a CTE name with that CTE's plan.
type With struct {
	UnaryNode
	CTEs []CTE
}

// NewWith creates a new With binder.
func NewWith(child sql.Node, ctes []CTE) *With {
	return &With{UnaryNode: UnaryNode{child}, CTEs: ctes}
}

func (w *With) Expressions() []sql.Expression { return nil }
func (w *With) Schema() sql.Schema            { return w.Child.Schema() }
func (w *With) Output() []sql.Expression      { return w.Child.Output() }

// Resolved is always false until CTESubstitution removes this node:
// leaving a With in the tree past the Substitution batch is a sign
// CTESubstitution didn't fire, which CheckAnalysis should surface as an
// unresolved plan rather than silently treating it as done.
func (w *With) Resolved() bool { return false }

func (w *With) String() string { return "With(...)" }

func (w *With) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("With", children, 1); err != nil {
		return nil, err
	}
	return &With{UnaryNode: UnaryNode{children[0]}, CTEs: w.CTEs}, nil
}

func (w *With) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("With", exprs, 0); err != nil {
		return nil, err
	}
	return w, nil
}

// WindowDef names one WINDOW-clause window definition.
type WindowDef struct {
	Name string
	Spec sql.Expression // *expression.WindowSpecDefinition
}

// WithWindowDefinition binds named window specs for its child;
// WindowsSubstitution rewrites it away (spec §4.2).
type WithWindowDefinition struct {
	UnaryNode
	Defs []WindowDef
}

// NewWithWindowDefinition creates a new window-spec binder.
func NewWithWindowDefinition(defs []WindowDef, child sql.Node) *WithWindowDefinition {
	return &WithWindowDefinition{UnaryNode: UnaryNode{child}, Defs: defs}
}

func (w *WithWindowDefinition) Expressions() []sql.Expression { return nil }
func (w *WithWindowDefinition) Schema() sql.Schema            { return w.Child.Schema() }
func (w *WithWindowDefinition) Output() []sql.Expression      { return w.Child.Output() }
func (w *WithWindowDefinition) Resolved() bool                { return false }
func (w *WithWindowDefinition) String() string                { return "WithWindowDefinition(...)" }

func (w *WithWindowDefinition) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("WithWindowDefinition", children, 1); err != nil {
		return nil, err
	}
	return &WithWindowDefinition{UnaryNode: UnaryNode{children[0]}, Defs: w.Defs}, nil
}

func (w *WithWindowDefinition) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("WithWindowDefinition", exprs, 0); err != nil {
		return nil, err
	}
	return w, nil
}
