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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// WindowFrame describes the ROWS/RANGE bound of a window. Kept as a
// simple value type; the analyzer only needs it for equality grouping
// in ExtractWindowExpressions, never for evaluation.
type WindowFrame struct {
	Kind  string // "ROWS" or "RANGE"
	Start string // e.g. "UNBOUNDED PRECEDING", "CURRENT ROW"
	End   string
}

func (f WindowFrame) Equals(o WindowFrame) bool {
	return f.Kind == o.Kind && f.Start == o.Start && f.End == o.End
}

func (f WindowFrame) String() string {
	if f.Kind == "" {
		return ""
	}
	return fmt.Sprintf(" %s BETWEEN %s AND %s", f.Kind, f.Start, f.End)
}

// WindowSpecDefinition is OVER (PARTITION BY ... ORDER BY ... frame).
// Two definitions are equal (spec §4.7 "group them by WindowSpecDefinition")
// iff their partition spec, order spec, and frame are all equal.
type WindowSpecDefinition struct {
	PartitionSpec []sql.Expression
	OrderSpec     []*SortOrder
	Frame         WindowFrame
}

// NewWindowSpecDefinition builds a window spec.
func NewWindowSpecDefinition(partitionSpec []sql.Expression, orderSpec []*SortOrder, frame WindowFrame) *WindowSpecDefinition {
	return &WindowSpecDefinition{PartitionSpec: partitionSpec, OrderSpec: orderSpec, Frame: frame}
}

func (w *WindowSpecDefinition) Children() []sql.Expression {
	out := append([]sql.Expression{}, w.PartitionSpec...)
	for _, o := range w.OrderSpec {
		out = append(out, o)
	}
	return out
}

func (w *WindowSpecDefinition) Resolved() bool {
	return sql.ExpressionsResolved(w.PartitionSpec...) && sortOrdersResolved(w.OrderSpec)
}

func sortOrdersResolved(orders []*SortOrder) bool {
	for _, o := range orders {
		if !o.Resolved() {
			return false
		}
	}
	return true
}

func (w *WindowSpecDefinition) Type() sql.Type { return sql.Unknown }
func (w *WindowSpecDefinition) Nullable() bool { return true }

func (w *WindowSpecDefinition) String() string {
	var parts []string
	if len(w.PartitionSpec) > 0 {
		var ps []string
		for _, p := range w.PartitionSpec {
			ps = append(ps, p.String())
		}
		parts = append(parts, "PARTITION BY "+strings.Join(ps, ", "))
	}
	if len(w.OrderSpec) > 0 {
		var os []string
		for _, o := range w.OrderSpec {
			os = append(os, o.String())
		}
		parts = append(parts, "ORDER BY "+strings.Join(os, ", "))
	}
	return "(" + strings.Join(parts, " ") + w.Frame.String() + ")"
}

// Equals reports whether two window specs are equal for grouping
// purposes: same partition spec, order spec, and frame.
func (w *WindowSpecDefinition) Equals(o *WindowSpecDefinition) bool {
	if o == nil {
		return false
	}
	if !w.Frame.Equals(o.Frame) {
		return false
	}
	if len(w.PartitionSpec) != len(o.PartitionSpec) || len(w.OrderSpec) != len(o.OrderSpec) {
		return false
	}
	for i := range w.PartitionSpec {
		if !SemanticEquals(w.PartitionSpec[i], o.PartitionSpec[i]) {
			return false
		}
	}
	for i := range w.OrderSpec {
		if w.OrderSpec[i].Direction != o.OrderSpec[i].Direction {
			return false
		}
		if !SemanticEquals(w.OrderSpec[i].Child, o.OrderSpec[i].Child) {
			return false
		}
	}
	return true
}

func (w *WindowSpecDefinition) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if len(children) != len(w.PartitionSpec)+len(w.OrderSpec) {
		return nil, sql.ErrInvalidChildrenCount.New("WindowSpecDefinition", len(children), len(w.PartitionSpec)+len(w.OrderSpec))
	}
	newPartition := append([]sql.Expression{}, children[:len(w.PartitionSpec)]...)
	rest := children[len(w.PartitionSpec):]
	newOrder := make([]*SortOrder, len(w.OrderSpec))
	for i, o := range w.OrderSpec {
		newOrder[i] = &SortOrder{Child: rest[i], Direction: o.Direction}
	}
	return &WindowSpecDefinition{PartitionSpec: newPartition, OrderSpec: newOrder, Frame: w.Frame}, nil
}

// WindowSpecReference is an unresolved OVER(windowName) reference,
// rewritten into a WindowExpression by WindowsSubstitution.
type WindowSpecReference struct {
	leaf
	Name string
}

// NewWindowSpecReference names a declared window to reference.
func NewWindowSpecReference(name string) *WindowSpecReference { return &WindowSpecReference{Name: name} }

func (w *WindowSpecReference) Resolved() bool { return false }
func (w *WindowSpecReference) Type() sql.Type { return sql.Unknown }
func (w *WindowSpecReference) Nullable() bool { return true }
func (w *WindowSpecReference) String() string { return w.Name }

func (w *WindowSpecReference) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("WindowSpecReference", children, 0); err != nil {
		return nil, err
	}
	return w, nil
}

// WindowExpression is a window function call bound to a concrete spec:
// RANK() OVER (PARTITION BY a ORDER BY b).
type WindowExpression struct {
	Function sql.Expression
	Spec     *WindowSpecDefinition
}

// NewWindowExpression binds function to spec.
func NewWindowExpression(function sql.Expression, spec *WindowSpecDefinition) *WindowExpression {
	return &WindowExpression{Function: function, Spec: spec}
}

func (w *WindowExpression) Children() []sql.Expression { return []sql.Expression{w.Function, w.Spec} }
func (w *WindowExpression) Resolved() bool             { return w.Function.Resolved() && w.Spec.Resolved() }
func (w *WindowExpression) Type() sql.Type             { return w.Function.Type() }
func (w *WindowExpression) Nullable() bool             { return w.Function.Nullable() }
func (w *WindowExpression) String() string {
	return w.Function.String() + " OVER " + w.Spec.String()
}

func (w *WindowExpression) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("WindowExpression", children, 2); err != nil {
		return nil, err
	}
	spec, ok := children[1].(*WindowSpecDefinition)
	if !ok {
		return nil, sql.ErrInvalidChildrenCount.New("WindowExpression", 1, 1)
	}
	return &WindowExpression{Function: children[0], Spec: spec}, nil
}

// ContainsWindowExpression reports whether e or any descendant is a
// *WindowExpression.
func ContainsWindowExpression(e sql.Expression) bool {
	if _, ok := e.(*WindowExpression); ok {
		return true
	}
	for _, c := range e.Children() {
		if ContainsWindowExpression(c) {
			return true
		}
	}
	return false
}
