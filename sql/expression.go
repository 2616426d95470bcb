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

package sql

// Expression is the common capability of every expression-tree node:
// literals, column references, function calls, aliases, and anything
// built out of them. Resolved expressions have no Unresolved* node
// anywhere in their subtree and a known Type.
type Expression interface {
	// Children returns the expression's direct children, in evaluation
	// order.
	Children() []Expression
	// WithChildren returns a copy of this expression with its children
	// replaced. len(children) must equal len(e.Children()).
	WithChildren(children []Expression) (Expression, error)
	// Resolved reports whether this expression and its entire subtree
	// contain no Unresolved* node and has a known Type.
	Resolved() bool
	// Type returns the expression's data type. Unknown if unresolved.
	Type() Type
	// Nullable reports whether the expression may evaluate to NULL.
	Nullable() bool
	// String renders the expression for debugging and plan printing.
	String() string
}

// NamedExpression is an Expression that has a stable output name, such
// as an AttributeReference or an Alias. Star and raw UnresolvedFunction
// are not NamedExpression.
type NamedExpression interface {
	Expression
	Name() string
}

// Foldable is implemented by expressions whose value does not depend on
// the row being evaluated. Literal is the only implementation; function
// calls do not implement it, whatever their arguments.
// ExtractWindowExpressions only pulls out non-foldable window-function
// arguments.
type Foldable interface {
	Foldable() bool
}

// NonDeterministic is implemented by expressions whose value varies
// across invocations even given the same input row (random(), UUID
// generation, monotonically increasing ids). PullOutNondeterministic
// looks for this capability.
type NonDeterministic interface {
	Expression
	Deterministic() bool
}

// TransformExpressionsUp applies f to every expression in exprs,
// bottom-up, returning the rewritten list. A pure helper shared by every
// plan node's TransformExpressionsUp implementation.
func TransformExpressionsUp(f func(Expression) (Expression, error), exprs []Expression) ([]Expression, error) {
	out := make([]Expression, len(exprs))
	for i, e := range exprs {
		transformed, err := TransformExpressionUp(f, e)
		if err != nil {
			return nil, err
		}
		out[i] = transformed
	}
	return out, nil
}

// TransformExpressionUp rewrites e's children bottom-up, then applies f
// to the rewritten node itself.
func TransformExpressionUp(f func(Expression) (Expression, error), e Expression) (Expression, error) {
	children := e.Children()
	if len(children) == 0 {
		return f(e)
	}

	newChildren := make([]Expression, len(children))
	for i, c := range children {
		nc, err := TransformExpressionUp(f, c)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
	}

	newExpr, err := e.WithChildren(newChildren)
	if err != nil {
		return nil, err
	}
	return f(newExpr)
}

// TransformExpressionDown rewrites e top-down: f is applied first, then
// the (possibly replaced) node's children are rewritten recursively.
func TransformExpressionDown(f func(Expression) (Expression, error), e Expression) (Expression, error) {
	newExpr, err := f(e)
	if err != nil {
		return nil, err
	}

	children := newExpr.Children()
	if len(children) == 0 {
		return newExpr, nil
	}

	newChildren := make([]Expression, len(children))
	for i, c := range children {
		nc, err := TransformExpressionDown(f, c)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
	}
	return newExpr.WithChildren(newChildren)
}

// ExpressionsResolved reports whether every expression in exprs is
// Resolved.
func ExpressionsResolved(exprs ...Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// CollectExpressions walks e and its subtree, returning every node for
// which pred returns true.
func CollectExpressions(e Expression, pred func(Expression) bool) []Expression {
	var out []Expression
	var walk func(Expression)
	walk = func(x Expression) {
		if pred(x) {
			out = append(out, x)
		}
		for _, c := range x.Children() {
			walk(c)
		}
	}
	walk(e)
	return out
}
