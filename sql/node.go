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

// Node is the common capability of every logical plan node. It is a
// small, fixed capability set (see spec.md DESIGN NOTES: "Reflective
// tree traversal") rather than an open class hierarchy: every node
// variant implements it directly, and the rule executor never
// introspects struct fields to find children.
type Node interface {
	// Children returns this node's immediate child plans, in order.
	Children() []Node
	// WithChildren returns a copy of this node with its children
	// replaced. len(children) must equal len(n.Children()).
	WithChildren(children []Node) (Node, error)
	// Expressions returns the expressions this node directly carries
	// (projection lists, filter conditions, sort orders, and so on).
	// It does not recurse into child plans.
	Expressions() []Expression
	// WithExpressions returns a copy of this node with its own
	// expressions replaced. len(exprs) must equal len(n.Expressions()).
	WithExpressions(exprs []Expression) (Node, error)
	// Schema returns the ordered output attributes this node produces.
	Schema() Schema
	// Output returns the ordered AttributeReferences this node
	// produces. For a resolved node these carry real ExprIds; for an
	// unresolved node Output may be empty.
	Output() []Expression
	// Resolved reports whether this node, its expressions, and all of
	// its children are fully resolved.
	Resolved() bool
	// String renders the node for debugging and plan printing.
	String() string
}

// MultiInstanceRelation is implemented by plan leaves that may appear
// more than once in the same plan tree (by identity, as in a self-join)
// and therefore need a way to mint a structurally identical copy with
// fresh ExprIds. Widened per spec.md §9 open question #3 to include
// LocalRelation as well as resolved relations.
type MultiInstanceRelation interface {
	Node
	// NewInstance returns a copy of this node with every
	// AttributeReference it produces assigned a fresh ExprId.
	NewInstance() (Node, error)
}

// TransformUp rewrites n's children bottom-up, then applies f to the
// rewritten node itself.
func TransformUp(f func(Node) (Node, error), n Node) (Node, error) {
	children := n.Children()
	if len(children) == 0 {
		return f(n)
	}

	newChildren := make([]Node, len(children))
	for i, c := range children {
		nc, err := TransformUp(f, c)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
	}

	newNode, err := n.WithChildren(newChildren)
	if err != nil {
		return nil, err
	}
	return f(newNode)
}

// TransformDown rewrites n top-down: f is applied first, then the
// (possibly replaced) node's children are rewritten recursively.
func TransformDown(f func(Node) (Node, error), n Node) (Node, error) {
	newNode, err := f(n)
	if err != nil {
		return nil, err
	}

	children := newNode.Children()
	if len(children) == 0 {
		return newNode, nil
	}

	newChildren := make([]Node, len(children))
	for i, c := range children {
		nc, err := TransformDown(f, c)
		if err != nil {
			return nil, err
		}
		newChildren[i] = nc
	}
	return newNode.WithChildren(newChildren)
}

// transformNodeExpressions rewrites every expression n carries (but not
// its children's expressions) bottom-up through f.
func transformNodeExpressions(f func(Expression) (Expression, error), n Node) (Node, error) {
	exprs := n.Expressions()
	if len(exprs) == 0 {
		return n, nil
	}
	newExprs, err := TransformExpressionsUp(f, exprs)
	if err != nil {
		return nil, err
	}
	return n.WithExpressions(newExprs)
}

// TransformExpressionsUpAllNodes walks the whole plan tree bottom-up,
// rewriting every expression of every node through f.
func TransformExpressionsUpAllNodes(f func(Expression) (Expression, error), n Node) (Node, error) {
	return TransformUp(func(node Node) (Node, error) {
		return transformNodeExpressions(f, node)
	}, n)
}

// Collect walks n and its subtree, returning every node for which pred
// returns true.
func Collect(n Node, pred func(Node) bool) []Node {
	var out []Node
	var walk func(Node)
	walk = func(x Node) {
		if pred(x) {
			out = append(out, x)
		}
		for _, c := range x.Children() {
			walk(c)
		}
	}
	walk(n)
	return out
}

// CollectFirst returns the first node (pre-order, top-down) for which
// pred returns true, and true if one was found.
func CollectFirst(n Node, pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, c := range n.Children() {
		if found, ok := CollectFirst(c, pred); ok {
			return found, true
		}
	}
	return nil, false
}

// ChildrenResolved reports whether every direct child of n is Resolved.
func ChildrenResolved(n Node) bool {
	for _, c := range n.Children() {
		if !c.Resolved() {
			return false
		}
	}
	return true
}
