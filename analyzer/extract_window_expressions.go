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

package analyzer

import (
	"fmt"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// extractWindowExpressions handles the three places a WindowExpression
// can appear in an otherwise-ordinary select list: a Project, an
// Aggregate, and a Filter sitting directly over an Aggregate (spec
// §4.7). Each case runs the same Extract-then-AddWindow rewrite over
// its select list and child.
func extractWindowExpressions(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.Filter:
			agg, ok := node.Child.(*plan.Aggregate)
			if !ok || !containsWindowExpr(agg.AggregateExprs) {
				return node, nil
			}
			lifted, err := liftWindowExpressions(agg.AggregateExprs, agg.Child)
			if err != nil {
				return nil, err
			}
			return plan.NewFilter(node.Condition, lifted), nil
		case *plan.Aggregate:
			if !containsWindowExpr(node.AggregateExprs) {
				return node, nil
			}
			return liftWindowExpressions(node.AggregateExprs, node.Child)
		case *plan.Project:
			if !containsWindowExpr(node.ProjectList) {
				return node, nil
			}
			return liftWindowExpressions(node.ProjectList, node.Child)
		default:
			return node, nil
		}
	}, n)
}

func containsWindowExpr(exprs []sql.Expression) bool {
	for _, e := range exprs {
		if expression.ContainsWindowExpression(e) {
			return true
		}
	}
	return false
}

// liftWindowExpressions runs the Extract step (pulling non-foldable
// window arguments into a widened Project) followed by the AddWindow
// step (grouping WindowExpressions by spec and wrapping the child in
// one Window node per group), finishing with a Project that restores
// selectExprs exactly.
func liftWindowExpressions(selectExprs []sql.Expression, child sql.Node) (sql.Node, error) {
	var windowExprs []*expression.WindowExpression
	for _, e := range selectExprs {
		for _, c := range sql.CollectExpressions(e, isWindowExpression) {
			windowExprs = append(windowExprs, c.(*expression.WindowExpression))
		}
	}
	if len(windowExprs) == 0 {
		return plan.NewProject(selectExprs, child), nil
	}

	extractChild, rewrittenWindows, err := extractWindowArguments(windowExprs, child)
	if err != nil {
		return nil, err
	}

	finalChild, rewrittenToAttr := addWindowNodes(rewrittenWindows, extractChild)

	// TransformExpressionUp reconstructs every non-leaf node it visits
	// via WithChildren on the way back up, so neither the original nor
	// the rewritten WindowExpression pointers survive into the restore
	// pass below. Window functions don't nest, so the Nth
	// WindowExpression node TransformExpressionsUp reaches corresponds
	// positionally to windowExprs[N], collected in the same left-to-right
	// order above.
	attrs := make([]*expression.AttributeReference, len(windowExprs))
	for i, we := range rewrittenWindows {
		attrs[i] = rewrittenToAttr[we]
	}

	next := 0
	restored, err := sql.TransformExpressionsUp(func(e sql.Expression) (sql.Expression, error) {
		if _, ok := e.(*expression.WindowExpression); !ok {
			return e, nil
		}
		attr := attrs[next]
		next++
		return attr, nil
	}, selectExprs)
	if err != nil {
		return nil, err
	}

	return plan.NewProject(restored, finalChild), nil
}

func isWindowExpression(e sql.Expression) bool {
	_, ok := e.(*expression.WindowExpression)
	return ok
}

// extractWindowArguments pulls every non-foldable, non-attribute
// sub-expression referenced by a window function's arguments, partition
// spec, or order spec into a fresh _w{n} alias over child, deduplicating
// identical extractions. It returns the widened child (or child itself
// if nothing needed extracting) and the window expressions rewritten to
// reference the new aliases.
func extractWindowArguments(windowExprs []*expression.WindowExpression, child sql.Node) (sql.Node, []*expression.WindowExpression, error) {
	var extracted []sql.Expression
	var aliasFor []*expression.Alias

	extractOne := func(e sql.Expression) sql.Expression {
		if _, ok := e.(*expression.AttributeReference); ok {
			return nil
		}
		if f, ok := e.(sql.Foldable); ok && f.Foldable() {
			return nil
		}
		for i, prior := range extracted {
			if expression.SemanticEquals(prior, e) {
				return aliasFor[i].ToAttribute()
			}
		}
		al := expression.NewAlias(e, fmt.Sprintf("_w%d", len(extracted)))
		extracted = append(extracted, e)
		aliasFor = append(aliasFor, al)
		return al.ToAttribute()
	}

	rewriteArgList := func(args []sql.Expression) []sql.Expression {
		out := make([]sql.Expression, len(args))
		for i, arg := range args {
			if replaced := extractOne(arg); replaced != nil {
				out[i] = replaced
			} else {
				out[i] = arg
			}
		}
		return out
	}

	rewritten := make([]*expression.WindowExpression, len(windowExprs))
	for i, we := range windowExprs {
		fn := we.Function
		if fnArgs := fn.Children(); len(fnArgs) > 0 {
			newArgs := rewriteArgList(fnArgs)
			newFn, err := fn.WithChildren(newArgs)
			if err != nil {
				return nil, nil, err
			}
			fn = newFn
		}

		spec := we.Spec
		newPartition := rewriteArgList(spec.PartitionSpec)
		newOrder := make([]*expression.SortOrder, len(spec.OrderSpec))
		for j, o := range spec.OrderSpec {
			newChild := rewriteArgList([]sql.Expression{o.Child})[0]
			newOrder[j] = expression.NewSortOrder(newChild, o.Direction)
		}
		newSpec := expression.NewWindowSpecDefinition(newPartition, newOrder, spec.Frame)

		rewritten[i] = expression.NewWindowExpression(fn, newSpec)
	}

	if len(extracted) == 0 {
		return child, rewritten, nil
	}

	newList := append([]sql.Expression{}, child.Output()...)
	for _, al := range aliasFor {
		newList = append(newList, al)
	}
	return plan.NewProject(newList, child), rewritten, nil
}

// addWindowNodes groups rewritten window expressions by their
// WindowSpecDefinition and wraps child in one plan.Window per group,
// returning the final child and a map from each rewritten
// WindowExpression to the AttributeReference it is now available under.
func addWindowNodes(windows []*expression.WindowExpression, child sql.Node) (sql.Node, map[*expression.WindowExpression]*expression.AttributeReference) {
	attrFor := make(map[*expression.WindowExpression]*expression.AttributeReference, len(windows))

	var groups [][]*expression.WindowExpression
	for _, we := range windows {
		placed := false
		for gi, g := range groups {
			if g[0].Spec.Equals(we.Spec) {
				groups[gi] = append(g, we)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []*expression.WindowExpression{we})
		}
	}

	counter := 0
	cur := child
	for _, g := range groups {
		aliases := make([]sql.Expression, len(g))
		for i, we := range g {
			al := expression.NewAlias(we, fmt.Sprintf("_we%d", counter))
			counter++
			aliases[i] = al
			attrFor[we] = al.ToAttribute()
		}
		cur = plan.NewWindow(aliases, cur)
	}
	return cur, attrFor
}
