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
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// pullOutNondeterministic lifts a NonDeterministic expression (random(),
// a UUID generator) out of any unary node other than Project or Filter
// whose output schema matches its child's, so the nondeterministic value
// is computed once per row rather than once per reference to it (spec
// §4.8). It runs Once: a node it inserts is recorded on the Analyzer's
// skip-list so a later pass of this same rule never re-lifts from it.
func pullOutNondeterministic(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		if a.nondeterministicSkip[node] {
			return node, nil
		}
		switch node.(type) {
		case *plan.Project, *plan.Filter:
			return node, nil
		}

		children := node.Children()
		if len(children) != 1 {
			return node, nil
		}
		child := children[0]
		if !schemaEquals(node.Schema(), child.Schema()) {
			return node, nil
		}

		var found []sql.Expression
		for _, e := range node.Expressions() {
			found = append(found, sql.CollectExpressions(e, isNonDeterministicExpr)...)
		}
		if len(found) == 0 {
			return node, nil
		}

		dedup := make(map[sql.Expression]*expression.Alias)
		var order []sql.Expression
		for _, e := range found {
			if _, ok := dedup[e]; ok {
				continue
			}
			name := "_nondeterministic"
			if named, ok := e.(sql.NamedExpression); ok {
				name = named.Name()
			}
			dedup[e] = expression.NewAlias(e, name)
			order = append(order, e)
		}

		// TransformExpressionUp reconstructs every non-leaf expression on
		// the way back up, so a nondeterministic call with arguments
		// never reaches this pass as the same pointer found above. Such
		// calls don't nest, so the Nth nondeterministic-shaped node
		// visited here corresponds positionally to found[N].
		seq := make([]*expression.Alias, len(found))
		for i, e := range found {
			seq[i] = dedup[e]
		}
		next := 0
		newExprs, err := sql.TransformExpressionsUp(func(e sql.Expression) (sql.Expression, error) {
			if !isNonDeterministicExpr(e) {
				return e, nil
			}
			al := seq[next]
			next++
			return al.ToAttribute(), nil
		}, node.Expressions())
		if err != nil {
			return nil, err
		}

		originalOutput := node.Output()

		newNode, err := node.WithExpressions(newExprs)
		if err != nil {
			return nil, err
		}

		liftedList := append([]sql.Expression{}, child.Output()...)
		for _, e := range order {
			liftedList = append(liftedList, dedup[e])
		}
		lowerProject := plan.NewProject(liftedList, child)
		a.nondeterministicSkip[lowerProject] = true

		newNode, err = newNode.WithChildren([]sql.Node{lowerProject})
		if err != nil {
			return nil, err
		}

		topProject := plan.NewProject(originalOutput, newNode)
		a.nondeterministicSkip[topProject] = true
		return topProject, nil
	}, n)
}

func isNonDeterministicExpr(e sql.Expression) bool {
	nd, ok := e.(sql.NonDeterministic)
	return ok && !nd.Deterministic()
}

func schemaEquals(a, b sql.Schema) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Nullable != b[i].Nullable || !a[i].Type.Equals(b[i].Type) {
			return false
		}
	}
	return true
}
