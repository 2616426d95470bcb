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

// resolveAliases replaces every UnresolvedAlias in a Project's or
// Aggregate's output list with a concrete Alias or MultiAlias, once the
// node's child is resolved (spec §4.5).
func resolveAliases(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.Project:
			if !node.Child.Resolved() {
				return node, nil
			}
			list, err := assignAliases(node.ProjectList)
			if err != nil {
				return nil, err
			}
			return node.WithExpressions(list)
		case *plan.Aggregate:
			if !node.Child.Resolved() {
				return node, nil
			}
			aggs, err := assignAliases(node.AggregateExprs)
			if err != nil {
				return nil, err
			}
			return node.WithExpressions(append(append([]sql.Expression{}, node.GroupByExprs...), aggs...))
		default:
			return node, nil
		}
	}, n)
}

func assignAliases(list []sql.Expression) ([]sql.Expression, error) {
	out := make([]sql.Expression, len(list))
	for i, e := range list {
		ua, ok := e.(*expression.UnresolvedAlias)
		if !ok {
			out[i] = e
			continue
		}
		out[i] = resolveOneAlias(ua.Child, i)
	}
	return out, nil
}

// resolveOneAlias implements the dispatch of spec §4.5's ResolveAliases
// for a single UnresolvedAlias child.
func resolveOneAlias(child sql.Expression, index int) sql.Expression {
	if !child.Resolved() {
		return expression.NewUnresolvedAlias(child)
	}

	switch c := child.(type) {
	case *expression.GetStructField:
		return expression.NewAlias(c, c.FieldName)
	case *expression.GetArrayStructFields:
		return expression.NewAlias(c, c.FieldName)
	case sql.NamedExpression:
		return child
	default:
		if gen, ok := child.(expression.Generator); ok && len(gen.ElementTypes()) > 1 {
			return expression.NewMultiAlias(gen)
		}
		return expression.NewAlias(child, fmt.Sprintf("_c%d", index))
	}
}
