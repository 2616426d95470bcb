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
	"github.com/suyanNone/logicalplan/sql/plan"
)

// cteSubstitution rewrites With(child, ctes) into substituteCTE(child,
// ctes), matching each UnresolvedRelation's final name segment against
// a declared CTE name (spec §4.2). CTE names take precedence over
// catalog names and shadow them when they collide (spec §8 boundary
// case).
func cteSubstitution(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformDown(func(node sql.Node) (sql.Node, error) {
		with, ok := node.(*plan.With)
		if !ok {
			return node, nil
		}
		return substituteCTE(with.Child, with.CTEs, ctx.Resolver())
	}, n)
}

func substituteCTE(n sql.Node, ctes []plan.CTE, resolve sql.Resolver) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		ur, ok := node.(*plan.UnresolvedRelation)
		if !ok {
			return node, nil
		}
		for _, cte := range ctes {
			if !resolve(cte.Name, ur.Table.Table) {
				continue
			}
			if ur.Alias != "" {
				return plan.NewSubquery(ur.Alias, cte.Plan), nil
			}
			return cte.Plan, nil
		}
		return node, nil
	}, n)
}
