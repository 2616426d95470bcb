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

// globalAggregates rewrites a Project whose output list contains an
// aggregate expression but has no enclosing Aggregate into
// Aggregate(nil, list, child) — a SELECT SUM(x) FROM t with no GROUP BY
// (spec §4.5).
func globalAggregates(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		p, ok := node.(*plan.Project)
		if !ok {
			return node, nil
		}
		if !containsAnyAggregate(p.ProjectList) {
			return node, nil
		}
		return plan.NewAggregate(nil, p.ProjectList, p.Child), nil
	}, n)
}

func containsAnyAggregate(exprs []sql.Expression) bool {
	for _, e := range exprs {
		if expression.ContainsAggregate(e) {
			return true
		}
	}
	return false
}
