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

// unresolvedHavingClauseAttributes lifts a HAVING predicate containing
// an aggregate into the Aggregate's own output, since only there can the
// aggregate function be evaluated (spec §4.5).
func unresolvedHavingClauseAttributes(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		f, ok := node.(*plan.Filter)
		if !ok {
			return node, nil
		}
		agg, ok := f.Child.(*plan.Aggregate)
		if !ok || !agg.Resolved() {
			return node, nil
		}
		if !expression.ContainsAggregate(f.Condition) {
			return node, nil
		}

		havingAlias := expression.NewAlias(f.Condition, "havingCondition")
		newAggs := append([]sql.Expression{havingAlias}, agg.AggregateExprs...)
		newAgg := plan.NewAggregate(agg.GroupByExprs, newAggs, agg.Child)
		newFilter := plan.NewFilter(havingAlias.ToAttribute(), newAgg)
		return plan.NewProject(agg.Output(), newFilter), nil
	}, n)
}
