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
)

// resolveFunctions binds every UnresolvedFunction whose arguments are
// already resolved against the function registry, dispatching on the
// returned kind (spec §4.5).
func resolveFunctions(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformExpressionsUpAllNodes(func(e sql.Expression) (sql.Expression, error) {
		uf, ok := e.(*expression.UnresolvedFunction)
		if !ok {
			return e, nil
		}
		if !sql.ExpressionsResolved(uf.Args...) {
			return e, nil
		}

		result, err := a.Functions.LookupFunction(uf.Name, uf.Args, uf.IsDistinct)
		if err != nil {
			// A registry miss is not fatal here: the call is left
			// unresolved for CheckAnalysis to report.
			return e, nil
		}

		switch result.Kind {
		case sql.AggregateFunction2:
			fn, ok := result.Expression.(expression.AggregateFunc)
			if !ok {
				return e, nil
			}
			return expression.NewAggregateExpression2(fn, expression.Complete, uf.IsDistinct), nil
		case sql.LegacyAggregate:
			return resolveLegacyAggregate(uf, result)
		default:
			return result.Expression, nil
		}
	}, n)
}

func resolveLegacyAggregate(uf *expression.UnresolvedFunction, result *sql.FunctionLookupResult) (sql.Expression, error) {
	if !uf.IsDistinct {
		return result.Expression, nil
	}
	if expression.IsMaxOrMin(uf.Name) {
		// DISTINCT is mathematically inert for MAX/MIN; drop it silently,
		// ahead of the SupportsDistinct check below (MAX/MIN otherwise
		// report SupportsDistinct=true and would keep the flag set).
		if g, ok := result.Expression.(*expression.GenericAggregateFunc); ok {
			return expression.NewGenericAggregateFunc(g.Name, g.Arg, false, g.ResultType), nil
		}
		return result.Expression, nil
	}
	if result.SupportsDistinct {
		return result.Expression, nil
	}
	return nil, sql.ErrDistinctUnsupported.New(uf.Name)
}
