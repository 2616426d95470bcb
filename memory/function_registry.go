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

package memory

import (
	"fmt"
	"strings"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

// legacyAggregateResultTypes are the old-style, single-argument
// aggregates subject to ResolveFunctions' DISTINCT rules (spec §4.5).
// sql.Unknown means "same as the argument's type".
var legacyAggregateResultTypes = map[string]sql.Type{
	"sum":   sql.Float64,
	"count": sql.Int64,
	"avg":   sql.Float64,
	"first": sql.Unknown,
	"last":  sql.Unknown,
	"max":   sql.Unknown,
	"min":   sql.Unknown,
}

// newStyleAggregateResultTypes are aggregates ResolveFunctions wraps in
// an AggregateExpression2.
var newStyleAggregateResultTypes = map[string]sql.Type{
	"approx_count_distinct": sql.Int64,
}

// scalarResultTypes covers ordinary scalars plus the ranking functions,
// which are scalar as far as the analyzer is concerned: they only ever
// appear as the Function of a WindowExpression.
var scalarResultTypes = map[string]sql.Type{
	"abs":        sql.Float64,
	"lower":      sql.Text,
	"upper":      sql.Text,
	"concat":     sql.Text,
	"coalesce":   sql.Unknown,
	"length":     sql.Int32,
	"rank":       sql.Int64,
	"dense_rank": sql.Int64,
	"row_number": sql.Int64,
	"lead":       sql.Unknown,
	"lag":        sql.Unknown,
}

// nondeterministicResultTypes covers calls whose value varies across
// invocations, subject to PullOutNondeterministic.
var nondeterministicResultTypes = map[string]sql.Type{
	"rand": sql.Float64,
	"uuid": sql.Text,
}

// FunctionRegistry is an in-memory implementation of
// sql.FunctionRegistry covering a fixed set of scalar and aggregate
// functions, enough to drive ResolveFunctions without a real function
// catalog (spec §4.12).
type FunctionRegistry struct{}

// NewFunctionRegistry creates a registry with the built-in function set.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{}
}

// LookupFunction implements sql.FunctionRegistry.
func (r *FunctionRegistry) LookupFunction(name string, args []sql.Expression, isDistinct bool) (*sql.FunctionLookupResult, error) {
	lower := strings.ToLower(name)

	if resultType, ok := legacyAggregateResultTypes[lower]; ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects exactly one argument, got %d", lower, len(args))
		}
		fn := expression.NewGenericAggregateFunc(lower, args[0], isDistinct, resolvedType(resultType, args[0]))
		return &sql.FunctionLookupResult{
			Expression:       fn,
			Kind:             sql.LegacyAggregate,
			SupportsDistinct: expression.SupportsDistinct(lower),
		}, nil
	}

	if resultType, ok := newStyleAggregateResultTypes[lower]; ok {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects exactly one argument, got %d", lower, len(args))
		}
		fn := expression.NewGenericAggregateFunc(lower, args[0], isDistinct, resultType)
		return &sql.FunctionLookupResult{Expression: fn, Kind: sql.AggregateFunction2}, nil
	}

	if resultType, ok := scalarResultTypes[lower]; ok {
		rt := resultType
		if rt == sql.Unknown && len(args) > 0 {
			rt = args[0].Type()
		}
		return &sql.FunctionLookupResult{
			Expression: expression.NewScalarFunction(lower, rt, true, args...),
			Kind:       sql.ScalarFunction,
		}, nil
	}

	if resultType, ok := nondeterministicResultTypes[lower]; ok {
		return &sql.FunctionLookupResult{
			Expression: expression.NewNondeterministicFunction(lower, resultType, false, args...),
			Kind:       sql.ScalarFunction,
		}, nil
	}

	return nil, fmt.Errorf("function not found: %s", name)
}

func resolvedType(declared sql.Type, arg sql.Expression) sql.Type {
	if declared == sql.Unknown {
		return arg.Type()
	}
	return declared
}
