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

package expression

import "github.com/suyanNone/logicalplan/sql"

// AggregateMode describes when a new-style aggregate is evaluated.
// ResolveFunctions always produces Complete; Partial/Final are reserved
// for a distributed physical planner outside this package's scope.
type AggregateMode int

const (
	Complete AggregateMode = iota
	Partial
	Final
)

// AggregateFunc is implemented by any aggregate function expression
// (new-style AggregateFunction2 and legacy SumDistinct/CountDistinct/
// Max/Min/etc.), letting rules detect "is this node an aggregate" and
// "does this legacy aggregate support DISTINCT" without an open type
// switch over every concrete aggregate.
type AggregateFunc interface {
	sql.Expression
	AggregateName() string
}

// AggregateExpression2 wraps a new-style aggregate function with an
// evaluation mode and distinctness flag (spec §4.5 "new-style aggregate
// (AggregateFunction2)").
type AggregateExpression2 struct {
	Function   AggregateFunc
	Mode       AggregateMode
	IsDistinct bool
}

// NewAggregateExpression2 wraps fn for Complete-mode, single-phase
// evaluation, the only mode ResolveFunctions ever produces.
func NewAggregateExpression2(fn AggregateFunc, mode AggregateMode, isDistinct bool) *AggregateExpression2 {
	return &AggregateExpression2{Function: fn, Mode: mode, IsDistinct: isDistinct}
}

func (a *AggregateExpression2) AggregateName() string      { return a.Function.AggregateName() }
func (a *AggregateExpression2) Children() []sql.Expression { return []sql.Expression{a.Function} }
func (a *AggregateExpression2) Resolved() bool             { return a.Function.Resolved() }
func (a *AggregateExpression2) Type() sql.Type             { return a.Function.Type() }
func (a *AggregateExpression2) Nullable() bool             { return true }
func (a *AggregateExpression2) String() string             { return a.Function.String() }

func (a *AggregateExpression2) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("AggregateExpression2", children, 1); err != nil {
		return nil, err
	}
	fn, ok := children[0].(AggregateFunc)
	if !ok {
		return nil, sql.ErrInvalidChildrenCount.New("AggregateExpression2", 0, 1)
	}
	return &AggregateExpression2{Function: fn, Mode: a.Mode, IsDistinct: a.IsDistinct}, nil
}

// GenericAggregateFunc is a simple named aggregate over a single
// argument (SUM, COUNT, MAX, MIN, and similar). Real physical
// evaluation lives outside this package; the analyzer only needs name,
// argument, and distinctness.
type GenericAggregateFunc struct {
	Name       string
	Arg        sql.Expression
	IsDistinct bool
	ResultType sql.Type
}

// NewGenericAggregateFunc builds a named single-argument aggregate.
func NewGenericAggregateFunc(name string, arg sql.Expression, isDistinct bool, resultType sql.Type) *GenericAggregateFunc {
	return &GenericAggregateFunc{Name: name, Arg: arg, IsDistinct: isDistinct, ResultType: resultType}
}

func (g *GenericAggregateFunc) AggregateName() string      { return g.Name }
func (g *GenericAggregateFunc) Children() []sql.Expression { return []sql.Expression{g.Arg} }
func (g *GenericAggregateFunc) Resolved() bool             { return g.Arg.Resolved() }
func (g *GenericAggregateFunc) Type() sql.Type             { return g.ResultType }
func (g *GenericAggregateFunc) Nullable() bool             { return true }
func (g *GenericAggregateFunc) String() string {
	if g.IsDistinct {
		return g.Name + "(DISTINCT " + g.Arg.String() + ")"
	}
	return g.Name + "(" + g.Arg.String() + ")"
}

func (g *GenericAggregateFunc) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("GenericAggregateFunc", children, 1); err != nil {
		return nil, err
	}
	return &GenericAggregateFunc{Name: g.Name, Arg: children[0], IsDistinct: g.IsDistinct, ResultType: g.ResultType}, nil
}

// legacyDistinctUnsupported lists the old-style aggregates that
// ResolveFunctions rejects outright when DISTINCT is requested (every
// legacy aggregate except Max/Min/SumDistinct/CountDistinct).
var legacyDistinctUnsupported = map[string]bool{
	"avg":   true,
	"first": true,
	"last":  true,
}

// SupportsDistinct reports whether the named legacy aggregate accepts
// DISTINCT at all, used by ResolveFunctions' dispatch (spec §4.5).
func SupportsDistinct(name string) bool {
	return !legacyDistinctUnsupported[name]
}

// IsMaxOrMin reports whether name is the MAX or MIN legacy aggregate,
// for which DISTINCT is accepted but silently dropped (spec §4.5).
func IsMaxOrMin(name string) bool {
	return name == "max" || name == "min"
}

// ContainsAggregate reports whether e or any descendant is an
// AggregateFunc.
func ContainsAggregate(e sql.Expression) bool {
	if _, ok := e.(AggregateFunc); ok {
		return true
	}
	if _, ok := e.(*AggregateExpression2); ok {
		return true
	}
	for _, c := range e.Children() {
		if ContainsAggregate(c) {
			return true
		}
	}
	return false
}
