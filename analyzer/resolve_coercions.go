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
	"github.com/spf13/cast"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

// numericRank orders the primitive numeric types by widening precedence
// (spec §2's "type-coercion rules" batch member; spec §1's Non-goals
// exclude "type inference for user-defined types beyond primitive
// coercion", implying primitive coercion itself stays in scope).
var numericRank = map[sql.Type]int{
	sql.Int32:   0,
	sql.Int64:   1,
	sql.Float64: 2,
}

// resolveCoercions widens CreateArray elements to a single common
// primitive type once every element is resolved. A Literal element is
// folded to the widened value in place; any other mismatched element is
// wrapped in an explicit Cast. Two element types that share no common
// primitive (e.g. TEXT against INT) is the "type-coercion failure" hard
// failure of spec §7.
func resolveCoercions(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformExpressionsUpAllNodes(func(e sql.Expression) (sql.Expression, error) {
		arr, ok := e.(*expression.CreateArray)
		if !ok {
			return e, nil
		}
		return coerceCreateArray(arr)
	}, n)
}

func coerceCreateArray(c *expression.CreateArray) (sql.Expression, error) {
	if len(c.Elements) == 0 || !sql.ExpressionsResolved(c.Elements...) {
		return c, nil
	}
	// Already widened by a previous pass; leave alone so the rule is
	// idempotent at fixed point.
	if c.ResultTyp != nil && c.ResultTyp != sql.Unknown {
		return c, nil
	}

	widest := c.Elements[0].Type()
	for _, el := range c.Elements[1:] {
		next, ok := widenPair(widest, el.Type())
		if !ok {
			return nil, sql.ErrCoercionFailure.New(widest.Name(), el.Type().Name())
		}
		widest = next
	}

	coerced := make([]sql.Expression, len(c.Elements))
	for i, el := range c.Elements {
		widened, err := coerceTo(el, widest)
		if err != nil {
			return nil, err
		}
		coerced[i] = widened
	}

	return &expression.CreateArray{Elements: coerced, ResultTyp: widest}, nil
}

// widenPair returns the wider of a and b along numericRank's precedence
// when both are numeric, a or b unchanged when they're already equal,
// and reports failure when they're neither equal nor both numeric.
func widenPair(a, b sql.Type) (sql.Type, bool) {
	if a.Equals(b) {
		return a, true
	}
	ra, aok := numericRank[a]
	rb, bok := numericRank[b]
	if !aok || !bok {
		return nil, false
	}
	if ra >= rb {
		return a, true
	}
	return b, true
}

// coerceTo widens e to target, folding a Literal's value via cast or,
// for any other expression, wrapping it in an explicit Cast.
func coerceTo(e sql.Expression, target sql.Type) (sql.Expression, error) {
	if e.Type().Equals(target) {
		return e, nil
	}
	lit, ok := e.(*expression.Literal)
	if !ok {
		return expression.NewCast(e, target), nil
	}
	return foldLiteral(lit, target)
}

func foldLiteral(lit *expression.Literal, target sql.Type) (sql.Expression, error) {
	var (
		v   interface{}
		err error
	)
	switch target {
	case sql.Int32:
		v, err = cast.ToInt32E(lit.Value())
	case sql.Int64:
		v, err = cast.ToInt64E(lit.Value())
	case sql.Float64:
		v, err = cast.ToFloat64E(lit.Value())
	default:
		return nil, sql.ErrCoercionFailure.New(lit.Type().Name(), target.Name())
	}
	if err != nil {
		return nil, sql.ErrCoercionFailure.New(lit.Type().Name(), target.Name())
	}
	return expression.NewLiteral(v, target), nil
}
