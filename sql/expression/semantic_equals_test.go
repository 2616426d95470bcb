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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suyanNone/logicalplan/sql"
)

func TestSemanticEqualsDifferentAttributesWithSameNameAreNotEqual(t *testing.T) {
	require := require.New(t)

	a := NewAttributeReference("x", sql.Int32, false, "t")
	b := NewAttributeReference("x", sql.Int32, false, "t")
	require.False(SemanticEquals(a, b), "distinct ExprIds should never compare equal regardless of name")
}

func TestSemanticEqualsSameAttributeIsEqualToItself(t *testing.T) {
	require := require.New(t)

	a := NewAttributeReference("x", sql.Int32, false, "t")
	require.True(SemanticEquals(a, a))
}

func TestSemanticEqualsLiteralsByValue(t *testing.T) {
	require := require.New(t)

	require.True(SemanticEquals(NewLiteral(int32(1), sql.Int32), NewLiteral(int32(1), sql.Int32)))
	require.False(SemanticEquals(NewLiteral(int32(1), sql.Int32), NewLiteral(int32(2), sql.Int32)))
}

func TestSemanticEqualsIgnoresUnresolvedAliasWrapper(t *testing.T) {
	require := require.New(t)

	lit := NewLiteral(int32(1), sql.Int32)
	wrapped := NewUnresolvedAlias(lit)
	require.True(SemanticEquals(wrapped, lit))
}

func TestSemanticEqualsScalarFunctionRequiresSameNameAndArgs(t *testing.T) {
	require := require.New(t)

	a := NewScalarFunction("abs", sql.Int32, false, NewLiteral(int32(1), sql.Int32))
	b := NewScalarFunction("abs", sql.Int32, false, NewLiteral(int32(1), sql.Int32))
	c := NewScalarFunction("abs", sql.Int32, false, NewLiteral(int32(2), sql.Int32))
	d := NewScalarFunction("lower", sql.Text, false, NewLiteral("x", sql.Text))

	require.True(SemanticEquals(a, b))
	require.False(SemanticEquals(a, c))
	require.False(SemanticEquals(a, d))
}

func TestSemanticEqualsScalarFunctionDiffersByNameAlone(t *testing.T) {
	require := require.New(t)

	arg := NewLiteral(int32(5), sql.Int32)
	abs := NewScalarFunction("abs", sql.Int32, false, arg)
	negate := NewScalarFunction("negate", sql.Int32, false, NewLiteral(int32(5), sql.Int32))

	require.False(SemanticEquals(abs, negate), "same argument list, different function name must not compare equal")
}

func TestSemanticEqualsAliasComparesChildOnly(t *testing.T) {
	require := require.New(t)

	lit := NewLiteral(int32(1), sql.Int32)
	a := NewAlias(lit, "one")
	b := NewAlias(NewLiteral(int32(1), sql.Int32), "uno")
	require.True(SemanticEquals(a, b), "Alias names should not affect semantic equality")
}
