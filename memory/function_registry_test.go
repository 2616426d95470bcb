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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

func TestFunctionRegistryLooksUpScalar(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	arg := expression.NewAttributeReference("a", sql.Text, false, "")
	result, err := r.LookupFunction("Upper", []sql.Expression{arg}, false)
	require.NoError(err)
	require.Equal(sql.ScalarFunction, result.Kind)
	sf, ok := result.Expression.(*expression.ScalarFunction)
	require.True(ok)
	require.Equal("upper", sf.Name)
}

func TestFunctionRegistryLooksUpLegacyAggregate(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	arg := expression.NewAttributeReference("a", sql.Int32, false, "")
	result, err := r.LookupFunction("sum", []sql.Expression{arg}, false)
	require.NoError(err)
	require.Equal(sql.LegacyAggregate, result.Kind)
	require.True(result.SupportsDistinct)
}

func TestFunctionRegistryLooksUpNewStyleAggregate(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	arg := expression.NewAttributeReference("a", sql.Int32, false, "")
	result, err := r.LookupFunction("approx_count_distinct", []sql.Expression{arg}, false)
	require.NoError(err)
	require.Equal(sql.AggregateFunction2, result.Kind)
}

func TestFunctionRegistryLooksUpNondeterministic(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	result, err := r.LookupFunction("rand", nil, false)
	require.NoError(err)
	nd, ok := result.Expression.(*expression.NondeterministicFunction)
	require.True(ok)
	require.False(nd.Deterministic())
	require.Equal(sql.Float64, nd.Type())
}

func TestFunctionRegistryUnknownFunctionErrors(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	_, err := r.LookupFunction("not_a_function", nil, false)
	require.Error(err)
}

func TestFunctionRegistryLegacyAggregateRejectsWrongArgCount(t *testing.T) {
	require := require.New(t)

	r := NewFunctionRegistry()
	a := expression.NewAttributeReference("a", sql.Int32, false, "")
	b := expression.NewAttributeReference("b", sql.Int32, false, "")
	_, err := r.LookupFunction("sum", []sql.Expression{a, b}, false)
	require.Error(err)
}
