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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// ScalarFunction is what a FunctionRegistry hands ResolveFunctions back
// for an ordinary row-at-a-time call: a name, its resolved arguments,
// and a declared result type. It carries no evaluation logic of its
// own, the same restraint the rest of this package takes with every
// other expression variant (spec §3: the analyzer never evaluates).
type ScalarFunction struct {
	Name       string
	Args       []sql.Expression
	ResultType sql.Type
	IsNullable bool
}

// NewScalarFunction builds a resolved scalar function call.
func NewScalarFunction(name string, resultType sql.Type, nullable bool, args ...sql.Expression) *ScalarFunction {
	return &ScalarFunction{Name: name, Args: args, ResultType: resultType, IsNullable: nullable}
}

// FunctionName returns the function's name, lower-cased.
func (f *ScalarFunction) FunctionName() string { return f.Name }

func (f *ScalarFunction) Children() []sql.Expression { return f.Args }
func (f *ScalarFunction) Resolved() bool             { return sql.ExpressionsResolved(f.Args...) }
func (f *ScalarFunction) Type() sql.Type             { return f.ResultType }
func (f *ScalarFunction) Nullable() bool             { return f.IsNullable }

func (f *ScalarFunction) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return strings.ToUpper(f.Name) + "(" + strings.Join(args, ", ") + ")"
}

func (f *ScalarFunction) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("ScalarFunction", children, len(f.Args)); err != nil {
		return nil, err
	}
	return &ScalarFunction{Name: f.Name, Args: children, ResultType: f.ResultType, IsNullable: f.IsNullable}, nil
}

// NondeterministicFunction is a scalar call whose value varies across
// invocations even given the same arguments (random(), uuid()).
// PullOutNondeterministic looks for this capability via sql.NonDeterministic.
type NondeterministicFunction struct {
	Name       string
	Args       []sql.Expression
	ResultType sql.Type
	IsNullable bool
}

// NewNondeterministicFunction builds a resolved nondeterministic call.
func NewNondeterministicFunction(name string, resultType sql.Type, nullable bool, args ...sql.Expression) *NondeterministicFunction {
	return &NondeterministicFunction{Name: name, Args: args, ResultType: resultType, IsNullable: nullable}
}

func (f *NondeterministicFunction) FunctionName() string     { return f.Name }
func (f *NondeterministicFunction) Children() []sql.Expression { return f.Args }
func (f *NondeterministicFunction) Resolved() bool           { return sql.ExpressionsResolved(f.Args...) }
func (f *NondeterministicFunction) Type() sql.Type           { return f.ResultType }
func (f *NondeterministicFunction) Nullable() bool           { return f.IsNullable }
func (f *NondeterministicFunction) Deterministic() bool      { return false }

func (f *NondeterministicFunction) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return strings.ToUpper(f.Name) + "(" + strings.Join(args, ", ") + ")"
}

func (f *NondeterministicFunction) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("NondeterministicFunction", children, len(f.Args)); err != nil {
		return nil, err
	}
	return &NondeterministicFunction{Name: f.Name, Args: children, ResultType: f.ResultType, IsNullable: f.IsNullable}, nil
}
