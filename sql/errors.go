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

package sql

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrNoSuchTable is thrown when a relation cannot be found in the
	// catalog.
	ErrNoSuchTable = errors.NewKind("no such table: %s")

	// ErrWindowSpecNotFound is thrown when a query references a named
	// window that was never declared with WINDOW ... AS (...).
	ErrWindowSpecNotFound = errors.NewKind("Window specification %s is not defined")

	// ErrDistinctUnsupported is thrown when DISTINCT is applied to a
	// legacy aggregate function that does not support it.
	ErrDistinctUnsupported = errors.NewKind("%s does not support DISTINCT keyword")

	// ErrGeneratorAliasMismatch is thrown when a generator's declared
	// column names don't match the arity of its element types.
	ErrGeneratorAliasMismatch = errors.NewKind("aliases count mismatch for generator: expected %d, got %d")

	// ErrMultipleGenerators is thrown when a single SELECT list contains
	// more than one table-valued generator expression.
	ErrMultipleGenerators = errors.NewKind("only one generator allowed per select clause but found: %s")

	// ErrUnresolvedPlan is thrown by CheckAnalysis for any plan or
	// expression subtree that is still unresolved after all batches run.
	ErrUnresolvedPlan = errors.NewKind("cannot resolve %s given input columns: [%s]")

	// ErrAmbiguousReference is thrown when an unqualified name matches
	// columns from more than one input relation.
	ErrAmbiguousReference = errors.NewKind("reference %q is ambiguous, could be: %s")

	// ErrMultipleWindowSpecs is an internal invariant violation: a single
	// extracted window expression ended up associated with more than one
	// distinct WindowSpecDefinition.
	ErrMultipleWindowSpecs = errors.NewKind("internal error: window expression has multiple distinct specs")

	// ErrMaxAnalysisIterations is thrown when a FixedPoint batch fails to
	// converge within its iteration cap.
	ErrMaxAnalysisIterations = errors.NewKind("Max iterations (%d) reached for batch %s")

	// ErrHavingNeedsAggregate is thrown by CheckAnalysis when a HAVING
	// clause references a column that is neither grouped nor aggregated.
	ErrHavingNeedsAggregate = errors.NewKind("expression %q in HAVING clause is neither grouped nor aggregated")

	// ErrInvalidChildrenCount is returned when WithChildren/WithExpressions
	// is called with the wrong number of arguments; always an internal bug.
	ErrInvalidChildrenCount = errors.NewKind("%T: invalid children count, got %d, expected %d")

	// ErrGroupingIdCollision is thrown when ResolveGroupingAnalytics's
	// synthesized grouping-id column name already appears among the
	// group-by columns it is lowering.
	ErrGroupingIdCollision = errors.NewKind("cannot synthesize %s: a column with that name already exists")

	// ErrCoercionFailure is thrown by ResolveCoercions when two types
	// participating in the same construct (e.g. an array literal's
	// elements) cannot be widened to a common primitive type.
	ErrCoercionFailure = errors.NewKind("cannot coerce %s to %s: no common primitive type")
)
