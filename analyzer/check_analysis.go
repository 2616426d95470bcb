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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// CheckAnalysis walks the fully-batched plan bottom-up looking for
// anything still unresolved, and turns it into a specific, user-facing
// error rather than letting an Unresolved* node escape the analyzer
// (spec §4.9).
func CheckAnalysis(ctx *sql.Context, n sql.Node) error {
	for _, child := range n.Children() {
		if err := CheckAnalysis(ctx, child); err != nil {
			return err
		}
	}

	if ur, ok := n.(*plan.UnresolvedRelation); ok {
		return sql.ErrNoSuchTable.New(ur.Table.Table)
	}

	for _, e := range n.Expressions() {
		if err := checkExpressionResolved(ctx, e, n); err != nil {
			return err
		}
	}

	if !n.Resolved() {
		return sql.ErrUnresolvedPlan.New(n.String(), inputColumnNames(n.Children()))
	}

	return nil
}

// checkExpressionResolved finds the first Unresolved* node in e's
// subtree and reports it against owner's children, distinguishing
// "not found" from "ambiguous" the way resolveChildrenDetailed does.
func checkExpressionResolved(ctx *sql.Context, e sql.Expression, owner sql.Node) error {
	if e.Resolved() {
		return nil
	}

	switch u := e.(type) {
	case *expression.UnresolvedAttribute:
		if f, ok := owner.(*plan.Filter); ok {
			if _, ok := f.Child.(*plan.Aggregate); ok {
				return sql.ErrHavingNeedsAggregate.New(u.Name())
			}
		}
		_, ambiguous, found := plan.ResolveChildrenDetailed(u.NameParts, owner.Children(), ctx.Resolver())
		if found {
			return nil
		}
		if ambiguous {
			return sql.ErrAmbiguousReference.New(u.Name(), inputColumnNames(owner.Children()))
		}
		return sql.ErrUnresolvedPlan.New(u.Name(), inputColumnNames(owner.Children()))
	case *expression.UnresolvedFunction:
		return sql.ErrUnresolvedPlan.New(u.Name+"(...)", inputColumnNames(owner.Children()))
	case *expression.UnresolvedWindowExpression:
		return sql.ErrWindowSpecNotFound.New(u.WindowSpecId.Name)
	}

	for _, c := range e.Children() {
		if err := checkExpressionResolved(ctx, c, owner); err != nil {
			return err
		}
	}

	return sql.ErrUnresolvedPlan.New(e.String(), inputColumnNames(owner.Children()))
}

// inputColumnNames renders the combined, qualified output of children
// for use in an error message.
func inputColumnNames(children []sql.Node) string {
	var names []string
	for _, c := range children {
		for _, out := range c.Output() {
			if named, ok := out.(sql.NamedExpression); ok {
				names = append(names, named.Name())
			}
		}
	}
	return strings.Join(names, ", ")
}
