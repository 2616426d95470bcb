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

// windowsSubstitution rewrites every UnresolvedWindowExpression inside a
// WithWindowDefinition's child into a WindowExpression bound to the
// named spec (spec §4.2). A reference to an undeclared name is fatal.
func windowsSubstitution(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformDown(func(node sql.Node) (sql.Node, error) {
		wwd, ok := node.(*plan.WithWindowDefinition)
		if !ok {
			return node, nil
		}

		defs := make(map[string]*expression.WindowSpecDefinition, len(wwd.Defs))
		for _, d := range wwd.Defs {
			spec, ok := d.Spec.(*expression.WindowSpecDefinition)
			if !ok {
				continue
			}
			defs[d.Name] = spec
		}

		rewritten, err := sql.TransformExpressionsUpAllNodes(func(e sql.Expression) (sql.Expression, error) {
			uwe, ok := e.(*expression.UnresolvedWindowExpression)
			if !ok {
				return e, nil
			}
			spec, ok := defs[uwe.WindowSpecId.Name]
			if !ok {
				return nil, sql.ErrWindowSpecNotFound.New(uwe.WindowSpecId.Name)
			}
			return expression.NewWindowExpression(uwe.Function, spec), nil
		}, wwd.Child)
		if err != nil {
			return nil, err
		}
		// The binder itself disappears once its definitions have been
		// applied, the same way With disappears via substituteCTE.
		return rewritten, nil
	}, n)
}
