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

package plan

import (
	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
)

// Subquery is a scoping wrapper introduced whenever a relation is given
// an alias: "(SELECT ...) AS q" or a CTE reference used under an alias.
// It contributes no rows of its own; it exists purely so that the
// qualifier "q" can be attached to the child's output. EliminateSubQueries
// strips it once the analyzer has finished (spec §4.9).
type Subquery struct {
	UnaryNode
	Alias string
}

// NewSubquery wraps child under alias.
func NewSubquery(alias string, child sql.Node) *Subquery {
	return &Subquery{UnaryNode: UnaryNode{child}, Alias: alias}
}

func (s *Subquery) Expressions() []sql.Expression { return nil }
func (s *Subquery) Schema() sql.Schema            { return s.Child.Schema() }

func (s *Subquery) Output() []sql.Expression {
	out := s.Child.Output()
	qualified := make([]sql.Expression, len(out))
	for i, e := range out {
		qualified[i] = expression.Requalify(e, s.Alias)
	}
	return qualified
}

func (s *Subquery) Resolved() bool { return s.Child.Resolved() }
func (s *Subquery) String() string { return "Subquery(" + s.Alias + ", " + s.Child.String() + ")" }

func (s *Subquery) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Subquery", children, 1); err != nil {
		return nil, err
	}
	return &Subquery{UnaryNode: UnaryNode{children[0]}, Alias: s.Alias}, nil
}

func (s *Subquery) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Subquery", exprs, 0); err != nil {
		return nil, err
	}
	return s, nil
}
