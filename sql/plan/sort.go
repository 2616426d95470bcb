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
	"strings"

	"github.com/suyanNone/logicalplan/sql"
)

// Sort orders its child's rows by the given SortOrder expressions.
type Sort struct {
	UnaryNode
	SortFields []sql.Expression // each a *expression.SortOrder
}

// NewSort creates a new Sort.
func NewSort(sortFields []sql.Expression, child sql.Node) *Sort {
	return &Sort{UnaryNode: UnaryNode{child}, SortFields: sortFields}
}

func (s *Sort) Expressions() []sql.Expression { return s.SortFields }
func (s *Sort) Schema() sql.Schema            { return s.Child.Schema() }
func (s *Sort) Output() []sql.Expression      { return s.Child.Output() }

func (s *Sort) Resolved() bool {
	return s.Child.Resolved() && sql.ExpressionsResolved(s.SortFields...)
}

func (s *Sort) String() string {
	var parts []string
	for _, e := range s.SortFields {
		parts = append(parts, e.String())
	}
	return "Sort(" + strings.Join(parts, ", ") + ")"
}

func (s *Sort) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Sort", children, 1); err != nil {
		return nil, err
	}
	return &Sort{UnaryNode: UnaryNode{children[0]}, SortFields: s.SortFields}, nil
}

func (s *Sort) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Sort", exprs, len(s.SortFields)); err != nil {
		return nil, err
	}
	return &Sort{UnaryNode: s.UnaryNode, SortFields: exprs}, nil
}
