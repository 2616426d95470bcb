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

// SortDirection is ascending or descending.
type SortDirection bool

const (
	Ascending  SortDirection = true
	Descending SortDirection = false
)

// SortOrder pairs a sort expression with a direction. It has no
// standalone type; it contributes its child's Resolved()/Type().
type SortOrder struct {
	Child     sql.Expression
	Direction SortDirection
}

// NewSortOrder builds a SortOrder over child.
func NewSortOrder(child sql.Expression, dir SortDirection) *SortOrder {
	return &SortOrder{Child: child, Direction: dir}
}

func (s *SortOrder) Children() []sql.Expression { return []sql.Expression{s.Child} }
func (s *SortOrder) Resolved() bool             { return s.Child.Resolved() }
func (s *SortOrder) Type() sql.Type             { return s.Child.Type() }
func (s *SortOrder) Nullable() bool             { return s.Child.Nullable() }
func (s *SortOrder) String() string {
	if s.Direction == Ascending {
		return s.Child.String() + " ASC"
	}
	return s.Child.String() + " DESC"
}

func (s *SortOrder) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("SortOrder", children, 1); err != nil {
		return nil, err
	}
	return &SortOrder{Child: children[0], Direction: s.Direction}, nil
}
