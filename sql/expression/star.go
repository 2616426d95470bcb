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

// Star represents "*" or "qualifier.*", expanded by ResolveReferences
// into the matching child output attributes.
type Star struct {
	leaf
	Qualifier string
}

// NewStar builds an unqualified "*".
func NewStar() *Star { return &Star{} }

// NewQualifiedStar builds "qualifier.*".
func NewQualifiedStar(qualifier string) *Star { return &Star{Qualifier: qualifier} }

func (s *Star) Resolved() bool { return false }
func (s *Star) Type() sql.Type { return sql.Unknown }
func (s *Star) Nullable() bool { return true }
func (s *Star) String() string {
	if s.Qualifier != "" {
		return s.Qualifier + ".*"
	}
	return "*"
}

func (s *Star) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("Star", children, 0); err != nil {
		return nil, err
	}
	return s, nil
}
