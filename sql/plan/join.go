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

import "github.com/suyanNone/logicalplan/sql"

// JoinType distinguishes INNER/LEFT/RIGHT/CROSS joins. The analyzer
// treats them uniformly; only the physical planner cares about the
// distinction.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftJoin
	RightJoin
	CrossJoin
)

// Join combines rows from Left and Right filtered by Condition (nil for
// CrossJoin). Spec §4.3 "self-join deconfliction": if Left.Output() and
// Right.Output() share any ExprId, ResolveReferences must freshen Right
// before the Join can be considered for further resolution.
type Join struct {
	Left, Right sql.Node
	Type        JoinType
	Condition   sql.Expression // may be nil
}

// NewJoin creates a new Join.
func NewJoin(left, right sql.Node, joinType JoinType, condition sql.Expression) *Join {
	return &Join{Left: left, Right: right, Type: joinType, Condition: condition}
}

func (j *Join) Children() []sql.Node { return []sql.Node{j.Left, j.Right} }

func (j *Join) Expressions() []sql.Expression {
	if j.Condition == nil {
		return nil
	}
	return []sql.Expression{j.Condition}
}

func (j *Join) Schema() sql.Schema { return schemaOf(j.Output()) }

func (j *Join) Output() []sql.Expression {
	return append(append([]sql.Expression{}, j.Left.Output()...), j.Right.Output()...)
}

func (j *Join) Resolved() bool {
	if !j.Left.Resolved() || !j.Right.Resolved() {
		return false
	}
	if j.Condition != nil && !j.Condition.Resolved() {
		return false
	}
	return true
}

func (j *Join) String() string { return "Join(" + j.Left.String() + ", " + j.Right.String() + ")" }

func (j *Join) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Join", children, 2); err != nil {
		return nil, err
	}
	return &Join{Left: children[0], Right: children[1], Type: j.Type, Condition: j.Condition}, nil
}

func (j *Join) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if j.Condition == nil {
		if err := requireExprs("Join", exprs, 0); err != nil {
			return nil, err
		}
		return j, nil
	}
	if err := requireExprs("Join", exprs, 1); err != nil {
		return nil, err
	}
	return &Join{Left: j.Left, Right: j.Right, Type: j.Type, Condition: exprs[0]}, nil
}
