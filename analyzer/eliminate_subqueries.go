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
	"github.com/suyanNone/logicalplan/sql/plan"
)

// EliminateSubQueries strips every Subquery wrapper left over from
// ResolveRelations once the analyzer has finished using them to attach
// aliases (spec §4.9). It runs outside the batch pipeline, after
// CheckAnalysis, and cannot fail: every Subquery in a checked plan is
// already resolved.
func EliminateSubQueries(n sql.Node) sql.Node {
	result, _ := sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		sq, ok := node.(*plan.Subquery)
		if !ok {
			return node, nil
		}
		return sq.Child, nil
	}, n)
	return result
}
