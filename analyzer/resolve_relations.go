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

// resolveRelations replaces every UnresolvedRelation with the catalog's
// result for lookupRelation(tableId, alias); InsertIntoTable resolves
// its target the same way, then has any top-level Subquery wrapper
// stripped from it (spec §4.3). A catalog miss is fatal.
func resolveRelations(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.UnresolvedRelation:
			return resolveOne(a, node)
		case *plan.InsertIntoTable:
			target, err := resolveInsertTarget(a, node.Target)
			if err != nil {
				return nil, err
			}
			if target == node.Target {
				return node, nil
			}
			return plan.NewInsertIntoTable(target, node.Source), nil
		default:
			return node, nil
		}
	}, n)
}

func resolveOne(a *Analyzer, ur *plan.UnresolvedRelation) (sql.Node, error) {
	resolved, err := a.Catalog.LookupRelation(ur.Table, ur.Alias)
	if err != nil {
		return nil, err
	}
	if ur.Alias != "" {
		return plan.NewSubquery(ur.Alias, resolved), nil
	}
	return resolved, nil
}

// resolveInsertTarget resolves target if it is still an
// UnresolvedRelation, then strips any top-level Subquery wrapper: an
// insert target is never meaningfully aliased.
func resolveInsertTarget(a *Analyzer, target sql.Node) (sql.Node, error) {
	if ur, ok := target.(*plan.UnresolvedRelation); ok {
		resolved, err := a.Catalog.LookupRelation(ur.Table, "")
		if err != nil {
			return nil, err
		}
		target = resolved
	}
	for {
		sq, ok := target.(*plan.Subquery)
		if !ok {
			return target, nil
		}
		target = sq.Child
	}
}
