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

// Cube is GROUP BY ... WITH CUBE, as parsed: not yet lowered into
// GroupingSets. ResolveGroupingAnalytics rewrites it away (spec §4.4).
type Cube struct {
	UnaryNode
	GroupByExprs   []sql.Expression
	AggregateExprs []sql.Expression
}

// NewCube creates a new Cube.
func NewCube(groupByExprs, aggregateExprs []sql.Expression, child sql.Node) *Cube {
	return &Cube{UnaryNode: UnaryNode{child}, GroupByExprs: groupByExprs, AggregateExprs: aggregateExprs}
}

func (c *Cube) Expressions() []sql.Expression {
	return append(append([]sql.Expression{}, c.GroupByExprs...), c.AggregateExprs...)
}
func (c *Cube) Schema() sql.Schema       { return schemaOf(outputOf(c.AggregateExprs)) }
func (c *Cube) Output() []sql.Expression { return outputOf(c.AggregateExprs) }
func (c *Cube) Resolved() bool           { return false } // always lowered before resolution completes
func (c *Cube) String() string           { return "Cube(...)" }

func (c *Cube) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Cube", children, 1); err != nil {
		return nil, err
	}
	return &Cube{UnaryNode: UnaryNode{children[0]}, GroupByExprs: c.GroupByExprs, AggregateExprs: c.AggregateExprs}, nil
}

func (c *Cube) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	n := len(c.GroupByExprs)
	if err := requireExprs("Cube", exprs, n+len(c.AggregateExprs)); err != nil {
		return nil, err
	}
	return &Cube{UnaryNode: c.UnaryNode, GroupByExprs: exprs[:n], AggregateExprs: exprs[n:]}, nil
}

// Rollup is GROUP BY ... WITH ROLLUP, as parsed. ResolveGroupingAnalytics
// rewrites it away (spec §4.4).
type Rollup struct {
	UnaryNode
	GroupByExprs   []sql.Expression
	AggregateExprs []sql.Expression
}

// NewRollup creates a new Rollup.
func NewRollup(groupByExprs, aggregateExprs []sql.Expression, child sql.Node) *Rollup {
	return &Rollup{UnaryNode: UnaryNode{child}, GroupByExprs: groupByExprs, AggregateExprs: aggregateExprs}
}

func (r *Rollup) Expressions() []sql.Expression {
	return append(append([]sql.Expression{}, r.GroupByExprs...), r.AggregateExprs...)
}
func (r *Rollup) Schema() sql.Schema       { return schemaOf(outputOf(r.AggregateExprs)) }
func (r *Rollup) Output() []sql.Expression { return outputOf(r.AggregateExprs) }
func (r *Rollup) Resolved() bool           { return false }
func (r *Rollup) String() string           { return "Rollup(...)" }

func (r *Rollup) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Rollup", children, 1); err != nil {
		return nil, err
	}
	return &Rollup{UnaryNode: UnaryNode{children[0]}, GroupByExprs: r.GroupByExprs, AggregateExprs: r.AggregateExprs}, nil
}

func (r *Rollup) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	n := len(r.GroupByExprs)
	if err := requireExprs("Rollup", exprs, n+len(r.AggregateExprs)); err != nil {
		return nil, err
	}
	return &Rollup{UnaryNode: r.UnaryNode, GroupByExprs: exprs[:n], AggregateExprs: exprs[n:]}, nil
}

// GroupingSets is GROUP BY GROUPING SETS ((...), (...), ...), as parsed,
// or the explicit form Cube/Rollup desugar into. ResolveGroupingAnalytics
// lowers it into Aggregate-over-Expand (spec §4.4).
type GroupingSets struct {
	UnaryNode
	Masks          []int64
	GroupByExprs   []sql.Expression
	AggregateExprs []sql.Expression
}

// NewGroupingSets creates a new GroupingSets node. masks is the set of
// bitmasks, one per output grouping subset, with bit i set meaning
// GroupByExprs[i] participates in that subset.
func NewGroupingSets(masks []int64, groupByExprs, aggregateExprs []sql.Expression, child sql.Node) *GroupingSets {
	return &GroupingSets{UnaryNode: UnaryNode{child}, Masks: masks, GroupByExprs: groupByExprs, AggregateExprs: aggregateExprs}
}

func (g *GroupingSets) Expressions() []sql.Expression {
	return append(append([]sql.Expression{}, g.GroupByExprs...), g.AggregateExprs...)
}
func (g *GroupingSets) Schema() sql.Schema       { return schemaOf(outputOf(g.AggregateExprs)) }
func (g *GroupingSets) Output() []sql.Expression { return outputOf(g.AggregateExprs) }
func (g *GroupingSets) Resolved() bool           { return false }
func (g *GroupingSets) String() string           { return "GroupingSets(...)" }

func (g *GroupingSets) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("GroupingSets", children, 1); err != nil {
		return nil, err
	}
	return &GroupingSets{UnaryNode: UnaryNode{children[0]}, Masks: g.Masks, GroupByExprs: g.GroupByExprs, AggregateExprs: g.AggregateExprs}, nil
}

func (g *GroupingSets) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	n := len(g.GroupByExprs)
	if err := requireExprs("GroupingSets", exprs, n+len(g.AggregateExprs)); err != nil {
		return nil, err
	}
	return &GroupingSets{UnaryNode: g.UnaryNode, Masks: g.Masks, GroupByExprs: exprs[:n], AggregateExprs: exprs[n:]}, nil
}
