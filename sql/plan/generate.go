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

// Generate expands each input row into zero or more output rows via
// Generator, contributing OutputAttrs new columns (spec §4.6). Join
// controls whether the child's own columns are carried alongside the
// generator's output; Outer controls whether an input row that produces
// no generator output still emits one row with NULLs.
type Generate struct {
	UnaryNode
	Generator   expression.Generator
	Join        bool
	Outer       bool
	Qualifier   string
	OutputAttrs []*expression.AttributeReference
}

// NewGenerate creates a new Generate.
func NewGenerate(generator expression.Generator, join, outer bool, qualifier string, output []*expression.AttributeReference, child sql.Node) *Generate {
	return &Generate{UnaryNode: UnaryNode{child}, Generator: generator, Join: join, Outer: outer, Qualifier: qualifier, OutputAttrs: output}
}

func (g *Generate) Expressions() []sql.Expression { return []sql.Expression{g.Generator} }

func (g *Generate) Schema() sql.Schema {
	if g.Join {
		return append(g.Child.Schema(), schemaOf(g.Output()[len(g.Child.Output()):])...)
	}
	return schemaOf(g.Output())
}

func (g *Generate) Output() []sql.Expression {
	genOut := make([]sql.Expression, len(g.OutputAttrs))
	for i, a := range g.OutputAttrs {
		genOut[i] = a
	}
	if g.Join {
		return append(append([]sql.Expression{}, g.Child.Output()...), genOut...)
	}
	return genOut
}

func (g *Generate) Resolved() bool {
	if !g.Child.Resolved() || !g.Generator.Resolved() {
		return false
	}
	elemTypes := g.Generator.ElementTypes()
	if len(elemTypes) != len(g.OutputAttrs) {
		return false
	}
	return true
}

func (g *Generate) String() string { return "Generate(" + g.Generator.String() + ")" }

func (g *Generate) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("Generate", children, 1); err != nil {
		return nil, err
	}
	return &Generate{UnaryNode: UnaryNode{children[0]}, Generator: g.Generator, Join: g.Join, Outer: g.Outer, Qualifier: g.Qualifier, OutputAttrs: g.OutputAttrs}, nil
}

func (g *Generate) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("Generate", exprs, 1); err != nil {
		return nil, err
	}
	gen, ok := exprs[0].(expression.Generator)
	if !ok {
		return nil, sql.ErrInvalidChildrenCount.New("Generate", 0, 1)
	}
	return &Generate{UnaryNode: g.UnaryNode, Generator: gen, Join: g.Join, Outer: g.Outer, Qualifier: g.Qualifier, OutputAttrs: g.OutputAttrs}, nil
}
