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
	"fmt"

	"github.com/suyanNone/logicalplan/sql"
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// resolveGenerate implements the two table-valued-function patterns of
// spec §4.6: synthesizing a Generate node's output attributes, and
// rewriting a Project containing an aliased generator into
// Project(newList, Generate(...)).
func resolveGenerate(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.Generate:
			return synthesizeGenerateOutput(node)
		case *plan.Project:
			return liftGeneratorFromProject(node)
		default:
			return node, nil
		}
	}, n)
}

// synthesizeGenerateOutput fills in OutputAttrs once Generator is
// resolved but its output attributes aren't yet known.
func synthesizeGenerateOutput(g *plan.Generate) (sql.Node, error) {
	if !g.Generator.Resolved() || len(g.OutputAttrs) > 0 {
		return g, nil
	}

	elemTypes := g.Generator.ElementTypes()
	names := generatorOutputNames(g)
	if len(names) != 0 && len(names) != len(elemTypes) {
		return nil, sql.ErrGeneratorAliasMismatch.New(len(elemTypes), len(names))
	}

	attrs := make([]*expression.AttributeReference, len(elemTypes))
	for i, t := range elemTypes {
		name := fmt.Sprintf("_c%d", i)
		if len(names) != 0 {
			name = names[i]
		}
		attrs[i] = expression.NewAttributeReference(name, t, true, g.Qualifier)
	}
	return plan.NewGenerate(g.Generator, g.Join, g.Outer, g.Qualifier, attrs, g.Child), nil
}

// generatorOutputNames always returns nil: a bare Generate carries no
// column names of its own, so synthesizeGenerateOutput always falls back
// to the Hive default naming when it runs directly on a bare Generate.
func generatorOutputNames(g *plan.Generate) []string { return nil }

// liftGeneratorFromProject finds the (at most one) generator-bearing
// entry in p's output list and rewrites it into Project(newList,
// Generate(...)).
func liftGeneratorFromProject(p *plan.Project) (sql.Node, error) {
	genIdx := -1
	var gen expression.Generator
	var names []string

	for i, e := range p.ProjectList {
		g, nm, ok := asAliasedGenerator(e)
		if !ok {
			continue
		}
		if genIdx != -1 {
			return nil, sql.ErrMultipleGenerators.New(e.String())
		}
		genIdx, gen, names = i, g, nm
	}

	if genIdx == -1 {
		return p, nil
	}
	if !gen.Resolved() {
		return p, nil
	}

	elemTypes := gen.ElementTypes()
	if len(names) != 0 && len(names) != len(elemTypes) {
		return nil, sql.ErrGeneratorAliasMismatch.New(len(elemTypes), len(names))
	}

	outputAttrs := make([]*expression.AttributeReference, len(elemTypes))
	for i, t := range elemTypes {
		name := fmt.Sprintf("_c%d", i)
		if len(names) != 0 {
			name = names[i]
		}
		outputAttrs[i] = expression.NewAttributeReference(name, t, true, "")
	}

	otherExprs := make([]sql.Expression, 0, len(p.ProjectList)-1)
	for i, e := range p.ProjectList {
		if i != genIdx {
			otherExprs = append(otherExprs, e)
		}
	}

	generate := plan.NewGenerate(gen, len(otherExprs) > 0, false, "", outputAttrs, p.Child)

	newList := make([]sql.Expression, 0, len(otherExprs)+len(outputAttrs))
	newList = append(newList, otherExprs...)
	for _, a := range outputAttrs {
		newList = append(newList, a)
	}

	return plan.NewProject(newList, generate), nil
}

// asAliasedGenerator matches the AliasedGenerator view of spec §4.6:
// Alias(Generator, name) for a single-element-type generator, or
// MultiAlias(Generator, names) for a multi-element-type one.
func asAliasedGenerator(e sql.Expression) (expression.Generator, []string, bool) {
	switch e := e.(type) {
	case *expression.Alias:
		if gen, ok := e.Child.(expression.Generator); ok {
			return gen, []string{e.Name()}, true
		}
	case *expression.MultiAlias:
		if gen, ok := e.Child.(expression.Generator); ok {
			return gen, e.Names, true
		}
	case expression.Generator:
		return e, nil, true
	}
	return nil, nil, false
}
