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
	"github.com/suyanNone/logicalplan/sql/expression"
	"github.com/suyanNone/logicalplan/sql/plan"
)

// resolveReferences is the workhorse rule of the Resolution batch (spec
// §4.3): wildcard expansion, unresolved-attribute binding, self-join
// deconfliction, and lenient Sort-order resolution. It is applied
// bottom-up so that a node's children are already as resolved as
// they're going to get by the time the node itself is visited.
func resolveReferences(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	resolve := a.Resolver()

	return sql.TransformUp(func(node sql.Node) (sql.Node, error) {
		switch node := node.(type) {
		case *plan.Join:
			return deconflictSelfJoin(node)
		case *plan.Sort:
			return resolveSortLenient(node, resolve)
		default:
			if !sql.ChildrenResolved(node) {
				return node, nil
			}
			return resolveNodeReferences(node, resolve)
		}
	}, n)
}

// resolveNodeReferences expands Stars and binds UnresolvedAttributes
// against node's (now-resolved) children.
func resolveNodeReferences(node sql.Node, resolve sql.Resolver) (sql.Node, error) {
	switch node := node.(type) {
	case *plan.Project:
		list, err := expandStars(node.ProjectList, node.Children())
		if err != nil {
			return nil, err
		}
		list, err = bindAttributes(list, node.Children(), resolve)
		if err != nil {
			return nil, err
		}
		return plan.NewProject(list, node.Child), nil
	case *plan.Aggregate:
		aggs, err := expandStars(node.AggregateExprs, node.Children())
		if err != nil {
			return nil, err
		}
		aggs, err = bindAttributes(aggs, node.Children(), resolve)
		if err != nil {
			return nil, err
		}
		groups, err := bindAttributes(node.GroupByExprs, node.Children(), resolve)
		if err != nil {
			return nil, err
		}
		return plan.NewAggregate(groups, aggs, node.Child), nil
	case *plan.ScriptTransformation:
		in, err := expandStars(node.InputExprs, node.Children())
		if err != nil {
			return nil, err
		}
		in, err = bindAttributes(in, node.Children(), resolve)
		if err != nil {
			return nil, err
		}
		return plan.NewScriptTransformation(in, node.Script, node.OutputAttrs, node.Child), nil
	default:
		exprs := node.Expressions()
		if len(exprs) == 0 {
			return node, nil
		}
		bound, err := bindAttributes(exprs, node.Children(), resolve)
		if err != nil {
			return nil, err
		}
		return node.WithExpressions(bound)
	}
}

// expandStars replaces every top-level Star in exprs, or Star nested
// inside function arguments/CreateArray/CreateStruct, with the matching
// output attributes of children.
func expandStars(exprs []sql.Expression, children []sql.Node) ([]sql.Expression, error) {
	var out []sql.Expression
	for _, e := range exprs {
		star, ok := e.(*expression.Star)
		if !ok {
			expanded, err := expandNestedStars(e, children)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded)
			continue
		}
		cols, err := starColumns(star, children)
		if err != nil {
			return nil, err
		}
		out = append(out, cols...)
	}
	return out, nil
}

// expandNestedStars rewrites Stars found inside an expression's argument
// list (function calls, CreateArray, CreateStruct) in place.
func expandNestedStars(e sql.Expression, children []sql.Node) (sql.Expression, error) {
	switch e := e.(type) {
	case *expression.UnresolvedFunction:
		args, err := expandStars(e.Args, children)
		if err != nil {
			return nil, err
		}
		return expression.NewUnresolvedFunction(e.Name, e.IsDistinct, args...), nil
	case *expression.CreateArray:
		elems, err := expandStars(e.Elements, children)
		if err != nil {
			return nil, err
		}
		return &expression.CreateArray{Elements: elems, ResultTyp: e.ResultTyp}, nil
	case *expression.CreateStruct:
		elems, err := expandStars(e.Elements, children)
		if err != nil {
			return nil, err
		}
		if len(elems) != len(e.Names) {
			return e, nil
		}
		return expression.NewCreateStruct(e.Names, elems), nil
	case *expression.UnresolvedAlias:
		child, err := expandNestedStars(e.Child, children)
		if err != nil {
			return nil, err
		}
		return expression.NewUnresolvedAlias(child), nil
	default:
		return e, nil
	}
}

func starColumns(star *expression.Star, children []sql.Node) ([]sql.Expression, error) {
	var out []sql.Expression
	for _, child := range children {
		for _, o := range child.Output() {
			ar, ok := o.(*expression.AttributeReference)
			if !ok {
				continue
			}
			if star.Qualifier != "" && !sql.CaseInsensitiveResolver(ar.Qualifier(), star.Qualifier) {
				continue
			}
			out = append(out, ar)
		}
	}
	return out, nil
}

// bindAttributes replaces every UnresolvedAttribute it can resolve
// against children's combined output, peeling an enclosing
// UnresolvedAlias on success. UnresolvedExtractValue resolves once its
// child is resolved. Failures are left untouched for a later pass.
func bindAttributes(exprs []sql.Expression, children []sql.Node, resolve sql.Resolver) ([]sql.Expression, error) {
	out := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		bound, err := sql.TransformExpressionUp(func(x sql.Expression) (sql.Expression, error) {
			switch x := x.(type) {
			case *expression.UnresolvedAttribute:
				if attr, ok := plan.ResolveChildren(x.NameParts, children, resolve); ok {
					return attr, nil
				}
				return x, nil
			case *expression.UnresolvedAlias:
				if ar, ok := x.Child.(*expression.AttributeReference); ok {
					return ar, nil
				}
				if ua, ok := x.Child.(*expression.UnresolvedAttribute); ok {
					if attr, ok := plan.ResolveChildren(ua.NameParts, children, resolve); ok {
						return attr, nil
					}
				}
				return x, nil
			case *expression.UnresolvedExtractValue:
				if !x.Child.Resolved() {
					return x, nil
				}
				return resolveExtractValue(x)
			default:
				return x, nil
			}
		}, e)
		if err != nil {
			return nil, err
		}
		out[i] = bound
	}
	return out, nil
}

// resolveExtractValue binds an UnresolvedExtractValue once its child is
// resolved, producing GetStructField for a scalar field or
// GetArrayStructFields when the child is an array of structs.
func resolveExtractValue(x *expression.UnresolvedExtractValue) (sql.Expression, error) {
	switch t := x.Child.Type().(type) {
	case *sql.ArrayType:
		if _, ok := t.Elem.(*sql.StructType); ok {
			return expression.NewGetArrayStructFields(x.Child, x.Field, sql.Unknown), nil
		}
		return x, nil
	case *sql.StructType:
		fieldType := sql.Unknown
		for _, f := range t.Fields {
			if f.Name == x.Field {
				fieldType = f.Type
			}
		}
		return expression.NewGetStructField(x.Child, x.Field, fieldType), nil
	default:
		return x, nil
	}
}

// resolveSortLenient resolves a Sort's ordering against an already
// resolved child in non-failing mode: unresolved SortOrders are left
// alone for ResolveSortReferences or a later pass to finish.
func resolveSortLenient(s *plan.Sort, resolve sql.Resolver) (sql.Node, error) {
	if !s.Child.Resolved() {
		return s, nil
	}
	fields, err := bindAttributes(s.SortFields, []sql.Node{s.Child}, resolve)
	if err != nil {
		return nil, err
	}
	return s.WithExpressions(fields)
}

// deconflictSelfJoin handles spec §4.3's self-join deconfliction:
// when left and right share an ExprId, freshen the first colliding node
// found (top-down) on the right and remap the rest of the right subtree.
func deconflictSelfJoin(j *plan.Join) (sql.Node, error) {
	if !j.Left.Resolved() || !j.Right.Resolved() {
		return j, nil
	}

	leftIds := sql.NewAttributeSet(j.Left.Output()...)
	if !anyCollide(leftIds, j.Right.Output()) {
		return j, nil
	}

	newRight, mapping, found := freshenFirstCollision(j.Right, leftIds)
	if !found {
		return j, nil
	}

	remapped, err := remapAttributes(newRight, mapping)
	if err != nil {
		return nil, err
	}

	return &plan.Join{Left: j.Left, Right: remapped, Type: j.Type, Condition: j.Condition}, nil
}

func anyCollide(ids sql.AttributeSet, exprs []sql.Expression) bool {
	for _, e := range exprs {
		ar, ok := e.(*expression.AttributeReference)
		if !ok {
			continue
		}
		if ids.Contains(ar.ExprId()) {
			return true
		}
	}
	return false
}

// freshenFirstCollision searches right top-down for the first node whose
// output collides with leftIds and freshens it, returning the rewritten
// subtree and an old-ExprId -> new-attribute map.
func freshenFirstCollision(right sql.Node, leftIds sql.AttributeSet) (sql.Node, map[sql.ExprId]*expression.AttributeReference, bool) {
	target, ok := sql.CollectFirst(right, func(node sql.Node) bool {
		return anyCollide(leftIds, node.Output())
	})
	if !ok {
		return right, nil, false
	}

	freshened, mapping, err := freshenNode(target)
	if err != nil || freshened == nil {
		return right, nil, false
	}

	rewritten, err := sql.TransformDown(func(node sql.Node) (sql.Node, error) {
		if node == target {
			return freshened, nil
		}
		return node, nil
	}, right)
	if err != nil {
		return right, nil, false
	}
	return rewritten, mapping, true
}

// freshenNode rebuilds target with fresh ExprIds for every attribute it
// produces, per the node-kind list in spec §4.3.
func freshenNode(target sql.Node) (sql.Node, map[sql.ExprId]*expression.AttributeReference, error) {
	mapping := make(map[sql.ExprId]*expression.AttributeReference)

	if mi, ok := target.(sql.MultiInstanceRelation); ok {
		fresh, err := mi.NewInstance()
		if err != nil {
			return nil, nil, err
		}
		old, new := target.Output(), fresh.Output()
		for i := range old {
			oldAr, ok := old[i].(*expression.AttributeReference)
			newAr, ok2 := new[i].(*expression.AttributeReference)
			if ok && ok2 {
				mapping[oldAr.ExprId()] = newAr
			}
		}
		return fresh, mapping, nil
	}

	switch t := target.(type) {
	case *plan.Project:
		exprs, m := freshenAliasList(t.ProjectList)
		for k, v := range m {
			mapping[k] = v
		}
		fresh, err := t.WithExpressions(exprs)
		return fresh, mapping, err
	case *plan.Aggregate:
		aggs, m := freshenAliasList(t.AggregateExprs)
		for k, v := range m {
			mapping[k] = v
		}
		fresh, err := t.WithExpressions(append(append([]sql.Expression{}, t.GroupByExprs...), aggs...))
		return fresh, mapping, err
	case *plan.Generate:
		newAttrs := make([]*expression.AttributeReference, len(t.OutputAttrs))
		for i, a := range t.OutputAttrs {
			fresh := a.WithExprId(sql.NewExprId())
			newAttrs[i] = fresh
			mapping[a.ExprId()] = fresh
		}
		return plan.NewGenerate(t.Generator, t.Join, t.Outer, t.Qualifier, newAttrs, t.Child), mapping, nil
	case *plan.Window:
		exprs, m := freshenAliasList(t.WindowExprs)
		for k, v := range m {
			mapping[k] = v
		}
		fresh, err := t.WithExpressions(exprs)
		return fresh, mapping, err
	default:
		return nil, nil, nil
	}
}

// freshenAliasList rebuilds every Alias and every bare AttributeReference
// in exprs with a fresh ExprId, leaving all other members unchanged, and
// returns the old->new attribute mapping.
func freshenAliasList(exprs []sql.Expression) ([]sql.Expression, map[sql.ExprId]*expression.AttributeReference) {
	mapping := make(map[sql.ExprId]*expression.AttributeReference)
	out := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		switch e := e.(type) {
		case *expression.Alias:
			fresh := expression.RestoreAlias(sql.NewExprId(), e.Name(), e.Child)
			mapping[e.ExprId()] = fresh.ToAttribute()
			out[i] = fresh
		case *expression.AttributeReference:
			fresh := e.WithExprId(sql.NewExprId())
			mapping[e.ExprId()] = fresh
			out[i] = fresh
		default:
			out[i] = e
		}
	}
	return out, mapping
}

// remapAttributes rewrites every AttributeReference in subtree whose
// ExprId is a key of mapping to the corresponding new attribute.
func remapAttributes(subtree sql.Node, mapping map[sql.ExprId]*expression.AttributeReference) (sql.Node, error) {
	if len(mapping) == 0 {
		return subtree, nil
	}
	return sql.TransformExpressionsUpAllNodes(func(e sql.Expression) (sql.Expression, error) {
		ar, ok := e.(*expression.AttributeReference)
		if !ok {
			return e, nil
		}
		if fresh, ok := mapping[ar.ExprId()]; ok {
			return fresh, nil
		}
		return e, nil
	}, subtree)
}
