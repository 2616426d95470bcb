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

// ScriptTransformation is Hive's SELECT TRANSFORM(...) USING 'script':
// rows pass through Script, with InputExprs (which may contain a Star)
// selecting what's piped in and OutputAttrs naming what comes back.
type ScriptTransformation struct {
	UnaryNode
	InputExprs  []sql.Expression
	Script      string
	OutputAttrs []sql.Expression
}

// NewScriptTransformation creates a new script transformation.
func NewScriptTransformation(inputExprs []sql.Expression, script string, outputAttrs []sql.Expression, child sql.Node) *ScriptTransformation {
	return &ScriptTransformation{UnaryNode: UnaryNode{child}, InputExprs: inputExprs, Script: script, OutputAttrs: outputAttrs}
}

func (s *ScriptTransformation) Expressions() []sql.Expression { return s.InputExprs }
func (s *ScriptTransformation) Schema() sql.Schema            { return schemaOf(s.OutputAttrs) }
func (s *ScriptTransformation) Output() []sql.Expression      { return s.OutputAttrs }

func (s *ScriptTransformation) Resolved() bool {
	return s.Child.Resolved() && sql.ExpressionsResolved(s.InputExprs...) && sql.ExpressionsResolved(s.OutputAttrs...)
}

func (s *ScriptTransformation) String() string { return "ScriptTransformation(" + s.Script + ")" }

func (s *ScriptTransformation) WithChildren(children []sql.Node) (sql.Node, error) {
	if err := requireChildren("ScriptTransformation", children, 1); err != nil {
		return nil, err
	}
	return &ScriptTransformation{UnaryNode: UnaryNode{children[0]}, InputExprs: s.InputExprs, Script: s.Script, OutputAttrs: s.OutputAttrs}, nil
}

func (s *ScriptTransformation) WithExpressions(exprs []sql.Expression) (sql.Node, error) {
	if err := requireExprs("ScriptTransformation", exprs, len(s.InputExprs)); err != nil {
		return nil, err
	}
	return &ScriptTransformation{UnaryNode: s.UnaryNode, InputExprs: exprs, Script: s.Script, OutputAttrs: s.OutputAttrs}, nil
}
