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

// Generator is a table-valued function: one input row produces zero or
// more output rows, each with one or more output columns (ElementTypes).
type Generator interface {
	sql.Expression
	// ElementTypes returns the declared type of each output column this
	// generator produces, in order.
	ElementTypes() []sql.Type
}

// Explode is the canonical single-column generator: it expands an array
// argument into one row per element.
type Explode struct {
	Arg     sql.Expression
	ElemTyp sql.Type
}

// NewExplode builds an EXPLODE(arg) generator producing one column of
// type elemTyp per array element.
func NewExplode(arg sql.Expression, elemTyp sql.Type) *Explode {
	return &Explode{Arg: arg, ElemTyp: elemTyp}
}

func (e *Explode) Children() []sql.Expression { return []sql.Expression{e.Arg} }
func (e *Explode) Resolved() bool             { return e.Arg.Resolved() }
func (e *Explode) Type() sql.Type             { return e.ElemTyp }
func (e *Explode) Nullable() bool             { return true }
func (e *Explode) String() string             { return "explode(" + e.Arg.String() + ")" }
func (e *Explode) ElementTypes() []sql.Type   { return []sql.Type{e.ElemTyp} }

func (e *Explode) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if err := requireChildren("Explode", children, 1); err != nil {
		return nil, err
	}
	return &Explode{Arg: children[0], ElemTyp: e.ElemTyp}, nil
}

// JSONTuple is a multi-column generator: one row, N JSON-path arguments,
// N output columns, all of type Text.
type JSONTuple struct {
	Doc   sql.Expression
	Paths []sql.Expression
}

// NewJSONTuple builds a json_tuple(doc, path1, path2, ...) generator.
func NewJSONTuple(doc sql.Expression, paths ...sql.Expression) *JSONTuple {
	return &JSONTuple{Doc: doc, Paths: paths}
}

func (j *JSONTuple) Children() []sql.Expression {
	return append([]sql.Expression{j.Doc}, j.Paths...)
}
func (j *JSONTuple) Resolved() bool {
	return j.Doc.Resolved() && sql.ExpressionsResolved(j.Paths...)
}
func (j *JSONTuple) Type() sql.Type { return sql.Text }
func (j *JSONTuple) Nullable() bool { return true }
func (j *JSONTuple) String() string { return "json_tuple(...)" }
func (j *JSONTuple) ElementTypes() []sql.Type {
	out := make([]sql.Type, len(j.Paths))
	for i := range out {
		out[i] = sql.Text
	}
	return out
}

func (j *JSONTuple) WithChildren(children []sql.Expression) (sql.Expression, error) {
	if len(children) < 1 {
		return nil, sql.ErrInvalidChildrenCount.New("JSONTuple", len(children), len(j.Paths)+1)
	}
	return &JSONTuple{Doc: children[0], Paths: children[1:]}, nil
}
