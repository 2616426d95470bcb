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

package sql

// Type is a minimal stand-in for a column's data type. The analyzer only
// needs to know types well enough to propagate them and detect coercion
// failures; it never evaluates expressions.
type Type interface {
	// Name is the type's canonical name, e.g. "INT", "VARCHAR".
	Name() string
	// Equals reports whether two types are the same for resolution purposes.
	Equals(Type) bool
}

// BaseType is a simple named Type used for primitive SQL types.
type BaseType string

func (t BaseType) Name() string { return string(t) }

func (t BaseType) Equals(other Type) bool {
	o, ok := other.(BaseType)
	return ok && o == t
}

var (
	Int32   Type = BaseType("INT")
	Int64   Type = BaseType("BIGINT")
	Float64 Type = BaseType("DOUBLE")
	Text    Type = BaseType("TEXT")
	Boolean Type = BaseType("BOOLEAN")
	// Unknown marks a type that has not yet been determined; an expression
	// with Unknown type is not Resolved.
	Unknown Type = BaseType("")
)

// StructField names one member of a StructType.
type StructField struct {
	Name string
	Type Type
}

// StructType is a fixed-shape record type, the target of
// UnresolvedExtractValue field access and CreateStruct's result type.
type StructType struct {
	Fields []StructField
}

func (t *StructType) Name() string { return "STRUCT" }

func (t *StructType) Equals(other Type) bool {
	o, ok := other.(*StructType)
	if !ok || len(o.Fields) != len(t.Fields) {
		return false
	}
	for i, f := range t.Fields {
		if f.Name != o.Fields[i].Name || !f.Type.Equals(o.Fields[i].Type) {
			return false
		}
	}
	return true
}

// ArrayType is a homogeneous array type, the target of CreateArray's
// result type and of array-of-struct field projection.
type ArrayType struct {
	Elem Type
}

func (t *ArrayType) Name() string { return "ARRAY<" + t.Elem.Name() + ">" }

func (t *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && t.Elem.Equals(o.Elem)
}

// Column describes one field of a Schema: a relation's declared column,
// or a plan node's output attribute before it has been bound to an ExprId.
type Column struct {
	Name     string
	Source   string
	Type     Type
	Nullable bool
}

// Schema is an ordered list of Columns.
type Schema []*Column

// IndexOf returns the index of the first column whose name matches name
// under the given Resolver, restricted to the given source if source is
// non-empty. Returns -1 if not found.
func (s Schema) IndexOf(name, source string, resolve Resolver) int {
	for i, c := range s {
		if source != "" && !resolve(c.Source, source) {
			continue
		}
		if resolve(c.Name, name) {
			return i
		}
	}
	return -1
}
