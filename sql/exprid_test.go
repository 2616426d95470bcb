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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewExprIdIsMonotonicAndUnique(t *testing.T) {
	require := require.New(t)

	a := NewExprId()
	b := NewExprId()
	require.NotEqual(a, b)
	require.Less(uint64(a), uint64(b))
}

type fakeAttr struct {
	id ExprId
}

func (f *fakeAttr) ExprId() ExprId                                { return f.id }
func (f *fakeAttr) Children() []Expression                        { return nil }
func (f *fakeAttr) Resolved() bool                                { return true }
func (f *fakeAttr) Type() Type                                    { return Int32 }
func (f *fakeAttr) Nullable() bool                                { return false }
func (f *fakeAttr) String() string                                { return "fakeAttr" }
func (f *fakeAttr) WithChildren([]Expression) (Expression, error) { return f, nil }

func TestAttributeSetContainsOnlyRegisteredIds(t *testing.T) {
	require := require.New(t)

	a := &fakeAttr{id: NewExprId()}
	b := &fakeAttr{id: NewExprId()}
	set := NewAttributeSet(a)

	require.True(set.Contains(a.ExprId()))
	require.False(set.Contains(b.ExprId()))
}

func TestAttributeSetUnionCombinesBothSides(t *testing.T) {
	require := require.New(t)

	a := &fakeAttr{id: NewExprId()}
	b := &fakeAttr{id: NewExprId()}
	left := NewAttributeSet(a)
	right := NewAttributeSet(b)

	union := left.Union(right)
	require.True(union.Contains(a.ExprId()))
	require.True(union.Contains(b.ExprId()))
}
