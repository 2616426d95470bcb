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

import "sync/atomic"

// ExprId is a process-unique identifier assigned to an AttributeReference
// or Alias at construction time. Equality of attributes across plan nodes
// is by ExprId, never by name.
type ExprId uint64

var exprIdCounter uint64

// NewExprId returns a fresh, process-unique ExprId. Safe to call
// concurrently from multiple analyzer invocations.
func NewExprId() ExprId {
	return ExprId(atomic.AddUint64(&exprIdCounter, 1))
}

// AttributeSet is a set of ExprIds, used to test attribute membership
// without regard to name or data type.
type AttributeSet map[ExprId]struct{}

// NewAttributeSet builds an AttributeSet from the given attributes.
func NewAttributeSet(attrs ...Expression) AttributeSet {
	s := make(AttributeSet, len(attrs))
	for _, a := range attrs {
		if ar, ok := a.(AttributeReferencer); ok {
			s[ar.ExprId()] = struct{}{}
		}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s AttributeSet) Contains(id ExprId) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set containing the members of both sets.
func (s AttributeSet) Union(other AttributeSet) AttributeSet {
	out := make(AttributeSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// AttributeReferencer is implemented by any expression that carries a
// stable ExprId: AttributeReference and Alias.
type AttributeReferencer interface {
	ExprId() ExprId
}
