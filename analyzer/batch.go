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

// Package analyzer implements the logical-plan analyzer: a rule-based
// fixed-point tree rewriter that turns a parsed-but-unresolved plan
// into a fully resolved one.
package analyzer

import (
	"reflect"

	"github.com/suyanNone/logicalplan/sql"
)

// RuleFunc is the function a Rule applies to rewrite a plan.
type RuleFunc func(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error)

// Rule pairs a name (for logging and diagnostics) with the function
// that implements it.
type Rule struct {
	Name  string
	Apply RuleFunc
}

// Strategy selects how many passes a Batch runs.
type Strategy int

const (
	// Once runs every rule in the batch exactly one pass.
	Once Strategy = iota
	// FixedPoint repeats the batch until the plan stops changing or
	// Iterations passes have elapsed.
	FixedPoint
)

// Batch is an ordered group of rules executed together with a stopping
// strategy (spec §2 "Batch").
type Batch struct {
	Desc       string
	Strategy   Strategy
	Iterations int
	Rules      []Rule
}

// Eval runs the batch to fixed point (or once), returning the rewritten
// plan. A FixedPoint batch that fails to converge within Iterations
// returns the last plan it computed along with ErrMaxAnalysisIters —
// the caller can decide whether that's fatal.
func (b *Batch) Eval(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	cur, err := b.evalOnce(ctx, a, n)
	if err != nil {
		return nil, err
	}

	if b.Strategy == Once {
		return cur, nil
	}

	prev := n
	for i := 1; !nodesEqual(prev, cur); i++ {
		if i >= b.Iterations {
			return cur, ErrMaxAnalysisIters.New(b.Iterations, b.Desc)
		}
		prev = cur
		cur, err = b.evalOnce(ctx, a, cur)
		if err != nil {
			return nil, err
		}
	}

	return cur, nil
}

func (b *Batch) evalOnce(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	result := n
	for _, rule := range b.Rules {
		a.PushDebugContext(rule.Name)
		before := result
		var err error
		result, err = rule.Apply(ctx, a, result)
		if err != nil {
			a.PopDebugContext()
			return nil, err
		}
		if !nodesEqual(before, result) {
			a.Log("rule %s changed the plan", rule.Name)
		}
		a.PopDebugContext()
	}
	return result, nil
}

// nodesEqual reports whether a and b are structurally identical plans,
// the termination condition for FixedPoint batches.
func nodesEqual(a, b sql.Node) bool {
	return reflect.DeepEqual(a, b)
}
