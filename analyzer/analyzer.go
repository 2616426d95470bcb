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
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/suyanNone/logicalplan/sql"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

// defaultMaxIterations bounds every FixedPoint batch (spec §5
// "maxIterations, default 100").
const defaultMaxIterations = 100

// ErrMaxAnalysisIters is thrown when a FixedPoint batch fails to
// converge within its iteration cap.
var ErrMaxAnalysisIters = sql.ErrMaxAnalysisIterations

// Builder configures and constructs an Analyzer, mirroring the
// teacher's analyzer.Builder (AddPreAnalyzeRule/AddPostAnalyzeRule).
type Builder struct {
	catalog         sql.Catalog
	functions       sql.FunctionRegistry
	extendedRules   []Rule
	maxIterations   int
	caseSensitive   bool
	debug           bool
	verbose         bool
}

// NewBuilder creates a Builder wired to the given catalog and function
// registry.
func NewBuilder(catalog sql.Catalog, functions sql.FunctionRegistry) *Builder {
	return &Builder{catalog: catalog, functions: functions, maxIterations: defaultMaxIterations}
}

// WithCaseSensitiveAnalysis sets the caseSensitiveAnalysis flag (spec §3).
func (b *Builder) WithCaseSensitiveAnalysis(caseSensitive bool) *Builder {
	b.caseSensitive = caseSensitive
	return b
}

// WithMaxIterations overrides the default FixedPoint iteration cap.
func (b *Builder) WithMaxIterations(n int) *Builder {
	b.maxIterations = n
	return b
}

// WithDebug turns on per-rule debug logging.
func (b *Builder) WithDebug() *Builder {
	b.debug = true
	return b
}

// WithVerbose turns on whole-plan tracing between batches (spec §4.11).
func (b *Builder) WithVerbose() *Builder {
	b.verbose = true
	return b
}

// WithExtendedResolutionRules appends rules to the Resolution batch,
// the injection point spec §6 calls "extendedResolutionRules".
func (b *Builder) WithExtendedResolutionRules(rules ...Rule) *Builder {
	b.extendedRules = append(b.extendedRules, rules...)
	return b
}

// Build assembles the three-batch pipeline of spec §2 plus the trailing
// check and cleanup passes.
func (b *Builder) Build() *Analyzer {
	_, envDebug := os.LookupEnv(debugAnalyzerKey)

	resolutionRules := append([]Rule{
		{"ResolveRelations", resolveRelations},
		{"ResolveReferences", resolveReferences},
		{"ResolveGroupingAnalytics", resolveGroupingAnalytics},
		{"ResolveSortReferences", resolveSortReferences},
		{"ResolveGenerate", resolveGenerate},
		{"ResolveFunctions", resolveFunctions},
		{"ResolveAliases", resolveAliases},
		{"ExtractWindowExpressions", extractWindowExpressions},
		{"GlobalAggregates", globalAggregates},
		{"UnresolvedHavingClauseAttributes", unresolvedHavingClauseAttributes},
		{"ResolveCoercions", resolveCoercions},
	}, b.extendedRules...)

	batches := []*Batch{
		{
			Desc:       "Substitution",
			Strategy:   FixedPoint,
			Iterations: b.maxIterations,
			Rules: []Rule{
				{"CTESubstitution", cteSubstitution},
				{"WindowsSubstitution", windowsSubstitution},
			},
		},
		{
			Desc:       "Resolution",
			Strategy:   FixedPoint,
			Iterations: b.maxIterations,
			Rules:      resolutionRules,
		},
		{
			Desc:       "Nondeterministic",
			Strategy:   Once,
			Iterations: 1,
			Rules: []Rule{
				{"PullOutNondeterministic", pullOutNondeterministic},
			},
		},
	}

	return &Analyzer{
		Catalog:               b.catalog,
		Functions:             b.functions,
		Batches:                batches,
		CaseSensitiveAnalysis: b.caseSensitive,
		MaxIterations:          b.maxIterations,
		Debug:                  b.debug || envDebug,
		Verbose:                b.verbose,
		Logger:                 logrus.StandardLogger(),
		nondeterministicSkip:   make(map[sql.Node]bool),
	}
}

// Analyzer drives the batch pipeline and the trailing check phase. It
// is the module's single entry point (spec §6 "analyze(plan) -> plan").
type Analyzer struct {
	Catalog               sql.Catalog
	Functions             sql.FunctionRegistry
	Batches               []*Batch
	CaseSensitiveAnalysis bool
	MaxIterations         int
	Debug                 bool
	Verbose               bool
	Logger                *logrus.Logger

	debugCtx []string
	// nondeterministicSkip marks Project nodes inserted by
	// PullOutNondeterministic so that a re-run of the (Once) rule never
	// re-lifts from them (spec §4.8 "the inserted Project is on the
	// rule's skip-list").
	nondeterministicSkip map[sql.Node]bool
}

// NewDefault builds an Analyzer with default configuration.
func NewDefault(catalog sql.Catalog, functions sql.FunctionRegistry) *Analyzer {
	return NewBuilder(catalog, functions).Build()
}

// Log writes a debug-level message tagged with the current rule/batch
// context, mirroring the teacher's Analyzer.Log.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a == nil || !a.Debug || a.Logger == nil {
		return
	}
	if len(a.debugCtx) > 0 {
		ctx := strings.Join(a.debugCtx, "/")
		a.Logger.Debugf("%s: "+msg, append([]interface{}{ctx}, args...)...)
	} else {
		a.Logger.Debugf(msg, args...)
	}
}

// LogNode prints the plan's string form if Verbose is enabled.
func (a *Analyzer) LogNode(n sql.Node) {
	if a == nil || !a.Verbose || n == nil {
		return
	}
	ctx := strings.Join(a.debugCtx, "/")
	fmt.Fprintf(os.Stderr, "%s:\n%s\n", ctx, n.String())
}

// PushDebugContext pushes msg onto the debug-context stack.
func (a *Analyzer) PushDebugContext(msg string) {
	if a != nil {
		a.debugCtx = append(a.debugCtx, msg)
	}
}

// PopDebugContext pops the most recently pushed debug-context entry.
func (a *Analyzer) PopDebugContext() {
	if a != nil && len(a.debugCtx) > 0 {
		a.debugCtx = a.debugCtx[:len(a.debugCtx)-1]
	}
}

// Resolver returns the name-equality function selected by
// CaseSensitiveAnalysis.
func (a *Analyzer) Resolver() sql.Resolver {
	return sql.NewResolver(a.CaseSensitiveAnalysis)
}

// Analyze runs the full pipeline (Substitution, Resolution,
// Nondeterministic, then CheckAnalysis and EliminateSubQueries) over n.
func (a *Analyzer) Analyze(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	ctx.CaseSensitiveAnalysis = a.CaseSensitiveAnalysis

	a.Log("starting analysis of node of type: %T", n)
	a.LogNode(n)

	cur := n
	for _, batch := range a.Batches {
		a.PushDebugContext(batch.Desc)
		result, err := batch.Eval(ctx, a, cur)
		a.PopDebugContext()
		if err != nil {
			if ErrMaxAnalysisIters.Is(err) {
				return nil, err
			}
			return nil, err
		}
		cur = result
		a.LogNode(cur)
	}

	if err := CheckAnalysis(ctx, cur); err != nil {
		return nil, err
	}

	return EliminateSubQueries(cur), nil
}
