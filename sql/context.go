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
	"context"

	"github.com/sirupsen/logrus"
)

// Context bundles a standard context.Context with per-analysis
// configuration and a logger, mirroring the teacher's sql.Context.
type Context struct {
	context.Context
	Logger *logrus.Logger
	// CaseSensitiveAnalysis selects the Resolver used throughout the
	// analyzer (spec §3 "Name resolution configuration").
	CaseSensitiveAnalysis bool
}

// NewContext wraps ctx with default (case-insensitive) analyzer
// configuration and a standard logger.
func NewContext(ctx context.Context) *Context {
	return &Context{Context: ctx, Logger: logrus.StandardLogger()}
}

// NewEmptyContext returns a Context suitable for tests: background
// context, standard logger, case-insensitive analysis.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// Resolver returns the name-equality function selected by this
// Context's CaseSensitiveAnalysis flag.
func (c *Context) Resolver() Resolver {
	return NewResolver(c.CaseSensitiveAnalysis)
}
