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

package main

// AnalyzerConfig is the subset of Analyzer.Builder options planfmt
// exposes on the command line, bound through viper with flag > env >
// config file precedence.
type AnalyzerConfig struct {
	CaseSensitiveAnalysis bool `mapstructure:"case-sensitive"`
	MaxIterations         int  `mapstructure:"max-iterations"`
	Verbose               bool `mapstructure:"verbose"`
}
