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

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suyanNone/logicalplan/analyzer"
	"github.com/suyanNone/logicalplan/memory"
	"github.com/suyanNone/logicalplan/sql"
)

var cfgFile string

// RootCmd reads a JSON fixture describing a small in-memory catalog and
// an unresolved query, runs it through the analyzer, and prints the
// resolved plan tree. It exists to give the module a runnable surface
// (spec §4, "[NEW] cmd/planfmt").
var RootCmd = &cobra.Command{
	Use:   "planfmt [fixture.json]",
	Short: "resolve a logical plan fixture and print the result",
	Long: `planfmt reads a JSON fixture describing a small in-memory
catalog and an unresolved query, runs the analyzer over it, and prints
the resolved plan tree to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanfmt,
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.planfmt.yaml)")
	RootCmd.Flags().Bool("case-sensitive", false, "use case-sensitive name resolution")
	RootCmd.Flags().Int("max-iterations", 100, "max fixed-point iterations per batch")
	RootCmd.Flags().Bool("verbose", false, "trace the plan before and after each batch")

	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		log.Fatalf("binding planfmt flags: %v", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".planfmt")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("PLANFMT")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func runPlanfmt(cmd *cobra.Command, args []string) error {
	var cfg AnalyzerConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer f.Close()

	fx, err := readFixture(f)
	if err != nil {
		return err
	}

	catalog, err := buildCatalog(fx)
	if err != nil {
		return err
	}

	builder := analyzer.NewBuilder(catalog, memory.NewFunctionRegistry()).
		WithCaseSensitiveAnalysis(cfg.CaseSensitiveAnalysis).
		WithMaxIterations(cfg.MaxIterations)
	if cfg.Verbose {
		builder = builder.WithVerbose()
	}
	a := builder.Build()

	resolved, err := a.Analyze(sql.NewEmptyContext(), buildPlan(fx))
	if err != nil {
		return fmt.Errorf("analyzing plan: %w", err)
	}

	fmt.Println(resolved.String())
	return nil
}

// Execute runs RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
