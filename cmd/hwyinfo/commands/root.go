// Copyright 2025 go-highway Authors
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

// Package commands implements the hwyinfo subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/simdbatch/internal/config"
	"github.com/ajroetker/simdbatch/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	v       = viper.New()
)

// NewRootCommand builds the command tree. Each call returns a fresh tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "hwyinfo",
		Short: "Report SIMD tags, kernel resolution and host support",
		Long: `hwyinfo describes the architecture tags compiled into this binary.

Kernel selection is fixed at build time: build with GOAMD64=v3 or v4 for the
wider x86 tags, or with -tags hwy_generic to force the portable kernels.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hwy/config.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.BoolP("verbose", "v", false, "shorthand for --log-level debug")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(newInfoCommand(), newKernelsCommand(), newBenchCommand())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.LoadWith(v, cfgFile)
	if err != nil {
		return err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		c.Log.Level = "debug"
	}
	if err := logging.Init(c.Log.Level, c.Log.File, c.Log.Console); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	if used := v.ConfigFileUsed(); used != "" {
		logging.Infof("using config file %s", used)
	}
	cfg = c
	return nil
}

var titler = cases.Title(language.English)

func heading(cmd *cobra.Command, s string) {
	fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", titler.String(s))
}
