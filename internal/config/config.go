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

// Package config loads the settings of the hwyinfo tool from defaults, an
// optional YAML file and HWY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/ajroetker/simdbatch/hwy"
)

// Config is the complete tool configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Bench   BenchConfig   `mapstructure:"bench"`
	Kernels KernelsConfig `mapstructure:"kernels"`
}

type LogConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// BenchConfig sizes the bench command. Workers of 0 means GOMAXPROCS.
type BenchConfig struct {
	Size    int `mapstructure:"size"`
	Workers int `mapstructure:"workers"`
	Rounds  int `mapstructure:"rounds"`
}

type KernelsConfig struct {
	Type string `mapstructure:"type"`
	Arch string `mapstructure:"arch"`
}

// ElementTypes lists the element type names the kernels command accepts.
var ElementTypes = []string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Console: true},
		Bench:   BenchConfig{Size: 1 << 16, Rounds: 200},
		Kernels: KernelsConfig{Type: "float32"},
	}
}

// Load reads cfgFile, or config.yaml from $HOME/.hwy and the working
// directory when cfgFile is empty, over the defaults. Environment variables
// HWY_<SECTION>_<KEY> override both. A missing default file is not an error.
func Load(cfgFile string) (*Config, error) {
	return LoadWith(viper.New(), cfgFile)
}

// LoadWith is Load using v, which may already carry bound flags.
func LoadWith(v *viper.Viper, cfgFile string) (*Config, error) {
	cfg := Default()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".hwy"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("HWY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// ArchNames lists the architecture tag names kernels.arch accepts.
func ArchNames() []string {
	return lo.Map(hwy.AllArchs(), func(id hwy.ArchID, _ int) string { return id.String() })
}

// Validate checks the configuration for values the tool cannot use.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of: %v", logLevels)
	}
	if c.Bench.Size <= 0 {
		return errors.New("bench.size must be positive")
	}
	if c.Bench.Rounds <= 0 {
		return errors.New("bench.rounds must be positive")
	}
	if c.Bench.Workers < 0 {
		return errors.New("bench.workers must not be negative")
	}
	if !slices.Contains(ElementTypes, c.Kernels.Type) {
		return fmt.Errorf("kernels.type must be one of: %v", ElementTypes)
	}
	if c.Kernels.Arch != "" && !slices.Contains(ArchNames(), c.Kernels.Arch) {
		return fmt.Errorf("kernels.arch must be empty or one of: %v", ArchNames())
	}
	return nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.console", cfg.Log.Console)

	v.SetDefault("bench.size", cfg.Bench.Size)
	v.SetDefault("bench.workers", cfg.Bench.Workers)
	v.SetDefault("bench.rounds", cfg.Bench.Rounds)

	v.SetDefault("kernels.type", cfg.Kernels.Type)
	v.SetDefault("kernels.arch", cfg.Kernels.Arch)
}
