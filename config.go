// Copyright 2025 Naren Yellavula
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
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

// Layout names accepted by the shell and the build command.
const (
	LayoutAuto     = "auto"
	LayoutPyramid  = "pyramid"
	LayoutSideways = "sideways"
)

type ShellConfig struct {
	Layout string `yaml:"layout"`
	Width  int    `yaml:"width"`
}

// StressConfig describes the stress scenario: Seed goes in first, then
// Descending keys counting down from Seed-1, then Ascending keys counting
// up from Seed+1, then every key in [DeleteFrom, DeleteTo] is deleted.
type StressConfig struct {
	Seed       int `yaml:"seed"`
	Descending int `yaml:"descending"`
	Ascending  int `yaml:"ascending"`
	DeleteFrom int `yaml:"delete_from"`
	DeleteTo   int `yaml:"delete_to"`
}

type LogConfig struct {
	Directory string `yaml:"directory"` // empty means the user cache dir
	File      string `yaml:"file"`
	Level     string `yaml:"level"`
	Console   bool   `yaml:"console"`
	Size      int    `yaml:"size"`
	Count     int    `yaml:"count"`
}

type FilterConfig struct {
	ExpectedKeys      uint    `yaml:"expected_keys"`
	FalsePositiveRate float64 `yaml:"false_positive_rate"`
}

type Config struct {
	Shell  ShellConfig  `yaml:"shell"`
	Stress StressConfig `yaml:"stress"`
	Log    LogConfig    `yaml:"log"`
	Filter FilterConfig `yaml:"filter"`
}

var defaultConfig = Config{
	Shell: ShellConfig{
		Layout: LayoutAuto,
		Width:  80,
	},
	Stress: StressConfig{
		Seed:       100,
		Descending: 99,
		Ascending:  100,
		DeleteFrom: 1,
		DeleteTo:   49,
	},
	Log: LogConfig{
		File:  "avltree.log",
		Level: "info",
		Size:  1048576,
		Count: 5,
	},
	Filter: FilterConfig{
		ExpectedKeys:      100000,
		FalsePositiveRate: 0.01,
	},
}

// DefaultConfig returns a copy of the built-in settings.
func DefaultConfig() *Config {
	cfg := defaultConfig
	return &cfg
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.avltree.yaml. A missing file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the given file on top of the defaults, so keys the
// file leaves out keep their default values. On a read or parse error the
// defaults are returned together with the error.
func LoadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read %s: %v", configPath, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	if err := config.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid %s: %v", configPath, err)
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Shell.Layout {
	case LayoutAuto, LayoutPyramid, LayoutSideways:
	default:
		return fmt.Errorf("shell.layout must be %s, %s or %s, got %q", LayoutAuto, LayoutPyramid, LayoutSideways, c.Shell.Layout)
	}
	if err := c.Stress.validate(); err != nil {
		return err
	}
	if c.Filter.ExpectedKeys == 0 {
		return fmt.Errorf("filter.expected_keys must be positive")
	}
	if c.Filter.FalsePositiveRate <= 0 || c.Filter.FalsePositiveRate >= 1 {
		return fmt.Errorf("filter.false_positive_rate must be in (0, 1)")
	}
	return nil
}

func (s StressConfig) validate() error {
	if s.Descending < 0 || s.Ascending < 0 {
		return fmt.Errorf("stress run lengths must not be negative, got %d descending and %d ascending", s.Descending, s.Ascending)
	}
	return nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, configPath string) {
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
			return
		}
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 avltree Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s%s%s\n", Info, configPath, Reset)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s%s%s (newly created)\n", Info, configPath, Reset)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	fmt.Fprintf(w, "🌳 %sShell:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slayout%s: %s\n", Green, Reset, config.Shell.Layout)
	fmt.Fprintf(w, "  • %swidth%s: %d\n\n", Green, Reset, config.Shell.Width)

	s := config.Stress
	fmt.Fprintf(w, "🏋 %sStress:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • seed %d, %d descending, %d ascending, delete [%d, %d]\n\n",
		s.Seed, s.Descending, s.Ascending, s.DeleteFrom, s.DeleteTo)

	fmt.Fprintf(w, "📜 %sLog:%s\n", Green, Reset)
	dir := config.Log.Directory
	if dir == "" {
		dir = "(user cache dir)"
	}
	fmt.Fprintf(w, "  • %s/%s at level %s\n\n", dir, config.Log.File, config.Log.Level)

	fmt.Fprintf(w, "🔍 %sFilter:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • sized for %d keys at %.3f false positive rate\n", config.Filter.ExpectedKeys, config.Filter.FalsePositiveRate)
}
