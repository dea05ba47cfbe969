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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".ordmap.yaml"

type TreeConfig struct {
	Balanced bool `yaml:"balanced"`
}

type CacheConfig struct {
	TTL     time.Duration `yaml:"ttl"`
	Cleanup time.Duration `yaml:"cleanup"`
}

type FilterConfig struct {
	Size   uint `yaml:"size"`
	Hashes uint `yaml:"hashes"`
}

type BenchConfig struct {
	Keys int `yaml:"keys"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Cache  CacheConfig  `yaml:"cache"`
	Filter FilterConfig `yaml:"filter"`
	Bench  BenchConfig  `yaml:"bench"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Balanced: true,
	},
	Cache: CacheConfig{
		TTL:     30 * time.Minute,
		Cleanup: 5 * time.Minute,
	},
	Filter: FilterConfig{
		Size:   1 << 16,
		Hashes: 4,
	},
	Bench: BenchConfig{
		Keys: 10000,
	},
}

// DefaultConfig returns a copy of the built-in settings
func DefaultConfig() *Config {
	c := defaultConfig
	return &c
}

// LoadConfig reads ~/.ordmap.yaml. Any problem with the file falls back
// to the defaults, the error only says why.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the given file. Settings missing from the file
// keep their default values.
func LoadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", configPath, err)
	}

	if config.Filter.Size == 0 || config.Filter.Hashes == 0 {
		config.Filter = defaultConfig.Filter
	}
	if config.Bench.Keys <= 0 {
		config.Bench.Keys = defaultConfig.Bench.Keys
	}
	return config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfigFile(configPath string) error {
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

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("%s❌ Failed to load configuration: %v%s\n", Error, err, Reset)
		return
	}

	fmt.Printf("🔧 ordmap Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s%s%s\n", Info, configPath, Reset)
	} else {
		fmt.Printf("📍 Config file: %s%s%s (newly created)\n", Info, configPath, Reset)
	}

	fmt.Printf("📊 Current settings:\n\n")

	variant := "AVL (self-balancing)"
	if !config.Tree.Balanced {
		variant = "plain BST (no rotations)"
	}
	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %sbalanced%s: %t\n", Green, Reset, config.Tree.Balanced)
	fmt.Printf("    %s\n\n", variant)

	fmt.Printf("⚡ %sLookup cache:%s\n", Green, Reset)
	fmt.Printf("  • %sttl%s: %s\n", Green, Reset, config.Cache.TTL)
	fmt.Printf("  • %scleanup%s: %s\n\n", Green, Reset, config.Cache.Cleanup)

	fmt.Printf("🔍 %sMembership filter:%s\n", Green, Reset)
	fmt.Printf("  • %ssize%s: %d bits\n", Green, Reset, config.Filter.Size)
	fmt.Printf("  • %shashes%s: %d\n\n", Green, Reset, config.Filter.Hashes)

	fmt.Printf("🏁 %sBench:%s\n", Green, Reset)
	fmt.Printf("  • %skeys%s: %d\n\n", Green, Reset, config.Bench.Keys)

	fmt.Printf("💡 %sTo build plain binary search trees, edit %s:%s\n", Warning, configPath, Reset)
	fmt.Printf("   tree:\n     balanced: false\n")
}
