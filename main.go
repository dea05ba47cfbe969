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
	"log"
	"os"

	"github.com/spf13/cobra"
)

func loadSettings() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

// openStore builds a store and fills it from path when one is given
func openStore(config *Config, path string) *Store {
	store := NewStore(config)
	if path == "" {
		return store
	}
	entries, err := ReadDataset(path)
	if err != nil {
		log.Fatalf("Error reading dataset: %v", err)
	}
	if err := store.Load(entries); err != nil {
		log.Fatalf("Error loading dataset: %v", err)
	}
	return store
}

func main() {
	asciiLogo := `
 ██████╗ ██████╗ ██████╗ ███╗   ███╗ █████╗ ██████╗
██╔═══██╗██╔══██╗██╔══██╗████╗ ████║██╔══██╗██╔══██╗
██║   ██║██████╔╝██║  ██║██╔████╔██║███████║██████╔╝
██║   ██║██╔══██╗██║  ██║██║╚██╔╝██║██╔══██║██╔═══╝
╚██████╔╝██║  ██║██████╔╝██║ ╚═╝ ██║██║  ██║██║
 ╚═════╝ ╚═╝  ╚═╝╚═════╝ ╚═╝     ╚═╝╚═╝  ╚═╝╚═╝
Ordered map on a self-balancing AVL tree with rank & select [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the S E A R C H E X A M P L E walkthrough",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo builds a small map and shows get, min, max, floor, ceiling, select, rank and deletions`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()
			if err := runDemo(os.Stdout, config.Tree.Balanced); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load FILE",
		Short: "Load a dataset and print it in key order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load reads "key -> value", "key value..." or bare key lines and prints every entry in ascending key order`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(loadSettings(), args[0])

			if err := store.Tree().Print(os.Stdout); err != nil {
				log.Fatalf("Error printing tree: %v", err)
			}
			if draw, _ := cmd.Flags().GetBool("draw"); draw {
				fmt.Println()
				if _, err := store.Tree().Draw(os.Stdout, false); err != nil {
					log.Fatalf("Error drawing tree: %v", err)
				}
			}
			if stats, _ := cmd.Flags().GetBool("stats"); stats {
				fmt.Println()
				fmt.Println(renderStats(store))
			}
		},
	}
	cmdLoad.Flags().Bool("draw", false, "draw the tree shape after the listing")
	cmdLoad.Flags().Bool("stats", false, "print tree statistics after the listing")

	var cmdShell = &cobra.Command{
		Use:   "shell [FILE]",
		Short: "Interactive line-based interpreter",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads one command per line from stdin, type help for the list`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			store := openStore(loadSettings(), path)

			prompt := ""
			if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
				prompt = "ordmap> "
			}
			if err := NewShell(store, os.Stdout).Run(os.Stdin, prompt); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse [FILE]",
		Short: "Launches the full-screen map browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Browse opens a terminal UI with a command prompt, the sorted entries and the tree drawing`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			store := openStore(loadSettings(), path)
			if err := runBubbleTeaApp(store); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdBench = &cobra.Command{
		Use:   "bench",
		Short: "Run a randomized workload with invariant checks",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Bench inserts, looks up and deletes random keys, checking order, sizes and balance along the way`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings()

			keys, _ := cmd.Flags().GetInt("keys")
			if keys <= 0 {
				keys = config.Bench.Keys
			}
			seed, _ := cmd.Flags().GetInt64("seed")

			result, err := runBench(BenchOptions{
				Keys:     keys,
				Seed:     seed,
				Balanced: config.Tree.Balanced,
			}, os.Stderr)
			if err != nil {
				log.Fatalf("Bench failed: %v", err)
			}
			printBenchResult(os.Stdout, result)
		},
	}
	cmdBench.Flags().Int("keys", 0, "number of keys (defaults to bench.keys from the config)")
	cmdBench.Flags().Int64("seed", 1, "random seed")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings displays ~/.ordmap.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print ordmap usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the ordmap CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print ordmap version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "ordmap",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			config := loadSettings()
			if err := runDemo(os.Stdout, config.Tree.Balanced); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	rootCmd.AddCommand(cmdDemo, cmdLoad, cmdShell, cmdBrowse, cmdBench, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
