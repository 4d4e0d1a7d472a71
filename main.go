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
	"log"
	"os"

	"github.com/cybrota/avlstore/ops"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// openStore builds a store from the configuration and loads the data file
// named by --file, falling back to store.data_file from the config.
func openStore(cmd *cobra.Command) *Store {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	store := NewStore(config)

	path, _ := cmd.Flags().GetString("file")
	if path == "" {
		path = config.Store.DataFile
	}
	if path == "" {
		return store
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	if _, err := LoadFile(store, path, config.Store.ShowProgress && !noProgress); err != nil {
		log.Fatalf("Error loading data: %v", err)
	}
	return store
}

func main() {
	InitializeColors()

	banner := fmt.Sprintf("%savlstore %s%s: ordered key/value store on an AVL tree\n", Green, version, Reset)

	var cmdGet = &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value stored under KEY",
		Long:  banner,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(cmd)
			value, err := store.Get(args[0])
			if err != nil {
				log.Fatalf("%s%v%s", Error, err, Reset)
			}
			fmt.Println(value)
		},
	}

	var cmdList = &cobra.Command{
		Use:   "list",
		Short: "Print all entries in key order",
		Long:  banner,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(cmd)
			entries := store.Entries()
			if reverse, _ := cmd.Flags().GetBool("reverse"); reverse {
				entries = store.Reverse()
			}
			if len(entries) > 0 {
				fmt.Println(ops.FormatEntries(entries))
			}
		},
	}
	cmdList.Flags().Bool("reverse", false, "print entries in descending key order")

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Verify the tree invariants and print its shape",
		Long:  banner,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(cmd)
			stats := store.Stats()
			fmt.Printf("entries:  %d\n", stats.Size)
			fmt.Printf("height:   %d\n", stats.Height)
			fmt.Printf("balanced: %t\n", stats.Balanced)
			if err := store.Check(); err != nil {
				log.Fatalf("%s%v%s", Error, err, Reset)
			}
			fmt.Printf("%sinvariants hold%s\n", Green, Reset)
		},
	}

	var cmdExec = &cobra.Command{
		Use:   "exec [SCRIPT]",
		Short: "Run an operation script (stdin when SCRIPT is omitted or -)",
		Long:  fmt.Sprintf("%s\n%s", banner, "Each script line is one operation: insert, remove, get, find, list, reverse, clear, size, empty, height, balanced, check"),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(cmd)

			var script io.Reader = os.Stdin
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("Error opening script: %v", err)
				}
				defer file.Close()
				script = file
			}

			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			if err := RunScript(store, ops.NewOpManager(), script, os.Stdout, keepGoing); err != nil {
				log.Fatalf("%s%v%s", Error, err, Reset)
			}
		},
	}
	cmdExec.Flags().Bool("keep-going", false, "report failing lines and continue")

	var cmdBrowse = &cobra.Command{
		Use:   "browse",
		Short: "Browse entries and their tree nodes interactively",
		Long:  banner,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			store := openStore(cmd)
			if err := runBrowser(store); err != nil {
				log.Fatalf("Error running browser: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlstore usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlstore version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlstore",
		Version: version,
		Long:    banner,
	}
	rootCmd.PersistentFlags().StringP("file", "f", "", "data file with one key/value entry per line")
	rootCmd.PersistentFlags().Bool("no-progress", false, "do not show a progress bar while loading")
	rootCmd.AddCommand(cmdGet, cmdList, cmdCheck, cmdExec, cmdBrowse, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
