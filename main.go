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

	"github.com/cybrota/roster/registry"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// options holds the root persistent flags
type options struct {
	script  string
	verbose bool
	verify  bool
}

// setup applies the flags to logging and configuration and builds a roster,
// preloading the script given with --script.
func setup(opts *options) (*Roster, *Config) {
	if opts.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		cfg := defaultConfig
		config = &cfg
	}
	if opts.verify {
		config.Shell.Verify = true
	}

	r := NewRoster(registry.NewTree(), config)
	if opts.script != "" {
		result, err := r.RunScriptFile(opts.script, io.Discard, false)
		if err != nil {
			fatalf("Error loading script: %v", err)
		}
		reportFailures(result)
	}
	return r, config
}

// fatalf reports an unrecoverable error even when logging is discarded.
func fatalf(format string, v ...any) {
	log.SetOutput(os.Stderr)
	log.Fatalf(format, v...)
}

func reportFailures(result *ScriptResult) {
	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "%s⚠ %v%s\n", Warning, failure, Reset)
	}
}

func runShell(r *Roster, config *Config, mode string) {
	if mode == ModeTUI {
		if err := runBubbleTeaApp(r, config); err != nil {
			fatalf("Error running browser: %v", err)
		}
		return
	}
	if err := NewMenuShell(r, os.Stdin, os.Stdout).Run(); err != nil {
		fatalf("Error running menu: %v", err)
	}
}

func main() {
	InitializeColors()

	asciiLogo := `
██████╗  ██████╗ ███████╗████████╗███████╗██████╗
██╔══██╗██╔═══██╗██╔════╝╚══██╔══╝██╔════╝██╔══██╗
██████╔╝██║   ██║███████╗   ██║   █████╗  ██████╔╝
██╔══██╗██║   ██║╚════██║   ██║   ██╔══╝  ██╔══██╗
██║  ██║╚██████╔╝███████║   ██║   ███████╗██║  ██║
╚═╝  ╚═╝ ╚═════╝ ╚══════╝   ╚═╝   ╚══════╝╚═╝  ╚═╝
Student records kept in a balanced tree, keyed by roll number [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	opts := &options{}

	var cmdMenu = &cobra.Command{
		Use:   "menu",
		Short: "Start the numbered menu",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Menu lets you add, search, modify, delete and list students`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r, config := setup(opts)
			runShell(r, config, ModeMenu)
		},
	}

	var cmdTUI = &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen student browser",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `TUI opens a record list, a details pane and a command bar`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r, config := setup(opts)
			runShell(r, config, ModeTUI)
		},
	}

	var cmdRun = &cobra.Command{
		Use:   "run <script>",
		Short: "Execute a command script and print the roster",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run executes every command in the script, then prints all students`),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			r, _ := setup(opts)
			showProgress := !opts.verbose && isatty.IsTerminal(os.Stdout.Fd())
			result, err := r.RunScriptFile(args[0], os.Stdout, showProgress)
			if err != nil {
				fatalf("Error running script: %v", err)
			}
			r.WriteAll(os.Stdout)
			reportFailures(result)
			if len(result.Failures) > 0 {
				os.Exit(1)
			}
		},
	}

	var cmdChart = &cobra.Command{
		Use:   "chart",
		Short: "Draw a bar chart of total marks",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Chart draws one bar per student. Load students with --script`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			r, _ := setup(opts)
			if err := runChart(r); err != nil {
				fatalf("Error drawing chart: %v", err)
			}
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Roster usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the roster CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show Roster settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.roster.yaml, creating it with defaults if missing`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Roster version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "roster",
		Version: version,
		Long:    asciiLogo,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the configured shell when no subcommand is provided
			r, config := setup(opts)
			runShell(r, config, config.Shell.Mode)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.script, "script", "", "command script to load before the shell starts")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "log operations to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.verify, "verify", false, "check tree invariants after every change")

	rootCmd.AddCommand(cmdMenu, cmdTUI, cmdRun, cmdChart, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
