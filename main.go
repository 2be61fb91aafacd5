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

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var (
		configPath string
		config     *Config
	)

	asciiLogo := `
 █████╗ ██╗   ██╗██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║██║   ██║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██║╚██╗ ██╔╝██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║ ╚████╔╝ ███████╗██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing binary search tree workbench [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdBuild = &cobra.Command{
		Use:   "build [keys...]",
		Short: "Build a tree from keys and print it",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Build inserts keys (integers or ranges like 1..10) in order, deletes any --delete keys and prints the tree"),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				more, err := readKeysFile(file)
				if err != nil {
					return err
				}
				keys = append(keys, more...)
			}
			deleteArgs, _ := cmd.Flags().GetStringSlice("delete")
			deletes, err := parseKeys(deleteArgs)
			if err != nil {
				return err
			}
			layout, _ := cmd.Flags().GetString("layout")

			session := NewSession(config, newJournal("build"))
			return buildTree(cmd.OutOrStdout(), session, keys, deletes, layout)
		},
	}
	cmdBuild.Flags().StringP("file", "f", "", "read more keys from a file")
	cmdBuild.Flags().StringSliceP("delete", "d", nil, "keys to delete after inserting")
	cmdBuild.Flags().StringP("layout", "l", "", "diagram layout: auto, pyramid or sideways")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Launches the interactive tree shell",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell opens a terminal UI to insert, delete and inspect keys with a live diagram"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := NewSession(config, newJournal("session"))
			return runBubbleTeaApp(session, config.Shell.Layout)
		},
	}

	var cmdScript = &cobra.Command{
		Use:   "script FILE",
		Short: "Run a file of shell commands",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Script runs shell commands line by line and stops at the first failure. Use - for stdin"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			session := NewSession(config, newJournal("session"))
			return session.RunScript(in, cmd.OutOrStdout())
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run the stress scenario and validate after every operation",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Stress inserts a descending then an ascending run of keys, deletes a range and validates the whole tree after every operation"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Stress
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed, _ = flags.GetInt("seed")
			}
			if flags.Changed("descending") {
				cfg.Descending, _ = flags.GetInt("descending")
			}
			if flags.Changed("ascending") {
				cfg.Ascending, _ = flags.GetInt("ascending")
			}
			if flags.Changed("delete") {
				from, to, err := parseRange(flags.Lookup("delete").Value.String())
				if err != nil {
					return err
				}
				cfg.DeleteFrom, cfg.DeleteTo = from, to
			}

			report, err := RunStress(cfg, cmd.ErrOrStderr(), newJournal("stress"))
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if dashboard, _ := flags.GetBool("dashboard"); dashboard {
				return runDashboard(cfg, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s%d operations validated%s: size %d, height %d, peak height %d\n",
				Green, report.Ops, Reset, report.FinalSize, report.FinalHeight, report.PeakHeight)
			return nil
		},
	}
	cmdStress.Flags().Int("seed", 0, "first key inserted")
	cmdStress.Flags().Int("descending", 0, "number of keys inserted below the seed")
	cmdStress.Flags().Int("ascending", 0, "number of keys inserted above the seed")
	cmdStress.Flags().String("delete", "", "range of keys to delete, like 1..49")
	cmdStress.Flags().Bool("dashboard", false, "plot the height per operation when done")

	var cmdExport = &cobra.Command{
		Use:   "export [keys...]",
		Short: "Write a snapshot of a tree as YAML or JSON",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Export builds a tree from keys and writes its structure with the cached height of every node"),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}
			if file, _ := cmd.Flags().GetString("file"); file != "" {
				more, err := readKeysFile(file)
				if err != nil {
					return err
				}
				keys = append(keys, more...)
			}
			format, _ := cmd.Flags().GetString("format")

			session := NewSession(config, newJournal("export"))
			session.InsertKeys(keys)
			return WriteSnapshot(cmd.OutOrStdout(), TakeSnapshot(session.ID(), session.Tree()), format)
		},
	}
	cmdExport.Flags().StringP("file", "f", "", "read more keys from a file")
	cmdExport.Flags().String("format", FormatYAML, "snapshot format: yaml or json")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the avltree CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show avltree configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Settings prints the configuration file, creating it with defaults when missing"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Long:          asciiLogo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if configPath != "" {
				config, err = LoadConfigFrom(configPath)
			} else {
				config, err = LoadConfig()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s⚠️  %v. Using default settings.%s\n", Warning, err, Reset)
			}
			if err := setupLogging(config.Log); err != nil {
				fmt.Fprintf(os.Stderr, "%s⚠️  %v. Continuing without a log file.%s\n", Warning, err, Reset)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the shell when no subcommand is provided
			session := NewSession(config, newJournal("session"))
			return runBubbleTeaApp(session, config.Shell.Layout)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.avltree.yaml)")
	rootCmd.AddCommand(cmdBuild, cmdShell, cmdScript, cmdStress, cmdExport, cmdUsage, cmdSettings, cmdVersion)

	err := rootCmd.Execute()
	finaliseLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s❌ %v%s\n", Error, err, Reset)
		os.Exit(1)
	}
}

// buildTree applies inserts then deletes and prints the result.
func buildTree(w io.Writer, session *Session, inserts, deletes []int, layout string) error {
	added := session.InsertKeys(inserts)
	removed := session.DeleteKeys(deletes)
	if layout == "" {
		layout = session.layout
	}

	diagram, err := session.Render(layout, session.width)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, diagram)
	tree := session.Tree()
	fmt.Fprintf(w, "\nkeys %d (inserted %d, deleted %d), height %d\n", tree.Len(), added, removed, tree.Height())
	return nil
}

// parseRange reads "a..b" or a single key as a one-key range, lowest key
// first. Only the endpoints are parsed, so the range may be of any size.
func parseRange(arg string) (int, int, error) {
	from, to, err := parseBounds(arg)
	if err != nil {
		return 0, 0, err
	}
	return min(from, to), max(from, to), nil
}
