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
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/cybrota/avltree/avl"
	"github.com/spf13/cobra"
)

var version = "dev"

// commands carrying this annotation run without config or logging
const standaloneAnnotation = "standalone"

// app carries what every command needs once the root command has run its
// pre-run hook.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	config     *Config
	keyCache   *KeyFileCache
	log        *logger.L

	startLogging func(LoggingConfig) (func(), error)
	stopLogging  func()
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:          out,
		errOut:       errOut,
		startLogging: setupLogging,
	}
}

func (a *app) init() error {
	var (
		config *Config
		err    error
	)
	if a.configPath == "" {
		// settings needs the path even when the file does not exist yet
		a.configPath, _ = getConfigPath()
		config, err = LoadConfig()
	} else {
		config, err = loadConfigFrom(a.configPath)
	}
	if err != nil {
		return err
	}
	a.config = config

	stop, err := a.startLogging(a.config.Logging)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}
	a.stopLogging = stop
	a.log = logger.New("avltree")
	a.log.Infof("avltree %s starting, config %s", version, a.configPath)

	a.keyCache = NewKeyFileCache(a.config.CacheTTL(), a.config.CacheCleanup())
	return nil
}

func (a *app) close() {
	if a.stopLogging != nil {
		a.stopLogging()
		a.stopLogging = nil
	}
}

// newTree returns an empty tree whose rotations are logged and counted.
func (a *app) newTree() (*avl.Tree, *rotationCounter) {
	counter := &rotationCounter{}
	tree := avl.New(avl.WithObserver(fanout{newLoggingObserver(), counter}))
	return tree, counter
}

// collectKeys gathers keys from the arguments followed by the key file.
func (a *app) collectKeys(args []string, file string) ([]int, error) {
	keys, err := parseKeyArgs(args)
	if err != nil {
		return nil, err
	}
	if file != "" {
		fromFile, err := a.keyCache.Load(file)
		if err != nil {
			return nil, err
		}
		keys = append(keys, fromFile...)
	}
	return keys, nil
}

func (a *app) buildTree(args []string, file string, progress bool) (*avl.Tree, *rotationCounter, IngestReport, error) {
	keys, err := a.collectKeys(args, file)
	if err != nil {
		return nil, nil, IngestReport{}, err
	}
	tree, counter := a.newTree()
	report := NewIngester(a.config.Ingest, progress, a.errOut).Ingest(tree, keys)
	a.log.Infof("built tree: %d inserted, %d duplicates, %d rotations",
		report.Inserted, report.Duplicates, counter.left+counter.right)
	return tree, counter, report, nil
}

func newRootCmd(a *app) *cobra.Command {
	asciiLogo := fmt.Sprintf(`
   _   _  _ _    _
  /_\ | || | |  | |_ _ _ ___ ___
 / _ \| __ | |__|  _| '_/ -_) -_)
/_/ \_\_||_|____|\__|_| \___\___|
Self-balancing binary search tree workbench [Version: %s%s%s]
`, Green, version, Reset)

	var rootCmd = &cobra.Command{
		Use:           "avltree",
		Version:       version,
		Long:          asciiLogo,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[standaloneAnnotation]; ok {
				return nil
			}
			return a.init()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.SetErr(a.errOut)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default ~/.avltree.yaml)")

	var (
		keyFile  string
		order    string
		progress bool
		copyOut  bool
		markdown bool
		watch    bool
	)

	var cmdBuild = &cobra.Command{
		Use:   "build [keys...]",
		Short: "Insert keys and print a traversal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Build inserts the keys in order and prints the resulting traversal`),
		RunE: func(cmd *cobra.Command, args []string) error {
			traversal := a.config.DefaultOrder()
			if order != "" {
				var err error
				if traversal, err = avl.ParseOrder(order); err != nil {
					return err
				}
			}

			tree, _, report, err := a.buildTree(args, keyFile, progress)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "inserted %d, duplicates %d (bloom flagged %d)\n",
				report.Inserted, report.Duplicates, report.ProbableDuplicates)
			sequence := strings.TrimSpace(joinKeys(tree, traversal))
			fmt.Fprintf(a.out, "%s: %s\n", traversal, sequence)

			if copyOut {
				if err := clipboard.WriteAll(sequence); err != nil {
					fmt.Fprintf(a.errOut, "Failed to copy to clipboard: %v\n", err)
				} else {
					fmt.Fprintf(a.errOut, "📋 Copied %s%s%s traversal to clipboard.\n", Green, traversal, Reset)
				}
			}
			return nil
		},
	}
	cmdBuild.Flags().StringVarP(&keyFile, "file", "f", "", "read additional keys from a file")
	cmdBuild.Flags().StringVarP(&order, "order", "o", "", "traversal order: in, pre, post or level")
	cmdBuild.Flags().BoolVar(&progress, "progress", false, "show a progress bar while inserting")
	cmdBuild.Flags().BoolVar(&copyOut, "copy", false, "copy the traversal to the clipboard")

	var cmdShow = &cobra.Command{
		Use:   "show [keys...]",
		Short: "Draw the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, _, err := a.buildTree(args, keyFile, false)
			if err != nil {
				return err
			}
			text, err := renderTree(tree, NewStyles(a.config.Render), a.config.Render.ShowHeight)
			if err != nil {
				return err
			}
			_, err = io.WriteString(a.out, text)
			return err
		},
	}
	cmdShow.Flags().StringVarP(&keyFile, "file", "f", "", "read additional keys from a file")

	var cmdCheck = &cobra.Command{
		Use:   "check [keys...]",
		Short: "Verify the tree invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, _, _, err := a.buildTree(args, keyFile, false)
			if err != nil {
				return err
			}
			text, err := renderCheck(tree, NewStyles(a.config.Render))
			if _, werr := io.WriteString(a.out, text); err == nil {
				err = werr
			}
			return err
		},
	}
	cmdCheck.Flags().StringVarP(&keyFile, "file", "f", "", "read additional keys from a file")

	var cmdStats = &cobra.Command{
		Use:   "stats [keys...]",
		Short: "Print size, height and rotation counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, counter, _, err := a.buildTree(args, keyFile, false)
			if err != nil {
				return err
			}
			stats := collectStats(tree, counter)
			if markdown {
				fmt.Fprint(a.out, renderStatsMarkdown(stats))
				return nil
			}
			fmt.Fprint(a.out, renderStats(stats, NewStyles(a.config.Render)))
			return nil
		},
	}
	cmdStats.Flags().StringVarP(&keyFile, "file", "f", "", "read additional keys from a file")
	cmdStats.Flags().BoolVar(&markdown, "markdown", false, "render the report as markdown")

	var cmdReplay = &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Run an operation script",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Replay runs one tree operation per script line and stops at the first error`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := args[0]
			replay := func() error {
				tree, _ := a.newTree()
				return NewScriptRunner(tree, a.out, a.config, a.keyCache).RunFile(script)
			}

			err := replay()
			if !watch {
				return err
			}
			if err != nil {
				fmt.Fprintf(a.out, "%sError:%s %s\n", Red, Reset, err)
			}

			w, err := newFileWatcher(filepath.Dir(script), logger.New(FileWatcherLoggerPrefix))
			if err != nil {
				return err
			}
			defer w.Close()
			if err := w.Start(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			fmt.Fprintf(a.out, "👀 Watching %s, press Ctrl+C to stop\n", script)
			return replayOnChange(ctx, w.Events(), script, a.keyCache, replay, a.out)
		},
	}
	cmdReplay.Flags().BoolVarP(&watch, "watch", "w", false, "rerun when the script or a loaded key file changes")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display and manage avltree configuration settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.configPath == "" {
				return fmt.Errorf("cannot locate home directory for %s", configFileName)
			}
			return displaySettings(a.out, a.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:         "usage",
		Short:       "Print avltree usage guide",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, getHelpMessage())
			return nil
		},
	}

	var cmdVersion = &cobra.Command{
		Use:         "version",
		Short:       "Print avltree version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{standaloneAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, version)
			return nil
		},
	}

	rootCmd.AddCommand(cmdBuild, cmdShow, cmdCheck, cmdStats, cmdReplay, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

func main() {
	defer exitwithstatus.Handler()

	a := newApp(os.Stdout, os.Stderr)
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.close()
	if err != nil {
		exitwithstatus.Message("Error: %s\n", err)
	}
}
