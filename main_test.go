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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/avltree/avl"
)

var testLogDir string

func initTestLogger() error {
	return logger.Initialise(logger.Configuration{
		Directory: testLogDir,
		File:      "test.log",
		Size:      minLogSize,
		Count:     minLogCount,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})
}

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "avltree-test")
	if err != nil {
		panic(err)
	}
	testLogDir = dir
	if err := initTestLogger(); err != nil {
		panic(err)
	}

	code := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(code)
}

// releaseTestLogger stops the shared test logger so a test can start the
// real one. It is restarted when the test ends.
func releaseTestLogger(t *testing.T) {
	t.Helper()
	logger.Finalise()
	t.Cleanup(func() {
		if err := initTestLogger(); err != nil {
			panic(err)
		}
	})
}

const plainConfig = `
render:
  color: false
  show_height: false
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// runCLI executes the command line against a plain-output config and
// returns what was written to stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath := writeFile(t, t.TempDir(), "avltree.yaml", plainConfig)

	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.startLogging = func(LoggingConfig) (func(), error) { return func() {}, nil }

	cmd := newRootCmd(a)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	a.close()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"in-order", []string{"build", "30", "20", "10"}, "inserted 3, duplicates 0 (bloom flagged 0)\nin: 10 20 30\n"},
		{"pre-order", []string{"build", "--order", "pre", "10", "20", "30"}, "inserted 3, duplicates 0 (bloom flagged 0)\npre: 20 10 30\n"},
		{"comma list", []string{"build", "-o", "level", "4,2,6", "1"}, "inserted 4, duplicates 0 (bloom flagged 0)\nlevel: 4 2 6 1\n"},
		{"duplicates", []string{"build", "5", "5", "1"}, "inserted 2, duplicates 1 (bloom flagged 1)\nin: 1 5\n"},
		{"empty", []string{"build"}, "inserted 0, duplicates 0 (bloom flagged 0)\nin: \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runCLI(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("output = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFromFile(t *testing.T) {
	keys := writeFile(t, t.TempDir(), "keys.txt", "# sample\n40, 50\n60\n")
	got, err := runCLI(t, "build", "--file", keys, "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(got, "in: 30 40 50 60\n") {
		t.Errorf("output = %q", got)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := runCLI(t, "build", "1", "two"); err == nil || !strings.Contains(err.Error(), `invalid key "two"`) {
		t.Errorf("err = %v; want invalid key", err)
	}
	if _, err := runCLI(t, "build", "--order", "sideways", "1"); !errors.Is(err, avl.ErrUnknownOrder) {
		t.Errorf("err = %v; want ErrUnknownOrder", err)
	}
	if _, err := runCLI(t, "build", "--file", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing key file")
	}
}

func TestShowCommand(t *testing.T) {
	got, err := runCLI(t, "show", "10", "20", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "🌳 AVL tree: 3 keys, height 2\n" +
		"       /------+ 30\n" +
		"|------+ 20\n" +
		"       \\------+ 10\n"
	if got != want {
		t.Errorf("output = %q; want %q", got, want)
	}
}

func TestCheckCommand(t *testing.T) {
	got, err := runCLI(t, "check", "5", "3", "8", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "✓ ok: 4 keys, height 3\n" {
		t.Errorf("output = %q", got)
	}
}

func TestStatsCommand(t *testing.T) {
	got, err := runCLI(t, "stats", "10", "20", "30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"size       3\n",
		"height     2\n",
		"min        10\n",
		"max        30\n",
		"rotations  1 (left 1, right 0)\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output %q missing %q", got, want)
		}
	}
}

func TestReplayCommand(t *testing.T) {
	script := writeFile(t, t.TempDir(), "ops.txt", "insert 2 1 3\ntraverse post\n")
	got, err := runCLI(t, "replay", script)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "insert 2: inserted\ninsert 1: inserted\ninsert 3: inserted\npost: 1 3 2\n"
	if got != want {
		t.Errorf("output = %q; want %q", got, want)
	}

	if _, err := runCLI(t, "replay"); err == nil {
		t.Error("expected error without a script argument")
	}
}

func TestVersionCommand(t *testing.T) {
	got, err := runCLI(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != version+"\n" {
		t.Errorf("output = %q; want %q", got, version+"\n")
	}
}

func TestSettingsCommandCreatesConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "avltree.yaml")

	var out bytes.Buffer
	a := newApp(&out, &out)
	a.startLogging = func(LoggingConfig) (func(), error) { return func() {}, nil }
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"--config", configPath, "settings"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("config file not created: %v", err)
	}
	if !strings.Contains(out.String(), "(newly created)") {
		t.Errorf("output %q does not mention the new file", out.String())
	}
}

func TestLoggerSetupFailure(t *testing.T) {
	var out bytes.Buffer
	a := newApp(&out, &out)
	a.startLogging = func(LoggingConfig) (func(), error) { return nil, errors.New("no disk") }
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "build", "1"})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "logger setup failed: no disk") {
		t.Errorf("err = %v; want logger setup failure", err)
	}
}

func TestStandaloneCommandsSkipLogging(t *testing.T) {
	for _, name := range []string{"version", "usage"} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			a := newApp(&out, &out)
			a.startLogging = func(LoggingConfig) (func(), error) { return nil, errors.New("read-only log directory") }
			cmd := newRootCmd(a)
			cmd.SetArgs([]string{name})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Len() == 0 {
				t.Error("no output")
			}
		})
	}
}

func TestSetupLoggingDefaultConfig(t *testing.T) {
	releaseTestLogger(t)

	config := DefaultConfig().Logging
	config.Directory = filepath.Join(t.TempDir(), "log")
	stop, err := setupLogging(config)
	if err != nil {
		t.Fatalf("default logging config rejected: %v", err)
	}
	logger.New("test").Info("hello")
	stop()

	if _, err := os.Stat(filepath.Join(config.Directory, config.File)); err != nil {
		t.Errorf("log file not written: %v", err)
	}
}

func TestSetupLoggingClampsRotation(t *testing.T) {
	releaseTestLogger(t)

	stop, err := setupLogging(LoggingConfig{
		Directory: t.TempDir(),
		File:      "small.log",
		Size:      100,
		Count:     1,
		Level:     "info",
	})
	if err != nil {
		t.Fatalf("small rotation settings rejected: %v", err)
	}
	stop()

	if _, err := setupLogging(LoggingConfig{Directory: t.TempDir(), Level: "loud"}); err == nil {
		t.Error("expected error for an unknown level")
	}
}

func TestCommandsWithDefaultLogging(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, args := range [][]string{
		{"build", "10", "20", "30"},
		{"version"},
		{"settings"},
	} {
		t.Run(args[0], func(t *testing.T) {
			releaseTestLogger(t)

			var out, errOut bytes.Buffer
			a := newApp(&out, &errOut)
			cmd := newRootCmd(a)
			cmd.SetArgs(args)
			err := cmd.Execute()
			a.close()
			if err != nil {
				t.Fatalf("%v: %v", args, err)
			}
			if out.Len() == 0 {
				t.Errorf("%v: no output", args)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(home, ".avltree", "log", "avltree.log")); err != nil {
		t.Errorf("log file not written: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestCheckCommandWriteFailure(t *testing.T) {
	configPath := writeFile(t, t.TempDir(), "avltree.yaml", plainConfig)
	a := newApp(failingWriter{}, &bytes.Buffer{})
	a.startLogging = func(LoggingConfig) (func(), error) { return func() {}, nil }
	cmd := newRootCmd(a)
	cmd.SetArgs([]string{"--config", configPath, "check", "1", "2"})

	err := cmd.Execute()
	a.close()
	if err == nil || !strings.Contains(err.Error(), "closed pipe") {
		t.Errorf("err = %v; want write error", err)
	}
}
