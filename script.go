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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/cybrota/avltree/avl"
	"github.com/mattn/go-shellwords"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrBadArguments     = errors.New("bad arguments")
)

// ScriptRunner replays operation scripts against a single tree, one
// operation per line.
type ScriptRunner struct {
	tree       *avl.Tree
	out        io.Writer
	cache      *KeyFileCache
	ingest     IngestConfig
	styles     *Styles
	showHeight bool
	order      avl.Order
	baseDir    string
	log        *logger.L
}

type operation struct {
	minArgs, maxArgs int
	run              func(s *ScriptRunner, args []string) error
}

var operations map[string]operation

func init() {
	operations = map[string]operation{
		"insert":   {1, -1, (*ScriptRunner).opInsert},
		"delete":   {1, -1, (*ScriptRunner).opDelete},
		"contains": {1, -1, (*ScriptRunner).opContains},
		"traverse": {0, 1, (*ScriptRunner).opTraverse},
		"height":   {0, 0, (*ScriptRunner).opHeight},
		"size":     {0, 0, (*ScriptRunner).opSize},
		"min":      {0, 0, (*ScriptRunner).opMin},
		"max":      {0, 0, (*ScriptRunner).opMax},
		"rank":     {1, 1, (*ScriptRunner).opRank},
		"select":   {1, 1, (*ScriptRunner).opSelect},
		"levels":   {0, 0, (*ScriptRunner).opLevels},
		"show":     {0, 0, (*ScriptRunner).opShow},
		"check":    {0, 0, (*ScriptRunner).opCheck},
		"load":     {1, 1, (*ScriptRunner).opLoad},
		"clear":    {0, 0, (*ScriptRunner).opClear},
	}
}

func NewScriptRunner(tree *avl.Tree, out io.Writer, config *Config, keyCache *KeyFileCache) *ScriptRunner {
	return &ScriptRunner{
		tree:       tree,
		out:        out,
		cache:      keyCache,
		ingest:     config.Ingest,
		styles:     NewStyles(config.Render),
		showHeight: config.Render.ShowHeight,
		order:      config.DefaultOrder(),
		baseDir:    ".",
		log:        logger.New("script"),
	}
}

// RunFile replays the script at path. Relative load paths inside the script
// resolve against the script's directory.
func (s *ScriptRunner) RunFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	s.baseDir = filepath.Dir(path)
	return s.Run(file, path)
}

// Run executes every line of r and stops at the first failing line. The
// error names the script and line number.
func (s *ScriptRunner) Run(r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.Exec(scanner.Text()); err != nil {
			s.log.Errorf("%s:%d: %s", name, lineNo, err)
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	s.log.Infof("%s: replayed %d lines, tree size %d", name, lineNo, s.tree.Size())
	return nil
}

// Exec runs a single script line. Blank lines and comments do nothing.
func (s *ScriptRunner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	words, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadArguments, err)
	}
	if len(words) == 0 {
		return nil
	}

	name, args := strings.ToLower(words[0]), words[1:]
	op, ok := operations[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, words[0])
	}
	if len(args) < op.minArgs || (op.maxArgs >= 0 && len(args) > op.maxArgs) {
		return fmt.Errorf("%w: %s takes %s", ErrBadArguments, name, arity(op))
	}
	s.log.Tracef("exec: %s %v", name, args)
	return op.run(s, args)
}

func arity(op operation) string {
	switch {
	case op.maxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", op.minArgs)
	case op.minArgs == op.maxArgs:
		return fmt.Sprintf("%d argument(s)", op.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", op.minArgs, op.maxArgs)
	}
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrBadArguments, arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func (s *ScriptRunner) opInsert(args []string) error {
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(s.out, "insert %d: %s\n", k, s.tree.Insert(k))
	}
	return nil
}

func (s *ScriptRunner) opDelete(args []string) error {
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(s.out, "delete %d: %s\n", k, s.tree.Delete(k))
	}
	return nil
}

func (s *ScriptRunner) opContains(args []string) error {
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	for _, k := range keys {
		fmt.Fprintf(s.out, "contains %d: %t\n", k, s.tree.Contains(k))
	}
	return nil
}

func (s *ScriptRunner) opTraverse(args []string) error {
	order := s.order
	if len(args) == 1 {
		var err error
		if order, err = avl.ParseOrder(args[0]); err != nil {
			return fmt.Errorf("%w: %s", ErrBadArguments, err)
		}
	}
	fmt.Fprintf(s.out, "%s:%s\n", order, joinKeys(s.tree, order))
	return nil
}

// joinKeys renders a traversal as " k1 k2 ...", empty for an empty tree.
func joinKeys(tree *avl.Tree, order avl.Order) string {
	var b strings.Builder
	for k := range tree.Traverse(order) {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(k))
	}
	return b.String()
}

func (s *ScriptRunner) opHeight([]string) error {
	fmt.Fprintf(s.out, "height: %d\n", s.tree.Height())
	return nil
}

func (s *ScriptRunner) opSize([]string) error {
	fmt.Fprintf(s.out, "size: %d\n", s.tree.Size())
	return nil
}

func (s *ScriptRunner) opMin([]string) error {
	if k, ok := s.tree.Min(); ok {
		fmt.Fprintf(s.out, "min: %d\n", k)
	} else {
		fmt.Fprintf(s.out, "min: (empty)\n")
	}
	return nil
}

func (s *ScriptRunner) opMax([]string) error {
	if k, ok := s.tree.Max(); ok {
		fmt.Fprintf(s.out, "max: %d\n", k)
	} else {
		fmt.Fprintf(s.out, "max: (empty)\n")
	}
	return nil
}

func (s *ScriptRunner) opRank(args []string) error {
	keys, err := parseInts(args)
	if err != nil {
		return err
	}
	if i, ok := s.tree.Rank(keys[0]); ok {
		fmt.Fprintf(s.out, "rank %d: %d\n", keys[0], i)
	} else {
		fmt.Fprintf(s.out, "rank %d: %s\n", keys[0], avl.NotFound)
	}
	return nil
}

func (s *ScriptRunner) opSelect(args []string) error {
	idx, err := parseInts(args)
	if err != nil {
		return err
	}
	k, err := s.tree.Select(idx[0])
	if err != nil {
		// out of range is an answer, not a script error
		fmt.Fprintf(s.out, "select %d: out of range\n", idx[0])
		return nil
	}
	fmt.Fprintf(s.out, "select %d: %d\n", idx[0], k)
	return nil
}

func (s *ScriptRunner) opLevels([]string) error {
	for depth, level := range s.tree.Levels() {
		fmt.Fprintf(s.out, "level %d:", depth)
		for _, k := range level {
			fmt.Fprintf(s.out, " %d", k)
		}
		fmt.Fprintln(s.out)
	}
	return nil
}

func (s *ScriptRunner) opShow([]string) error {
	text, err := renderTree(s.tree, s.styles, s.showHeight)
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.out, text)
	return err
}

func (s *ScriptRunner) opCheck([]string) error {
	text, err := renderCheck(s.tree, s.styles)
	if _, werr := io.WriteString(s.out, text); err == nil {
		err = werr
	}
	return err
}

func (s *ScriptRunner) opLoad(args []string) error {
	path := args[0]
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}
	keys, err := s.cache.Load(path)
	if err != nil {
		return err
	}
	report := NewIngester(s.ingest, false, io.Discard).Ingest(s.tree, keys)
	fmt.Fprintf(s.out, "load %s: %d inserted, %d duplicates\n", args[0], report.Inserted, report.Duplicates)
	return nil
}

func (s *ScriptRunner) opClear([]string) error {
	s.tree.Clear()
	fmt.Fprintln(s.out, "clear")
	return nil
}
