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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// parseKeys reads integers separated by whitespace or commas. A '#' starts
// a comment that runs to the end of the line. name is used in errors.
func parseKeys(r io.Reader, name string) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long single-line key lists
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: invalid key %q", name, lineNo, field)
			}
			keys = append(keys, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return keys, nil
}

func readKeyFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key file not found: %s", path)
		}
		return nil, err
	}
	defer file.Close()

	return parseKeys(file, path)
}

// parseKeyArgs converts command line arguments to keys. Arguments may
// themselves be comma separated lists.
func parseKeyArgs(args []string) ([]int, error) {
	return parseKeys(strings.NewReader(strings.Join(args, " ")), "arguments")
}

// IngestReport summarises a bulk insert.
type IngestReport struct {
	Inserted   int
	Duplicates int
	// ProbableDuplicates counts keys the bloom filter flagged before the
	// tree was consulted. It is >= Duplicates; the excess is false positives.
	ProbableDuplicates int
}

type Ingester struct {
	bloomFilter  *bloom.BloomFilter
	showProgress bool
	progressOut  io.Writer
}

func NewIngester(config IngestConfig, showProgress bool, progressOut io.Writer) *Ingester {
	return &Ingester{
		bloomFilter:  bloom.New(config.BloomSize, config.BloomHashes),
		showProgress: showProgress,
		progressOut:  progressOut,
	}
}

// Ingest inserts keys into tree in order. Only the tree decides whether a
// key is a duplicate; the filter is a cheap pre-check reported alongside.
func (in *Ingester) Ingest(tree *avl.Tree, keys []int) IngestReport {
	var report IngestReport

	var bar *progressbar.ProgressBar
	if in.showProgress {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(in.progressOut),
			progressbar.OptionSetDescription("🌱 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(in.progressOut, "\n✅ Ingest completed!\n")
			}),
		)
	}

	for _, key := range keys {
		token := strconv.Itoa(key)
		if in.bloomFilter.TestString(token) {
			report.ProbableDuplicates++
		}
		in.bloomFilter.AddString(token)

		if tree.Insert(key) == avl.Inserted {
			report.Inserted++
		} else {
			report.Duplicates++
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return report
}
