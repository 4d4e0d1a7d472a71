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
	"strings"

	"github.com/cybrota/avlstore/ops"
	"github.com/mattn/go-shellwords"
	"github.com/schollz/progressbar/v3"
)

// ParseEntries reads data-file lines of the form `key value...`. Words are
// split like a shell would, so keys and values may be quoted. Blank lines and
// lines starting with '#' are skipped; a key without words after it maps to
// the empty string.
func ParseEntries(r io.Reader) ([]ops.Entry, error) {
	var entries []ops.Entry

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long values
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		words, skip, err := splitLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		if skip {
			continue
		}
		entries = append(entries, ops.Entry{
			Key:   words[0],
			Value: strings.Join(words[1:], " "),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// splitLine breaks a data or script line into shell words. skip is true for
// blank and comment lines. The shell operators ; & | < > end parsing, so an
// unquoted one is an error rather than a truncated line.
func splitLine(line string) (words []string, skip bool, err error) {
	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, true, nil
	}

	parser := shellwords.NewParser()
	words, err = parser.Parse(line)
	if err != nil {
		return nil, false, err
	}
	// Position counts runes
	if pos, runes := parser.Position, []rune(line); pos >= 0 && pos < len(runes) {
		return nil, false, fmt.Errorf("column %d: unquoted %q, quote the word containing it", indent+pos+1, runes[pos])
	}
	if len(words) == 0 {
		return nil, true, nil
	}
	return words, false, nil
}

// LoadFile inserts every entry of the data file at path into store and
// returns how many lines were applied.
func LoadFile(store *Store, path string, showProgress bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("data file %s not found", path)
		}
		return 0, err
	}
	defer file.Close()

	entries, err := ParseEntries(file)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", path, err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Loading entries..."),
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
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	for _, e := range entries {
		store.Put(e.Key, e.Value)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return len(entries), nil
}
