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
	"strings"

	"github.com/cybrota/avlstore/ops"
)

// RunScript applies every operation line read from r to store and writes
// each non-empty result to w. It stops at the first failing line unless
// keepGoing is set, in which case failures are reported inline and counted.
func RunScript(store ops.Store, manager *ops.OpManager, r io.Reader, w io.Writer, keepGoing bool) error {
	entries, err := readScript(r)
	if err != nil {
		return err
	}

	failed := 0
	for _, line := range entries {
		out, err := manager.Apply(store, line.words)
		if err != nil {
			if !keepGoing {
				return fmt.Errorf("line %d: %w", line.number, err)
			}
			fmt.Fprintf(w, "line %d: %v\n", line.number, err)
			failed++
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed", failed, len(entries))
	}
	return nil
}

type scriptLine struct {
	number int
	words  []string
}

func readScript(r io.Reader) ([]scriptLine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var lines []scriptLine
	for i, text := range strings.Split(string(data), "\n") {
		words, skip, err := splitLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", i+1, err)
		}
		if !skip {
			lines = append(lines, scriptLine{number: i + 1, words: words})
		}
	}
	return lines, nil
}
