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

package ops

import (
	"fmt"
	"strconv"
	"strings"
)

// LookupStrategy handles `get KEY`, which fails on a missing key, and
// `find KEY`, which reports `end` instead.
type LookupStrategy struct{}

func (s *LookupStrategy) SupportsCommand(name string) bool {
	return name == "get" || name == "find"
}

func (s *LookupStrategy) Priority() int {
	return 1
}

func (s *LookupStrategy) Apply(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", fmt.Errorf("%s: missing key", cmd.Name)
	}
	key := cmd.GetArg(0)

	if cmd.Name == "get" {
		return store.Get(key)
	}
	if value, ok := store.Find(key); ok {
		return fmt.Sprintf("%s = %s", key, value), nil
	}
	return "end", nil
}

// ListStrategy prints every entry, ascending for `list` and descending for
// `reverse`.
type ListStrategy struct{}

func (s *ListStrategy) SupportsCommand(name string) bool {
	return name == "list" || name == "reverse"
}

func (s *ListStrategy) Priority() int {
	return 3
}

func (s *ListStrategy) Apply(store Store, cmd *Command) (string, error) {
	if cmd.Name == "reverse" {
		return FormatEntries(store.Reverse()), nil
	}
	return FormatEntries(store.Entries()), nil
}

// FormatEntries renders entries one `key=value` per line.
func FormatEntries(entries []Entry) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Key)
		b.WriteByte('=')
		b.WriteString(e.Value)
	}
	return b.String()
}

// StatsStrategy answers questions about the tree itself.
type StatsStrategy struct{}

func (s *StatsStrategy) SupportsCommand(name string) bool {
	switch name {
	case "size", "empty", "height", "balanced", "check":
		return true
	}
	return false
}

func (s *StatsStrategy) Priority() int {
	return 4
}

func (s *StatsStrategy) Apply(store Store, cmd *Command) (string, error) {
	// Stats walks the whole tree, size and empty only need the counter
	switch cmd.Name {
	case "size":
		return strconv.Itoa(store.Len()), nil
	case "empty":
		return strconv.FormatBool(store.Len() == 0), nil
	case "height":
		return strconv.Itoa(store.Stats().Height), nil
	case "balanced":
		return strconv.FormatBool(store.Stats().Balanced), nil
	default:
		if err := store.Check(); err != nil {
			return "", err
		}
		return "ok", nil
	}
}
