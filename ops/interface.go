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

import "strings"

// OpStrategy executes one family of script operations against a Store.
type OpStrategy interface {
	Apply(store Store, cmd *Command) (string, error)
	SupportsCommand(name string) bool
	Priority() int // Lower number = higher priority
}

// Store is the ordered key/value store the operations run against.
type Store interface {
	Put(key, value string)
	Delete(key string) bool
	Get(key string) (string, error)
	Find(key string) (string, bool)
	Entries() []Entry
	Reverse() []Entry
	Clear()
	Len() int
	Stats() Stats
	Check() error
}

// Entry is one key/value pair in iteration order.
type Entry struct {
	Key   string
	Value string
}

// Stats summarises the shape of the tree behind a Store.
type Stats struct {
	Size     int
	Height   int
	Balanced bool
}

type Command struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

func (c *Command) GetArg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// Rest joins the arguments from n onwards with single spaces.
func (c *Command) Rest(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[n:], " ")
}
