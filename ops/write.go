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

import "fmt"

// InsertStrategy handles `insert KEY [VALUE...]` and its alias `set`.
type InsertStrategy struct{}

func (s *InsertStrategy) SupportsCommand(name string) bool {
	return name == "insert" || name == "set"
}

func (s *InsertStrategy) Priority() int {
	return 1
}

func (s *InsertStrategy) Apply(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", fmt.Errorf("%s: missing key", cmd.Name)
	}
	store.Put(cmd.GetArg(0), cmd.Rest(1))
	return "ok", nil
}

// RemoveStrategy handles `remove KEY` and `delete KEY`. A missing key is not
// an error.
type RemoveStrategy struct{}

func (s *RemoveStrategy) SupportsCommand(name string) bool {
	return name == "remove" || name == "delete"
}

func (s *RemoveStrategy) Priority() int {
	return 1
}

func (s *RemoveStrategy) Apply(store Store, cmd *Command) (string, error) {
	if !cmd.HasArgs(1) {
		return "", fmt.Errorf("%s: missing key", cmd.Name)
	}
	if store.Delete(cmd.GetArg(0)) {
		return "removed", nil
	}
	return "absent", nil
}

type ClearStrategy struct{}

func (s *ClearStrategy) SupportsCommand(name string) bool {
	return name == "clear"
}

func (s *ClearStrategy) Priority() int {
	return 2
}

func (s *ClearStrategy) Apply(store Store, cmd *Command) (string, error) {
	store.Clear()
	return "cleared", nil
}
