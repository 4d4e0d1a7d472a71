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
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownOp = errors.New("unknown operation")

type OpManager struct {
	strategies []OpStrategy
}

func NewOpManager() *OpManager {
	manager := &OpManager{}

	manager.RegisterStrategy(&InsertStrategy{})
	manager.RegisterStrategy(&RemoveStrategy{})
	manager.RegisterStrategy(&LookupStrategy{})
	manager.RegisterStrategy(&ListStrategy{})
	manager.RegisterStrategy(&ClearStrategy{})
	manager.RegisterStrategy(&StatsStrategy{})

	return manager
}

// RegisterStrategy adds a strategy, keeping the list in priority order.
func (om *OpManager) RegisterStrategy(strategy OpStrategy) {
	om.strategies = append(om.strategies, strategy)
	sort.SliceStable(om.strategies, func(i, j int) bool {
		return om.strategies[i].Priority() < om.strategies[j].Priority()
	})
}

// Apply runs the operation described by cmdParts, e.g. ["insert", "k", "v"].
func (om *OpManager) Apply(store Store, cmdParts []string) (string, error) {
	if len(cmdParts) == 0 {
		return "", fmt.Errorf("no operation provided")
	}

	cmd := NewCommand(cmdParts)
	for _, strategy := range om.strategies {
		if strategy.SupportsCommand(cmd.Name) {
			return strategy.Apply(store, cmd)
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOp, cmd.Name)
}
