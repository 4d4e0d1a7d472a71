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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlstore %s**

An in-memory ordered key/value store built on a self-balancing AVL tree.
Load a data file, look keys up, run operation scripts or browse the entries in order.

Built with Go %s

# 1. Data files
* One entry per line: `+"`key value...`"+`
* Words are split like a shell does, so quote keys or values containing spaces or any of ; & | < >
* Blank lines and lines starting with # are ignored; later lines overwrite earlier ones

# 2. Commands
* **get KEY** prints the value, fails when the key is absent
* **list** prints all entries in ascending order (--reverse for descending)
* **check** verifies the search order, links and AVL balance of the tree
* **exec SCRIPT** runs one operation per line: insert, remove, get, find, list, reverse, clear, size, empty, height, balanced, check
* **browse** opens an interactive view of the entries and the node behind each one
* **settings** shows (and creates) ~/.avlstore.yaml

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
