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

package avl

import (
	"cmp"
	"fmt"
)

// Check verifies the search tree invariants: key ordering, parent and child
// links agreeing with each other, and the size counter matching the number
// of reachable entries. It returns an error wrapping ErrCorrupt.
func (t *base[K, V]) Check() error {
	if (t.root == nilNode) != (t.size == 0) {
		return fmt.Errorf("%w: root present=%t but size=%d", ErrCorrupt, t.root != nilNode, t.size)
	}
	if t.root == nilNode {
		return nil
	}
	if p := t.nodes[t.root].parent; p != nilNode {
		return fmt.Errorf("%w: root %v has a parent", ErrCorrupt, t.nodes[t.root].key)
	}

	count, err := t.checkOrder(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size is %d but %d entries are reachable", ErrCorrupt, t.size, count)
	}
	return nil
}

// checkOrder verifies that every key under id lies strictly between lo and
// hi (nil meaning unbounded) and returns the number of entries visited.
func (t *base[K, V]) checkOrder(id nodeID, lo, hi *K) (int, error) {
	if id == nilNode {
		return 0, nil
	}
	n := t.nodes[id]
	if lo != nil && cmp.Compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: key %v not above %v", ErrCorrupt, n.key, *lo)
	}
	if hi != nil && cmp.Compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: key %v not below %v", ErrCorrupt, n.key, *hi)
	}
	if n.left != nilNode && !t.isLeftChild(n.left) {
		return 0, fmt.Errorf("%w: left child of %v does not link back", ErrCorrupt, n.key)
	}
	if n.right != nilNode && !t.isRightChild(n.right) {
		return 0, fmt.Errorf("%w: right child of %v does not link back", ErrCorrupt, n.key)
	}

	lc, err := t.checkOrder(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	rc, err := t.checkOrder(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}
	return 1 + lc + rc, nil
}

// Check verifies the BST invariants plus the AVL ones: each cached height and
// balance matches the recomputed value and no balance exceeds one.
func (t *Tree[K, V]) Check() error {
	if err := t.base.Check(); err != nil {
		return err
	}
	_, err := t.checkBalance(t.root)
	return err
}

func (t *Tree[K, V]) checkBalance(id nodeID) (int32, error) {
	if id == nilNode {
		return -1, nil
	}
	n := t.nodes[id]
	lh, err := t.checkBalance(n.left)
	if err != nil {
		return 0, err
	}
	rh, err := t.checkBalance(n.right)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	switch {
	case n.height != h:
		return 0, fmt.Errorf("%w: %v caches height %d, actual %d", ErrCorrupt, n.key, n.height, h)
	case int32(n.balance) != rh-lh:
		return 0, fmt.Errorf("%w: %v caches balance %d, actual %d", ErrCorrupt, n.key, n.balance, rh-lh)
	case n.balance < -1 || n.balance > 1:
		return 0, fmt.Errorf("%w: %v is unbalanced (%d)", ErrCorrupt, n.key, n.balance)
	}
	return h, nil
}
