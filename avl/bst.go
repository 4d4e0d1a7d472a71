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

// base holds the arena and every operation that does not rebalance. BST and
// Tree embed it and add their own Insert and Remove.
type base[K cmp.Ordered, V any] struct {
	nodes []node[K, V]
	free  []nodeID
	root  nodeID
	size  int
}

// BST is an unbalanced binary search tree mapping ordered keys to values.
// The zero value is an empty tree ready to use.
//
// Nodes are kept in an arena owned by the tree. Parent links are plain
// indexes used for traversal only. A BST is not safe for concurrent use.
type BST[K cmp.Ordered, V any] struct {
	base[K, V]
}

// NewBST returns an empty unbalanced tree.
func NewBST[K cmp.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

// Len returns the number of entries in the tree.
func (t *base[K, V]) Len() int { return t.size }

// Empty reports whether the tree holds no entries.
func (t *base[K, V]) Empty() bool { return t.root == nilNode }

// Insert adds key with value. An existing key has its value overwritten in
// place; the shape of the tree and its size are left unchanged.
func (t *BST[K, V]) Insert(key K, value V) {
	t.insert(key, value)
}

// insert returns the node holding key and whether it was newly created.
func (t *base[K, V]) insert(key K, value V) (nodeID, bool) {
	if t.root == nilNode {
		t.root = t.alloc(key, value)
		t.size = 1
		return t.root, true
	}

	cur := t.root
	for {
		c := cmp.Compare(key, t.nodes[cur].key)
		if c == 0 {
			t.nodes[cur].value = value
			return cur, false
		}

		next := t.nodes[cur].right
		if c < 0 {
			next = t.nodes[cur].left
		}
		if next != nilNode {
			cur = next
			continue
		}

		// alloc may grow the arena, so no node pointers are held across it
		id := t.alloc(key, value)
		t.nodes[id].parent = cur
		if c < 0 {
			t.nodes[cur].left = id
		} else {
			t.nodes[cur].right = id
		}
		t.size++
		return id, true
	}
}

func (t *base[K, V]) find(key K) nodeID {
	cur := t.root
	for cur != nilNode {
		c := cmp.Compare(key, t.nodes[cur].key)
		switch {
		case c < 0:
			cur = t.nodes[cur].left
		case c > 0:
			cur = t.nodes[cur].right
		default:
			return cur
		}
	}
	return nilNode
}

// Get returns the value stored under key.
func (t *base[K, V]) Get(key K) (V, bool) {
	id := t.find(key)
	if id == nilNode {
		var zero V
		return zero, false
	}
	return t.nodes[id].value, true
}

// At returns a pointer to the value stored under key, or an error wrapping
// ErrKeyNotFound. Writes through the pointer are visible to later lookups.
// The pointer must not be used after the next Insert, Remove or Clear.
func (t *base[K, V]) At(key K) (*V, error) {
	id := t.find(key)
	if id == nilNode {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return &t.nodes[id].value, nil
}

// Remove deletes key from the tree and reports whether it was present.
func (t *BST[K, V]) Remove(key K) bool {
	_, ok := t.remove(key)
	return ok
}

// remove returns the parent of the position the removed node was spliced
// out of, which is where any rebalancing has to start.
func (t *base[K, V]) remove(key K) (nodeID, bool) {
	id := t.find(key)
	if id == nilNode {
		return nilNode, false
	}
	return t.removeNode(id), true
}

func (t *base[K, V]) removeNode(id nodeID) nodeID {
	if t.hasTwoChildren(id) {
		// Always the predecessor. After the swap id sits where the
		// predecessor was and has no right child.
		t.nodeSwap(id, t.predecessor(id))
		return t.removeNode(id)
	}

	n := t.nodes[id]
	switch {
	case t.isLeaf(id):
		t.replaceChild(n.parent, id, nilNode)
	case n.left != nilNode:
		t.replaceChild(n.parent, id, n.left)
	default:
		t.replaceChild(n.parent, id, n.right)
	}
	t.release(id)
	t.size--
	return n.parent
}

// Clear removes every entry, smallest key first.
func (t *base[K, V]) Clear() {
	for t.root != nilNode {
		t.removeNode(t.leftmost(t.root))
	}
	t.nodes = t.nodes[:0]
	t.free = t.free[:0]
}

func (t *base[K, V]) leftmost(id nodeID) nodeID {
	for t.nodes[id].left != nilNode {
		id = t.nodes[id].left
	}
	return id
}

func (t *base[K, V]) rightmost(id nodeID) nodeID {
	for t.nodes[id].right != nilNode {
		id = t.nodes[id].right
	}
	return id
}

// predecessor returns the node with the next lower key, or nilNode when id
// holds the minimum.
func (t *base[K, V]) predecessor(id nodeID) nodeID {
	if id == nilNode {
		return nilNode
	}
	if l := t.nodes[id].left; l != nilNode {
		return t.rightmost(l)
	}
	for p := t.nodes[id].parent; p != nilNode; id, p = p, t.nodes[p].parent {
		if t.nodes[p].right == id {
			return p
		}
	}
	return nilNode
}

// successor returns the node with the next higher key, or nilNode when id
// holds the maximum.
func (t *base[K, V]) successor(id nodeID) nodeID {
	if id == nilNode {
		return nilNode
	}
	if r := t.nodes[id].right; r != nilNode {
		return t.leftmost(r)
	}
	for p := t.nodes[id].parent; p != nilNode; id, p = p, t.nodes[p].parent {
		if t.nodes[p].left == id {
			return p
		}
	}
	return nilNode
}

// Height returns the height of the tree: -1 when empty, 0 for a single node.
func (t *base[K, V]) Height() int {
	return t.height(t.root)
}

// height is recomputed on every call, O(size of the subtree).
func (t *base[K, V]) height(id nodeID) int {
	if id == nilNode {
		return -1
	}
	return 1 + max(t.height(t.nodes[id].left), t.height(t.nodes[id].right))
}

// IsBalanced reports whether the heights of the two subtrees of every node
// differ by at most one.
func (t *base[K, V]) IsBalanced() bool {
	_, ok := t.balancedHeight(t.root)
	return ok
}

func (t *base[K, V]) balancedHeight(id nodeID) (int, bool) {
	if id == nilNode {
		return -1, true
	}
	lh, lok := t.balancedHeight(t.nodes[id].left)
	rh, rok := t.balancedHeight(t.nodes[id].right)
	d := rh - lh
	return 1 + max(lh, rh), lok && rok && d >= -1 && d <= 1
}

// nodeSwap exchanges the positions of n1 and n2 in the tree. Keys and values
// stay with their nodes; links, root identity and the positional balance and
// height data move. Either node may be the direct parent of the other.
func (t *base[K, V]) nodeSwap(n1, n2 nodeID) {
	if n1 == n2 || n1 == nilNode || n2 == nilNode {
		return
	}

	a, b := t.nodes[n1], t.nodes[n2]
	n1IsLeft := a.parent != nilNode && t.nodes[a.parent].left == n1
	n2IsLeft := b.parent != nilNode && t.nodes[b.parent].left == n2

	p1, p2 := &t.nodes[n1], &t.nodes[n2]
	p1.parent, p2.parent = b.parent, a.parent
	p1.left, p2.left = b.left, a.left
	p1.right, p2.right = b.right, a.right
	p1.balance, p2.balance = b.balance, a.balance
	p1.height, p2.height = b.height, a.height

	switch {
	case a.right == n2:
		p2.right = n1
		p1.parent = n2
	case b.right == n1:
		p1.right = n2
		p2.parent = n1
	case a.left == n2:
		p2.left = n1
		p1.parent = n2
	case b.left == n1:
		p1.left = n2
		p2.parent = n1
	}

	if a.parent != nilNode && a.parent != n2 {
		if n1IsLeft {
			t.nodes[a.parent].left = n2
		} else {
			t.nodes[a.parent].right = n2
		}
	}
	if a.left != nilNode && a.left != n2 {
		t.nodes[a.left].parent = n2
	}
	if a.right != nilNode && a.right != n2 {
		t.nodes[a.right].parent = n2
	}

	if b.parent != nilNode && b.parent != n1 {
		if n2IsLeft {
			t.nodes[b.parent].left = n1
		} else {
			t.nodes[b.parent].right = n1
		}
	}
	if b.left != nilNode && b.left != n1 {
		t.nodes[b.left].parent = n1
	}
	if b.right != nilNode && b.right != n1 {
		t.nodes[b.right].parent = n1
	}

	switch t.root {
	case n1:
		t.root = n2
	case n2:
		t.root = n1
	}
}
