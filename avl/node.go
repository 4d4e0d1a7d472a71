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

// nodeID addresses a node slot in the tree's arena.
type nodeID int32

// nilNode marks an absent parent or child. Slot 0 of the arena is reserved
// for it, which keeps the zero value of a tree empty and usable.
const nilNode nodeID = 0

type node[K any, V any] struct {
	key    K
	value  V
	parent nodeID
	left   nodeID
	right  nodeID

	// balance is height(right) - height(left). It is only kept current by the
	// AVL engine; the plain BST engine leaves it untouched.
	balance int8
	height  int32 // cached subtree height, a leaf has height 0
}

// alloc stores a fresh detached node and returns its id. Freed slots are
// reused before the arena grows.
func (t *base[K, V]) alloc(key K, value V) nodeID {
	n := node[K, V]{key: key, value: value}
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node[K, V]{})
	}
	if last := len(t.free) - 1; last >= 0 {
		id := t.free[last]
		t.free = t.free[:last]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

// release returns the slot to the free list. The slot is zeroed so the arena
// does not keep the key and value reachable.
func (t *base[K, V]) release(id nodeID) {
	t.nodes[id] = node[K, V]{}
	t.free = append(t.free, id)
}

func (t *base[K, V]) node(id nodeID) *node[K, V] {
	if id == nilNode {
		panic("avl: access to absent node")
	}
	return &t.nodes[id]
}

// The link accessors treat nilNode as a node without links so that walks may
// step off the tree without bounds checks at every call site.

func (t *base[K, V]) parentOf(id nodeID) nodeID {
	if id == nilNode {
		return nilNode
	}
	return t.nodes[id].parent
}

func (t *base[K, V]) leftOf(id nodeID) nodeID {
	if id == nilNode {
		return nilNode
	}
	return t.nodes[id].left
}

func (t *base[K, V]) rightOf(id nodeID) nodeID {
	if id == nilNode {
		return nilNode
	}
	return t.nodes[id].right
}

func (t *base[K, V]) isLeaf(id nodeID) bool {
	n := t.node(id)
	return n.left == nilNode && n.right == nilNode
}

func (t *base[K, V]) hasTwoChildren(id nodeID) bool {
	n := t.node(id)
	return n.left != nilNode && n.right != nilNode
}

func (t *base[K, V]) isLeftChild(id nodeID) bool {
	p := t.node(id).parent
	return p != nilNode && t.nodes[p].left == id
}

func (t *base[K, V]) isRightChild(id nodeID) bool {
	p := t.node(id).parent
	return p != nilNode && t.nodes[p].right == id
}

// replaceChild points the parent slot that held old at repl instead, or moves
// the root when old has no parent. repl's parent link is updated as well.
func (t *base[K, V]) replaceChild(parent, old, repl nodeID) {
	switch {
	case parent == nilNode:
		t.root = repl
	case t.nodes[parent].left == old:
		t.nodes[parent].left = repl
	default:
		t.nodes[parent].right = repl
	}
	if repl != nilNode {
		t.nodes[repl].parent = parent
	}
}
