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

import "cmp"

// Tree is an AVL tree: a BST that restores |balance| <= 1 at every node after
// each Insert and Remove. The zero value is an empty tree ready to use.
type Tree[K cmp.Ordered, V any] struct {
	base[K, V]
}

// New returns an empty AVL tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert adds key with value, or overwrites the value of an existing key
// without touching the shape of the tree.
func (t *Tree[K, V]) Insert(key K, value V) {
	id, created := t.insert(key, value)
	if !created {
		return
	}
	t.retrace(t.parentOf(id))
}

// Remove deletes key and reports whether it was present.
func (t *Tree[K, V]) Remove(key K) bool {
	parent, ok := t.remove(key)
	if !ok {
		return false
	}
	t.retrace(parent)
	return true
}

// retrace walks from id up to the root refreshing cached heights and
// balances, rotating wherever a node has become unbalanced.
func (t *Tree[K, V]) retrace(id nodeID) {
	for id != nilNode {
		t.update(id)
		if b := t.nodes[id].balance; b < -1 || b > 1 {
			id = t.rebalance(id)
		}
		id = t.parentOf(id)
	}
}

func (t *Tree[K, V]) cachedHeight(id nodeID) int32 {
	if id == nilNode {
		return -1
	}
	return t.nodes[id].height
}

// update recomputes the height and balance of id from its children, which
// must already be current.
func (t *Tree[K, V]) update(id nodeID) {
	n := t.node(id)
	lh, rh := t.cachedHeight(n.left), t.cachedHeight(n.right)
	n.height = 1 + max(lh, rh)
	n.balance = int8(rh - lh)
}

// rebalance rotates the subtree rooted at r and returns its new root.
func (t *Tree[K, V]) rebalance(r nodeID) nodeID {
	switch b := t.nodes[r].balance; {
	case b < -1:
		l := t.leftOf(r)
		if t.nodes[l].balance > 0 {
			// left-right
			t.rotateLeft(l, t.rightOf(l))
		}
		t.rotateRight(r, t.leftOf(r))
	case b > 1:
		rt := t.rightOf(r)
		if t.nodes[rt].balance < 0 {
			// right-left
			t.rotateRight(rt, t.leftOf(rt))
		}
		t.rotateLeft(r, t.rightOf(r))
	default:
		return r
	}
	return t.parentOf(r)
}

// rotateLeft lifts n2, the right child of n1, into n1's place.
func (t *Tree[K, V]) rotateLeft(n1, n2 nodeID) {
	if n1 == nilNode || n2 == nilNode || t.rightOf(n1) != n2 {
		panic("avl: rotateLeft needs a node and its right child")
	}

	inner := t.leftOf(n2)
	t.replaceChild(t.parentOf(n1), n1, n2)
	t.nodes[n1].right = inner
	if inner != nilNode {
		t.nodes[inner].parent = n1
	}
	t.nodes[n2].left = n1
	t.nodes[n1].parent = n2

	t.update(n1)
	t.update(n2)
}

// rotateRight lifts n2, the left child of n1, into n1's place.
func (t *Tree[K, V]) rotateRight(n1, n2 nodeID) {
	if n1 == nilNode || n2 == nilNode || t.leftOf(n1) != n2 {
		panic("avl: rotateRight needs a node and its left child")
	}

	inner := t.rightOf(n2)
	t.replaceChild(t.parentOf(n1), n1, n2)
	t.nodes[n1].left = inner
	if inner != nilNode {
		t.nodes[inner].parent = n1
	}
	t.nodes[n2].right = n1
	t.nodes[n1].parent = n2

	t.update(n1)
	t.update(n2)
}
