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
	"iter"
)

// Iterator is a position in a tree: either an entry or the past-the-end
// position. Iterators are comparable, so `it == t.End()` tests for the end.
//
// An iterator is invalidated when the entry it points at is removed.
type Iterator[K cmp.Ordered, V any] struct {
	tree *base[K, V]
	id   nodeID
}

// Begin returns an iterator at the smallest key, or End for an empty tree.
func (t *base[K, V]) Begin() Iterator[K, V] {
	if t.root == nilNode {
		return t.End()
	}
	return Iterator[K, V]{tree: t, id: t.leftmost(t.root)}
}

// Last returns an iterator at the largest key, or End for an empty tree.
func (t *base[K, V]) Last() Iterator[K, V] {
	if t.root == nilNode {
		return t.End()
	}
	return Iterator[K, V]{tree: t, id: t.rightmost(t.root)}
}

// End returns the past-the-end iterator.
func (t *base[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: t, id: nilNode}
}

// Root returns an iterator at the root entry, for read-only walks of the
// tree's shape.
func (t *base[K, V]) Root() Iterator[K, V] {
	return Iterator[K, V]{tree: t, id: t.root}
}

// Find returns an iterator at key, or End when key is absent.
func (t *base[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: t, id: t.find(key)}
}

// Valid reports whether the iterator points at an entry.
func (it Iterator[K, V]) Valid() bool { return it.id != nilNode }

// Key returns the key at the iterator. It panics at End.
func (it Iterator[K, V]) Key() K { return it.tree.node(it.id).key }

// Value returns the value at the iterator. It panics at End.
func (it Iterator[K, V]) Value() V { return it.tree.node(it.id).value }

// Next advances to the next larger key. Advancing past the largest key
// yields End; End stays End.
func (it *Iterator[K, V]) Next() {
	it.id = it.tree.successor(it.id)
}

// Prev moves to the next smaller key, or End before the smallest.
func (it *Iterator[K, V]) Prev() {
	it.id = it.tree.predecessor(it.id)
}

// Parent returns an iterator at the entry's parent node, End at the root.
func (it Iterator[K, V]) Parent() Iterator[K, V] {
	return Iterator[K, V]{tree: it.tree, id: it.tree.parentOf(it.id)}
}

// Left returns an iterator at the left child, End when there is none.
func (it Iterator[K, V]) Left() Iterator[K, V] {
	return Iterator[K, V]{tree: it.tree, id: it.tree.leftOf(it.id)}
}

// Right returns an iterator at the right child, End when there is none.
func (it Iterator[K, V]) Right() Iterator[K, V] {
	return Iterator[K, V]{tree: it.tree, id: it.tree.rightOf(it.id)}
}

// Height returns the height of the subtree rooted at the iterator, -1 at End.
func (it Iterator[K, V]) Height() int {
	return it.tree.height(it.id)
}

// Balance returns height(right) - height(left) for the entry's subtree.
func (it Iterator[K, V]) Balance() int {
	if it.id == nilNode {
		return 0
	}
	n := it.tree.nodes[it.id]
	return it.tree.height(n.right) - it.tree.height(n.left)
}

// All yields the entries in ascending key order.
func (t *base[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Backward yields the entries in descending key order.
func (t *base[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Last(); it.Valid(); it.Prev() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns the keys in ascending order.
func (t *base[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
