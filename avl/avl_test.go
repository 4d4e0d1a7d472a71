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
	"errors"
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedRoot  int
	ExpectedOrder []int // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Right-Right Single Rotation",
			KeysToInsert:  []int{0, 1, 2},
			ExpectedRoot:  1,
			ExpectedOrder: []int{0, 1, 2},
		},
		{
			Name:          "Left-Left Single Rotation",
			KeysToInsert:  []int{3, 2, 1},
			ExpectedRoot:  2,
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Left-Right Double Rotation",
			KeysToInsert:  []int{3, 1, 2},
			ExpectedRoot:  2,
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Right-Left Double Rotation",
			KeysToInsert:  []int{1, 3, 2},
			ExpectedRoot:  2,
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			InitialKeys:   []int{2, 1, 3, 4},
			KeysToDelete:  []int{1},
			ExpectedRoot:  3,
			ExpectedOrder: []int{2, 3, 4},
		},
		{
			Name:          "Deletion with Double Rotation",
			InitialKeys:   []int{5, 2, 8, 6},
			KeysToDelete:  []int{2},
			ExpectedRoot:  6,
			ExpectedOrder: []int{5, 6, 8},
		},
		{
			Name:          "Deletion with Evenly Balanced Child",
			InitialKeys:   []int{5, 3, 8, 7, 9},
			KeysToDelete:  []int{3},
			ExpectedRoot:  8,
			ExpectedOrder: []int{5, 7, 8, 9},
		},
		{
			Name:          "Two-Child Removal Takes Predecessor",
			InitialKeys:   []int{5, 3, 8, 2, 4, 7, 9},
			KeysToDelete:  []int{5},
			ExpectedRoot:  4,
			ExpectedOrder: []int{2, 3, 4, 7, 8, 9},
		},
		{
			Name:          "Removing Absent Key",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{42},
			ExpectedRoot:  2,
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []int{40, 20},
			KeysToInsert:  []int{50, 10, 30, 25},
			KeysToDelete:  []int{20, 40},
			ExpectedRoot:  30,
			ExpectedOrder: []int{10, 25, 30, 50},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int, string]()
			for _, key := range tc.InitialKeys {
				tree.Insert(key, "")
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(key, "")
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}

			if err := tree.Check(); err != nil {
				t.Fatalf("Check() = %v", err)
			}
			if got := tree.Root().Key(); got != tc.ExpectedRoot {
				t.Errorf("root = %d; want %d", got, tc.ExpectedRoot)
			}
			if got := tree.Keys(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("in-order keys = %v; want %v", got, tc.ExpectedOrder)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
		})
	}
}

func TestInsertTriggersLeftRotationAtRoot(t *testing.T) {
	tree := New[uint16, uint16]()
	tree.Insert(0, 9)
	tree.Insert(1, 8)
	tree.Insert(2, 159)

	root := tree.Root()
	if root.Key() != 1 || root.Left().Key() != 0 || root.Right().Key() != 2 {
		t.Fatalf("shape = %d(%d, %d); want 1(0, 2)", root.Key(), root.Left().Key(), root.Right().Key())
	}
	if root.Value() != 8 || root.Left().Value() != 9 || root.Right().Value() != 159 {
		t.Errorf("values moved during rotation")
	}
	if !tree.IsBalanced() {
		t.Errorf("IsBalanced() = false; want true")
	}
	if root.Parent().Valid() {
		t.Errorf("root has a parent after rotation")
	}
}

func TestOverwriteKeepsShape(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k, "old")
	}
	before := tree.Root().Key()
	height := tree.Height()

	tree.Insert(3, "new")

	if tree.Len() != 7 {
		t.Errorf("Len() = %d; want 7", tree.Len())
	}
	if tree.Root().Key() != before || tree.Height() != height {
		t.Errorf("overwrite changed the shape")
	}
	if v, ok := tree.Get(3); !ok || v != "new" {
		t.Errorf("Get(3) = %q, %t; want \"new\", true", v, ok)
	}
	if v, _ := tree.Get(2); v != "old" {
		t.Errorf("Get(2) = %q; want \"old\"", v)
	}
}

func TestAtMissingAndPresent(t *testing.T) {
	tree := New[string, int]()
	tree.Insert("a", 1)
	tree.Insert("b", 2)

	if _, err := tree.At("zzz"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("At(missing) error = %v; want ErrKeyNotFound", err)
	}

	v, err := tree.At("b")
	if err != nil {
		t.Fatalf("At(b) error = %v", err)
	}
	if *v != 2 {
		t.Errorf("At(b) = %d; want 2", *v)
	}
	*v = 20
	if got := tree.Find("b").Value(); got != 20 {
		t.Errorf("Find(b) after write = %d; want 20", got)
	}
}

func TestClearEmptiesTree(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i, i*i)
	}
	tree.Clear()

	if !tree.Empty() || tree.Len() != 0 {
		t.Errorf("after Clear: Empty()=%t Len()=%d", tree.Empty(), tree.Len())
	}
	if tree.Begin() != tree.End() {
		t.Errorf("Begin() != End() on a cleared tree")
	}
	if keys := tree.Keys(); len(keys) != 0 {
		t.Errorf("Keys() = %v; want none", keys)
	}
	if err := tree.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}

	// the tree is reusable
	tree.Insert(7, 49)
	if v, ok := tree.Get(7); !ok || v != 49 {
		t.Errorf("Get(7) after reuse = %d, %t", v, ok)
	}
}

func TestSingleNodeTree(t *testing.T) {
	var tree Tree[int, string]
	tree.Insert(1, "one")

	if !tree.IsBalanced() {
		t.Errorf("IsBalanced() = false for a single node")
	}
	if tree.Height() != 0 {
		t.Errorf("Height() = %d; want 0", tree.Height())
	}
	if !tree.Remove(1) {
		t.Fatalf("Remove(1) = false")
	}
	if !tree.Empty() || tree.Len() != 0 {
		t.Errorf("tree not empty after removing its only key")
	}
	if tree.Height() != -1 {
		t.Errorf("Height() = %d; want -1", tree.Height())
	}
	if tree.Remove(1) {
		t.Errorf("second Remove(1) = true")
	}
}

func TestRotationPreconditions(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(2, 0)
	tree.Insert(1, 0)

	defer func() {
		if recover() == nil {
			t.Errorf("rotateLeft with a left child did not panic")
		}
	}()
	root := tree.root
	tree.rotateLeft(root, tree.leftOf(root))
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New[int, int]()
	model := map[int]int{}

	for i := 0; i < 4000; i++ {
		key := rng.Intn(500)
		if rng.Intn(3) == 0 {
			_, present := model[key]
			if got := tree.Remove(key); got != present {
				t.Fatalf("op %d: Remove(%d) = %t; want %t", i, key, got, present)
			}
			delete(model, key)
		} else {
			tree.Insert(key, i)
			model[key] = i
		}

		if err := tree.Check(); err != nil {
			t.Fatalf("op %d: Check() = %v", i, err)
		}
		if tree.Len() != len(model) {
			t.Fatalf("op %d: Len() = %d; want %d", i, tree.Len(), len(model))
		}
	}

	for k, want := range model {
		if got, ok := tree.Get(k); !ok || got != want {
			t.Errorf("Get(%d) = %d, %t; want %d", k, got, ok, want)
		}
	}
	if !tree.IsBalanced() {
		t.Errorf("IsBalanced() = false")
	}
}

func TestRemovalLeavesOthersFindable(t *testing.T) {
	tree := New[int, string]()
	keys := []int{50, 30, 70, 20, 40, 60, 80, 35, 45, 65}
	for _, k := range keys {
		tree.Insert(k, "v")
	}

	for i, k := range keys {
		tree.Remove(k)
		if tree.Find(k) != tree.End() {
			t.Fatalf("Find(%d) after Remove is not End", k)
		}
		for _, rest := range keys[i+1:] {
			if !tree.Find(rest).Valid() {
				t.Fatalf("Find(%d) lost after removing %d", rest, k)
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("Check() after removing %d = %v", k, err)
		}
	}
}

func TestTreeHidesUnbalancedMutators(t *testing.T) {
	typ := reflect.TypeOf(Tree[int, int]{})
	for i := 0; i < typ.NumField(); i++ {
		if f := typ.Field(i); f.IsExported() {
			t.Errorf("Tree exposes field %s", f.Name)
		}
	}

	tree := New[int, int]()
	for i := range 64 {
		tree.Insert(i, i)
	}
	for i := 0; i < 64; i += 3 {
		tree.Remove(i)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
	if tree.Len() != 42 || !tree.IsBalanced() {
		t.Errorf("Len() = %d, IsBalanced() = %t; want 42, true", tree.Len(), tree.IsBalanced())
	}
}
