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
	"strings"
	"testing"

	"github.com/cybrota/avlstore/avl"
)

// treeStore is a minimal Store backed directly by an AVL tree.
type treeStore struct {
	tree *avl.Tree[string, string]
}

func newTreeStore() *treeStore {
	return &treeStore{tree: avl.New[string, string]()}
}

func (s *treeStore) Put(key, value string) { s.tree.Insert(key, value) }
func (s *treeStore) Delete(key string) bool { return s.tree.Remove(key) }
func (s *treeStore) Clear() { s.tree.Clear() }
func (s *treeStore) Len() int { return s.tree.Len() }
func (s *treeStore) Check() error { return s.tree.Check() }
func (s *treeStore) Find(key string) (string, bool) { return s.tree.Get(key) }

func (s *treeStore) Get(key string) (string, error) {
	v, err := s.tree.At(key)
	if err != nil {
		return "", err
	}
	return *v, nil
}

func (s *treeStore) Entries() []Entry {
	var out []Entry
	for k, v := range s.tree.All() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

func (s *treeStore) Reverse() []Entry {
	var out []Entry
	for k, v := range s.tree.Backward() {
		out = append(out, Entry{Key: k, Value: v})
	}
	return out
}

func (s *treeStore) Stats() Stats {
	return Stats{Size: s.tree.Len(), Height: s.tree.Height(), Balanced: s.tree.IsBalanced()}
}

func TestOpManagerScript(t *testing.T) {
	steps := []struct {
		Line     string
		Expected string
	}{
		{"insert b two", "ok"},
		{"insert a one", "ok"},
		{"SET c three little words", "ok"},
		{"get c", "three little words"},
		{"find a", "a = one"},
		{"find zz", "end"},
		{"size", "3"},
		{"height", "1"},
		{"balanced", "true"},
		{"list", "a=one\nb=two\nc=three little words"},
		{"reverse", "c=three little words\nb=two\na=one"},
		{"remove b", "removed"},
		{"delete b", "absent"},
		{"check", "ok"},
		{"clear", "cleared"},
		{"empty", "true"},
		{"list", ""},
	}

	manager := NewOpManager()
	store := newTreeStore()
	for _, step := range steps {
		got, err := manager.Apply(store, strings.Fields(step.Line))
		if err != nil {
			t.Fatalf("%q: unexpected error %v", step.Line, err)
		}
		if got != step.Expected {
			t.Errorf("%q = %q; want %q", step.Line, got, step.Expected)
		}
	}
}

func TestOpManagerErrors(t *testing.T) {
	manager := NewOpManager()
	store := newTreeStore()

	if _, err := manager.Apply(store, nil); err == nil {
		t.Errorf("empty operation did not fail")
	}
	if _, err := manager.Apply(store, []string{"frobnicate"}); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("unknown operation error = %v; want ErrUnknownOp", err)
	}
	if _, err := manager.Apply(store, []string{"get", "missing"}); !errors.Is(err, avl.ErrKeyNotFound) {
		t.Errorf("get missing error = %v; want ErrKeyNotFound", err)
	}
	if _, err := manager.Apply(store, []string{"insert"}); err == nil {
		t.Errorf("insert without key did not fail")
	}
}

func TestCommand(t *testing.T) {
	cmd := NewCommand([]string{"Insert", "key", "some", "value"})

	if cmd.Name != "insert" {
		t.Errorf("Expected Name to be 'insert', got '%s'", cmd.Name)
	}
	if !cmd.HasArgs(3) {
		t.Errorf("Expected command to have at least 3 args")
	}
	if cmd.GetArg(0) != "key" {
		t.Errorf("Expected first arg to be 'key', got '%s'", cmd.GetArg(0))
	}
	if cmd.Rest(1) != "some value" {
		t.Errorf("Expected Rest(1) to be 'some value', got '%s'", cmd.Rest(1))
	}
	if cmd.GetArg(5) != "" || cmd.Rest(5) != "" {
		t.Errorf("Expected out of range args to be empty")
	}
}

// countingStore records which of the whole-tree reads an operation used.
type countingStore struct {
	*treeStore
	entries, reverse, stats int
}

func (s *countingStore) Entries() []Entry {
	s.entries++
	return s.treeStore.Entries()
}

func (s *countingStore) Reverse() []Entry {
	s.reverse++
	return s.treeStore.Reverse()
}

func (s *countingStore) Stats() Stats {
	s.stats++
	return s.treeStore.Stats()
}

func TestOpsReadOnlyWhatTheyPrint(t *testing.T) {
	testCases := []struct {
		Name                    string
		Line                    string
		Expected                string
		Entries, Reverse, Stats int
	}{
		{Name: "list", Line: "list", Expected: "a=1\nb=2", Entries: 1},
		{Name: "reverse", Line: "reverse", Expected: "b=2\na=1", Reverse: 1},
		{Name: "size", Line: "size", Expected: "2"},
		{Name: "empty", Line: "empty", Expected: "false"},
		{Name: "height", Line: "height", Expected: "1", Stats: 1},
		{Name: "balanced", Line: "balanced", Expected: "true", Stats: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store := &countingStore{treeStore: newTreeStore()}
			store.Put("a", "1")
			store.Put("b", "2")

			got, err := NewOpManager().Apply(store, strings.Fields(tc.Line))
			if err != nil {
				t.Fatalf("Apply(%q) error: %v", tc.Line, err)
			}
			if got != tc.Expected {
				t.Errorf("Apply(%q) = %q; want %q", tc.Line, got, tc.Expected)
			}
			if store.entries != tc.Entries || store.reverse != tc.Reverse || store.stats != tc.Stats {
				t.Errorf("Entries/Reverse/Stats calls = %d/%d/%d; want %d/%d/%d",
					store.entries, store.reverse, store.stats, tc.Entries, tc.Reverse, tc.Stats)
			}
		})
	}
}
