// Copyright 2017 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2017 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/czcorpus/cnc-gokit/collections"
)

// Trie maps byte strings to non-negative integer ids. The spec's
// collaborator contract (a double-array trie) is an on-disk binary
// structure out of this module's scope; this is a from-scratch,
// sorted-entries implementation of the same (string -> id) search
// contract, good enough for both the built-in artifacts and the
// user dictionary.
type Trie struct {
	keys []string
	ids  []int
}

// entry implements collections.Comparable so a batch of (word, id)
// pairs can be deduplicated and ordered via collections.BinTree before
// the sorted slices backing Trie are built.
type entry struct {
	key string
	id  int
}

func (e entry) Compare(other collections.Comparable) int {
	o, ok := other.(entry)
	if !ok {
		return -1
	}
	return strings.Compare(e.key, o.key)
}

// NewTrieFromMap builds a Trie from an ordered (string -> id) mapping.
// Entries are passed through a collections.BinTree first so that
// construction is deterministic regardless of Go's randomized map
// iteration order.
func NewTrieFromMap(m map[string]int) *Trie {
	tree := new(collections.BinTree[entry])
	tree.UniqValues = true
	for k, v := range m {
		tree.Add(entry{key: k, id: v})
	}
	sorted := tree.ToSlice()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].key < sorted[j].key })
	t := &Trie{keys: make([]string, len(sorted)), ids: make([]int, len(sorted))}
	for i, e := range sorted {
		t.keys[i] = e.key
		t.ids[i] = e.id
	}
	return t
}

// Search looks up prefix[:length] and returns its id, or -1 if absent.
func (t *Trie) Search(prefix string, length int) int {
	if length > len(prefix) {
		return -1
	}
	key := prefix[:length]
	i := sort.SearchStrings(t.keys, key)
	if i < len(t.keys) && t.keys[i] == key {
		return t.ids[i]
	}
	return -1
}

// Contains is a convenience wrapper around Search for a whole string.
func (t *Trie) Contains(word string) bool {
	return t.Search(word, len(word)) >= 0
}

// Len reports the number of entries.
func (t *Trie) Len() int {
	return len(t.keys)
}

// LoadTrieFile reads a Trie previously written by WriteTrieFile: one
// "word\tid" entry per line, already sorted by word. The format is ours
// to define (spec.md treats the on-disk trie encoding as an external,
// out-of-scope collaborator); this keeps the artifact human-diffable for
// tests and fixtures.
func LoadTrieFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open trie file %s", path), err)
	}
	defer f.Close()

	t := &Trie{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		tab := strings.LastIndexByte(line, '\t')
		if tab < 0 {
			return nil, Corruption(fmt.Sprintf("malformed trie entry in %s: %q", path, line))
		}
		id, err := strconv.Atoi(line[tab+1:])
		if err != nil {
			return nil, Corruption(fmt.Sprintf("malformed trie id in %s: %q", path, line))
		}
		t.keys = append(t.keys, line[:tab])
		t.ids = append(t.ids, id)
	}
	if err := sc.Err(); err != nil {
		return nil, IOError(fmt.Sprintf("failed to read trie file %s", path), err)
	}
	if !sort.StringsAreSorted(t.keys) {
		return nil, Corruption(fmt.Sprintf("trie file %s is not sorted by key", path))
	}
	return t, nil
}

// WriteTrieFile persists a Trie in the format LoadTrieFile expects.
func WriteTrieFile(path string, t *Trie) error {
	f, err := os.Create(path)
	if err != nil {
		return IOError(fmt.Sprintf("failed to create trie file %s", path), err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i, k := range t.keys {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", k, t.ids[i]); err != nil {
			return IOError(fmt.Sprintf("failed to write trie file %s", path), err)
		}
	}
	return w.Flush()
}
