// Copyright 2020 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2020 Charles University, Faculty of Arts,
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

// Package stats holds corpus-level counting helpers shared by the model
// loaders (sequential id assignment) and by batch analysis tooling
// (dispersion statistics over a parsed corpus).
package stats

// WordDict is a bidirectional map between words and sequentially
// assigned ids, starting at 0. Re-adding an already-known word is a
// no-op: the first occurrence wins, which is exactly the dedup rule
// spec.md requires for user-dictionary loading (§3: "per-load the first
// occurrence wins").
type WordDict struct {
	counter int
	data    map[string]int
	dataRev map[int]string
}

// NewWordDict returns an empty WordDict.
func NewWordDict() *WordDict {
	return &WordDict{
		data:    make(map[string]int),
		dataRev: make(map[int]string),
	}
}

// Add assigns (or looks up) the id for word, returning it.
func (w *WordDict) Add(word string) int {
	if v, ok := w.data[word]; ok {
		return v
	}
	id := w.counter
	w.counter++
	w.data[word] = id
	w.dataRev[id] = word
	return id
}

// Get returns the word for id, or "" if unknown.
func (w *WordDict) Get(id int) string {
	return w.dataRev[id]
}

// ID returns the id for word and whether it is known.
func (w *WordDict) ID(word string) (int, bool) {
	id, ok := w.data[word]
	return id, ok
}

// Size reports the number of distinct words held.
func (w *WordDict) Size() int {
	return len(w.data)
}
