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
	"strconv"
	"strings"

	"github.com/kasuganosora/milkcat-go/stats"
)

const (
	// UserTermIDStart is the first id assigned to a user-dictionary
	// surface form; built-in term ids never reach this value, per
	// spec.md §3.
	UserTermIDStart = 1 << 20

	// DefaultCost is used for a user-dictionary entry with no explicit
	// cost column.
	DefaultCost = 20.0
)

// userDict is the paired (index, cost) result of loading a user
// dictionary: len(index entries) == len(cost) always holds, satisfying
// spec.md §3's invariant.
type userDict struct {
	index *Trie
	cost  *Array
}

// loadUserDictionaryFile parses "WORD[ COST]" lines (spec.md §6): a
// single space separates the optional cost column, both fields are
// trimmed, a missing cost defaults to DefaultCost, and an empty file is
// reported as Corruption (spec.md scenario E1).
func loadUserDictionaryFile(path string) (*userDict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open user dictionary %s", path), err)
	}
	defer f.Close()

	dict := stats.NewWordDict()
	var costs []float32

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		word, cost := splitWordCost(line)
		if _, known := dict.ID(word); known {
			continue // first occurrence wins, spec.md §3
		}
		id := dict.Add(word)
		if id != len(costs) {
			// WordDict assigns dense ids from 0; this should never
			// diverge from the cost slice's length.
			return nil, Corruption(fmt.Sprintf("user dictionary %s: id/cost mismatch", path))
		}
		costs = append(costs, cost)
	}
	if err := sc.Err(); err != nil {
		return nil, IOError(fmt.Sprintf("failed to read user dictionary %s", path), err)
	}

	if dict.Size() == 0 {
		return nil, Corruption(fmt.Sprintf("User dictionary %s is empty.", path))
	}

	return buildUserDict(dict, costs), nil
}

// loadUserDictionaryMap builds a user dictionary from an in-memory
// (word -> cost) mapping. Ids are assigned in map iteration order, so
// they may differ between calls; each word's id still pairs with that
// word's cost.
func loadUserDictionaryMap(words map[string]float32) (*userDict, error) {
	if len(words) == 0 {
		return nil, Corruption("User dictionary (in-memory) is empty.")
	}
	dict := stats.NewWordDict()
	costs := make([]float32, 0, len(words))
	for w, c := range words {
		id := dict.Add(w)
		if id != len(costs) {
			return nil, Corruption("user dictionary: id/cost mismatch")
		}
		costs = append(costs, c)
	}
	return buildUserDict(dict, costs), nil
}

func buildUserDict(dict *stats.WordDict, costs []float32) *userDict {
	entries := make(map[string]int, dict.Size())
	for i := 0; i < dict.Size(); i++ {
		entries[dict.Get(i)] = UserTermIDStart + i
	}
	return &userDict{
		index: NewTrieFromMap(entries),
		cost:  NewArrayFromSlice(costs),
	}
}

// splitWordCost splits a trimmed "WORD" or "WORD COST" line on its
// first space.
func splitWordCost(line string) (string, float32) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return line, DefaultCost
	}
	word := strings.TrimSpace(line[:sp])
	rest := strings.TrimSpace(line[sp+1:])
	cost, err := strconv.ParseFloat(rest, 32)
	if err != nil {
		return word, DefaultCost
	}
	return word, float32(cost)
}
