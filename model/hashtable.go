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
	"encoding/binary"
	"fmt"
	"os"
)

// PackBigramKey packs two term ids into the int64 key the bigram cost
// table is keyed by.
func PackBigramKey(id1, id2 int32) int64 {
	return int64(id1)<<32 | int64(uint32(id2))
}

// HashTable is a read-only hash table keyed by a packed int64 (two term
// ids), valued by a float32 cost. It backs the bigram cost artifact.
type HashTable struct {
	data map[int64]float32
}

// Get returns the value for key, or 0 and false if absent.
func (h *HashTable) Get(key int64) (float32, bool) {
	v, ok := h.data[key]
	return v, ok
}

// Len reports the number of entries.
func (h *HashTable) Len() int {
	return len(h.data)
}

// NewHashTableFromMap wraps a precomputed map of costs.
func NewHashTableFromMap(m map[int64]float32) *HashTable {
	cp := make(map[int64]float32, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return &HashTable{data: cp}
}

// LoadHashTableFile reads a hash table: a uint32 entry count followed by
// that many (int64 key, float32 value) pairs, little-endian.
func LoadHashTableFile(path string) (*HashTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open bigram table %s", path), err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, Corruption(fmt.Sprintf("bigram table %s: bad header: %s", path, err))
	}
	data := make(map[int64]float32, n)
	for i := uint32(0); i < n; i++ {
		var key int64
		var val float32
		if err := binary.Read(r, binary.LittleEndian, &key); err != nil {
			return nil, Corruption(fmt.Sprintf("bigram table %s: short read at entry %d", path, i))
		}
		if err := binary.Read(r, binary.LittleEndian, &val); err != nil {
			return nil, Corruption(fmt.Sprintf("bigram table %s: short read at entry %d", path, i))
		}
		data[key] = val
	}
	return &HashTable{data: data}, nil
}

// WriteHashTableFile persists a HashTable in the format
// LoadHashTableFile expects.
func WriteHashTableFile(path string, h *HashTable) error {
	f, err := os.Create(path)
	if err != nil {
		return IOError(fmt.Sprintf("failed to create bigram table %s", path), err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(h.data))); err != nil {
		return IOError(fmt.Sprintf("failed to write bigram table %s", path), err)
	}
	for k, v := range h.data {
		if err := binary.Write(w, binary.LittleEndian, k); err != nil {
			return IOError(fmt.Sprintf("failed to write bigram table %s", path), err)
		}
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return IOError(fmt.Sprintf("failed to write bigram table %s", path), err)
		}
	}
	return w.Flush()
}
