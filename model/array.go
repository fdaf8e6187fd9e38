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

// Array is a read-only flat cost array indexed by term id.
type Array struct {
	values []float32
}

// At returns the cost for id, or 0 and false if id is out of range.
func (a *Array) At(id int) (float32, bool) {
	if id < 0 || id >= len(a.values) {
		return 0, false
	}
	return a.values[id], true
}

// Len reports the number of entries.
func (a *Array) Len() int {
	return len(a.values)
}

// NewArrayFromSlice wraps a precomputed slice of costs.
func NewArrayFromSlice(values []float32) *Array {
	return &Array{values: append([]float32(nil), values...)}
}

// LoadArrayFile reads a flat, little-endian float32 array: a uint32
// entry count followed by that many 4-byte floats.
func LoadArrayFile(path string) (*Array, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open cost array %s", path), err)
	}
	defer f.Close()
	r := bufio.NewReader(f)

	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, Corruption(fmt.Sprintf("cost array %s: bad header: %s", path, err))
	}
	values := make([]float32, n)
	for i := range values {
		if err := binary.Read(r, binary.LittleEndian, &values[i]); err != nil {
			return nil, Corruption(fmt.Sprintf("cost array %s: short read at entry %d", path, i))
		}
	}
	return &Array{values: values}, nil
}

// WriteArrayFile persists an Array in the format LoadArrayFile expects.
func WriteArrayFile(path string, a *Array) error {
	f, err := os.Create(path)
	if err != nil {
		return IOError(fmt.Sprintf("failed to create cost array %s", path), err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, uint32(len(a.values))); err != nil {
		return IOError(fmt.Sprintf("failed to write cost array %s", path), err)
	}
	for _, v := range a.values {
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return IOError(fmt.Sprintf("failed to write cost array %s", path), err)
		}
	}
	return w.Flush()
}
