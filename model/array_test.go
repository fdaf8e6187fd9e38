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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayAtOutOfRange(t *testing.T) {
	a := NewArrayFromSlice([]float32{1.5, 2.5, 3.5})
	v, ok := a.At(1)
	assert.True(t, ok)
	assert.Equal(t, float32(2.5), v)

	_, ok = a.At(-1)
	assert.False(t, ok)
	_, ok = a.At(3)
	assert.False(t, ok)
}

func TestArrayWriteAndLoadRoundTrip(t *testing.T) {
	a := NewArrayFromSlice([]float32{0.1, 0.2, 0.3, 0.4})
	path := filepath.Join(t.TempDir(), "costs.bin")
	if err := WriteArrayFile(path, a); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadArrayFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, a.Len(), loaded.Len())
	for i := 0; i < a.Len(); i++ {
		want, _ := a.At(i)
		got, _ := loaded.At(i)
		assert.Equal(t, want, got)
	}
}

func TestLoadArrayFileRejectsShortRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	// Header claims 5 entries but only one float follows.
	data := []byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x3f}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadArrayFile(path)
	assert.Error(t, err)
	assert.Equal(t, KindCorruption, KindOf(err))
}
