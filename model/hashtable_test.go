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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackBigramKeyIsOrderSensitive(t *testing.T) {
	assert.NotEqual(t, PackBigramKey(1, 2), PackBigramKey(2, 1))
	assert.Equal(t, PackBigramKey(1, 2), PackBigramKey(1, 2))
}

func TestHashTableGet(t *testing.T) {
	h := NewHashTableFromMap(map[int64]float32{
		PackBigramKey(1, 2): 0.5,
	})
	v, ok := h.Get(PackBigramKey(1, 2))
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), v)

	_, ok = h.Get(PackBigramKey(2, 1))
	assert.False(t, ok)
}

func TestHashTableWriteAndLoadRoundTrip(t *testing.T) {
	h := NewHashTableFromMap(map[int64]float32{
		PackBigramKey(1, 2): 0.5,
		PackBigramKey(3, 4): -1.25,
	})
	path := filepath.Join(t.TempDir(), "bigram.bin")
	if err := WriteHashTableFile(path, h); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadHashTableFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, h.Len(), loaded.Len())
	v, ok := loaded.Get(PackBigramKey(3, 4))
	assert.True(t, ok)
	assert.Equal(t, float32(-1.25), v)
}
