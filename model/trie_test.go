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

func TestTrieSearchAndContains(t *testing.T) {
	tr := NewTrieFromMap(map[string]int{
		"中国": 1,
		"中":  2,
		"北京": 3,
	})
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, 1, tr.Search("中国人", len("中国")))
	assert.Equal(t, 2, tr.Search("中国人", len("中")))
	assert.Equal(t, -1, tr.Search("中国人", len("中国人")))
	assert.True(t, tr.Contains("北京"))
	assert.False(t, tr.Contains("上海"))
}

func TestTrieWriteAndLoadRoundTrip(t *testing.T) {
	tr := NewTrieFromMap(map[string]int{"a": 1, "b": 2, "c": 3})
	path := filepath.Join(t.TempDir(), "trie.idx")
	if err := WriteTrieFile(path, tr); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadTrieFile(path)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, tr.Len(), loaded.Len())
	assert.Equal(t, 1, loaded.Search("a", 1))
	assert.Equal(t, 2, loaded.Search("b", 1))
}

func TestLoadTrieFileRejectsUnsortedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.idx")
	if err := os.WriteFile(path, []byte("b\t1\na\t2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTrieFile(path)
	assert.Error(t, err)
	assert.Equal(t, KindCorruption, KindOf(err))
}

func TestLoadTrieFileMissing(t *testing.T) {
	_, err := LoadTrieFile(filepath.Join(t.TempDir(), "missing.idx"))
	assert.Error(t, err)
	assert.Equal(t, KindIO, KindOf(err))
}
