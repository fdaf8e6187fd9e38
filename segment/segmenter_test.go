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

package segment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasuganosora/milkcat-go/model"
)

// newUnigramModelDir writes just enough of a model directory
// (unigram.idx, unigram.bin) for a Unigram-mode Segmenter, taking each
// entry's cost from dict.
func newUnigramModelDir(t *testing.T, dict map[string]float32) string {
	t.Helper()
	dir := t.TempDir()

	ids := make(map[string]int, len(dict))
	costs := make([]float32, len(dict))
	i := 0
	for word, cost := range dict {
		ids[word] = i
		costs[i] = cost
		i++
	}
	if err := model.WriteTrieFile(filepath.Join(dir, "unigram.idx"), model.NewTrieFromMap(ids)); err != nil {
		t.Fatal(err)
	}
	if err := model.WriteArrayFile(filepath.Join(dir, "unigram.bin"), model.NewArrayFromSlice(costs)); err != nil {
		t.Fatal(err)
	}
	return dir
}

func surfaces(inst *TermInstance) []string {
	out := make([]string, inst.Len())
	for i := range out {
		out[i] = inst.Surface(i)
	}
	return out
}

func TestSegmenterUnigramPrefersCheaperDictionaryPath(t *testing.T) {
	dir := newUnigramModelDir(t, map[string]float32{
		"中国": 1.0,
		"中":  3.0,
		"国":  3.0,
		"人":  3.0,
	})
	c := model.Open(dir)
	s := NewSegmenter(c, Unigram)

	inst, err := s.Segment("中国人")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"中国", "人"}, surfaces(inst))
}

func TestSegmenterUnigramMarksOOVSingleRunes(t *testing.T) {
	dir := newUnigramModelDir(t, map[string]float32{"你": 1.0, "好": 1.0})
	c := model.Open(dir)
	s := NewSegmenter(c, Unigram)

	inst, err := s.Segment("你好吗")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"你", "好", "吗"}, surfaces(inst))
	assert.False(t, inst.Tokens[0].OOV)
	assert.False(t, inst.Tokens[1].OOV)
	assert.True(t, inst.Tokens[2].OOV)
	assert.Empty(t, inst.Tokens[2].OOVFeats)
}

func TestSegmenterEmptyInput(t *testing.T) {
	dir := newUnigramModelDir(t, map[string]float32{"a": 1.0})
	c := model.Open(dir)
	s := NewSegmenter(c, Unigram)

	inst, err := s.Segment("")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, inst.Len())
}

func TestClassifyAssignsWordType(t *testing.T) {
	dir := newUnigramModelDir(t, map[string]float32{"中": 1.0, "1": 1.0, "a": 1.0, ",": 1.0})
	c := model.Open(dir)
	s := NewSegmenter(c, Unigram)

	inst, err := s.Segment("中1a,")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, Chinese, inst.Tokens[0].Type)
	assert.Equal(t, Number, inst.Tokens[1].Type)
	assert.Equal(t, English, inst.Tokens[2].Type)
	assert.Equal(t, Punctuation, inst.Tokens[3].Type)
}
