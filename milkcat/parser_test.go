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

package milkcat

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasuganosora/milkcat-go/depparse"
	"github.com/kasuganosora/milkcat-go/model"
)

// newMinimalModelDir writes just the artifacts a Unigram/None/None
// pipeline needs: the unigram dictionary and an (empty) stopword trie.
func newMinimalModelDir(t *testing.T, dict map[string]float32) string {
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
	if err := model.WriteTrieFile(filepath.Join(dir, "stopword.idx"), model.NewTrieFromMap(map[string]int{"的": 0})); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestParserParseWithoutTaggerOrDependencyParser(t *testing.T) {
	dir := newMinimalModelDir(t, map[string]float32{"我": 1, "爱": 1, "你": 1, "的": 1})
	m := Open(dir)
	p, err := NewParser(m, Options{
		Segmenter:        SegmenterUnigram,
		Tagger:           TaggerNone,
		DependencyParser: DependencyParserNone,
		BeamWidth:        1,
	})
	if err != nil {
		t.Fatal(err)
	}

	it, err := p.Parse("我爱你。的东西")
	if err != nil {
		t.Fatal(err)
	}

	var surfaces []string
	var stopwords []bool
	for it.Next() {
		surfaces = append(surfaces, it.Surface())
		stopwords = append(stopwords, it.IsStopword())
		assert.Equal(t, depparse.RootHeadIndex, it.Head())
		assert.Equal(t, "", it.Label())
	}
	assert.Equal(t, []string{"我", "爱", "你", "。", "的", "东", "西"}, surfaces)
	assert.True(t, stopwords[4])
	assert.False(t, stopwords[0])
}

func TestParserRejectsNonUnitBeamWidth(t *testing.T) {
	dir := newMinimalModelDir(t, map[string]float32{"x": 1})
	_, err := NewParser(Open(dir), Options{BeamWidth: 2})
	assert.Error(t, err)
}

func TestParserIsBeginOfSentenceMarksSentenceBoundaries(t *testing.T) {
	dir := newMinimalModelDir(t, map[string]float32{"我": 1, "你": 1})
	p, err := NewParser(Open(dir), Options{
		Segmenter: SegmenterUnigram, Tagger: TaggerNone, DependencyParser: DependencyParserNone, BeamWidth: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	it, err := p.Parse("我。你。")
	if err != nil {
		t.Fatal(err)
	}

	var begins []bool
	for it.Next() {
		begins = append(begins, it.IsBeginOfSentence())
	}
	assert.Equal(t, []bool{true, false, true, false}, begins)
}
