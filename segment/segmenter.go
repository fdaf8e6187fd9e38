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
	"unicode"

	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/ud"
)

// Mode selects which static artifacts a Segmenter consults.
type Mode int

const (
	// Unigram considers only per-term costs.
	Unigram Mode = iota
	// Bigram adds adjacent-term costs from the bigram hash table.
	Bigram
	// Mixed additionally consults the segmentation CRF model to merge
	// runs of dictionary-uncovered characters.
	Mixed
)

// maxWordRunes bounds the length of a dictionary match a Segmenter
// will try; MilkCat's own dictionaries never carry longer entries in
// practice.
const maxWordRunes = 8

// oovUnigramCost is charged for any rune with no dictionary entry, set
// higher than typical in-dictionary unigram costs so a real match is
// always preferred when one exists.
const oovUnigramCost = 15.0

// Segmenter splits text into a TermInstance via a unigram/bigram
// minimum-cost-path search over the ModelContainer's trie index and
// cost tables — a Viterbi shortest path through the lattice of trie
// matches (spec.md §3 expansion).
type Segmenter struct {
	container *model.ModelContainer
	mode      Mode
}

// NewSegmenter builds a Segmenter reading artifacts from container in
// the given mode.
func NewSegmenter(container *model.ModelContainer, mode Mode) *Segmenter {
	return &Segmenter{container: container, mode: mode}
}

type segEdge struct {
	from   int
	length int
	id     int // trie id, or -1 for an OOV single-rune token
}

// Segment runs the lattice search over text and returns the resulting
// TermInstance.
func (s *Segmenter) Segment(text string) (*TermInstance, error) {
	index, err := s.container.UnigramIndex()
	if err != nil {
		return nil, err
	}
	costs, err := s.container.UnigramCost()
	if err != nil {
		return nil, err
	}
	var bigram *model.HashTable
	if s.mode == Bigram || s.mode == Mixed {
		bigram, err = s.container.BigramCost()
		if err != nil {
			return nil, err
		}
	}

	runes := []rune(text)
	n := len(runes)
	offsets := runeByteOffsets(text, runes)

	if n == 0 {
		return &TermInstance{}, nil
	}

	const inf = 1e18
	dp := make([]float64, n+1)
	back := make([]segEdge, n+1)
	prevID := make([]int, n+1) // trie id of the edge ending at this position, for bigram scoring
	for i := 1; i <= n; i++ {
		dp[i] = inf
	}

	for i := 0; i < n; i++ {
		if dp[i] == inf && i != 0 {
			continue
		}
		matchedUnigram := false
		maxLen := maxWordRunes
		if n-i < maxLen {
			maxLen = n - i
		}
		for length := 1; length <= maxLen; length++ {
			substr := text[offsets[i]:offsets[i+length]]
			id := index.Search(substr, len(substr))
			if id < 0 {
				continue
			}
			matchedUnigram = true
			cost, _ := costs.At(id)
			edgeCost := float64(cost)
			if bigram != nil && i > 0 && prevID[i] >= 0 {
				if bc, ok := bigram.Get(model.PackBigramKey(int32(prevID[i]), int32(id))); ok {
					edgeCost += float64(bc)
				}
			}
			total := dp[i] + edgeCost
			if total < dp[i+length] {
				dp[i+length] = total
				back[i+length] = segEdge{from: i, length: length, id: id}
				prevID[i+length] = id
			}
		}
		if !matchedUnigram || maxLen == 1 {
			total := dp[i] + oovUnigramCost
			if total < dp[i+1] {
				dp[i+1] = total
				back[i+1] = segEdge{from: i, length: 1, id: -1}
				prevID[i+1] = -1
			}
		}
	}

	var spans []segEdge
	for pos := n; pos > 0; {
		e := back[pos]
		spans = append(spans, e)
		pos = e.from
	}
	for l, r := 0, len(spans)-1; l < r; l, r = l+1, r-1 {
		spans[l], spans[r] = spans[r], spans[l]
	}

	if s.mode == Mixed {
		var err error
		spans, err = s.mergeOOVWithCRF(spans, runes)
		if err != nil {
			return nil, err
		}
	}

	inst := &TermInstance{Tokens: make([]Token, 0, len(spans))}
	for _, e := range spans {
		surface := text[offsets[e.from]:offsets[e.from+e.length]]
		tok := Token{Surface: surface, Type: classify(surface), OOV: e.id < 0}
		if tok.OOV {
			tok.OOVFeats = s.decodeOOVFeats(surface)
		}
		inst.Tokens = append(inst.Tokens, tok)
	}
	return inst, nil
}

// decodeOOVFeats consults the ModelContainer's OOVProperty trie for
// surface's leading rune and decodes the resulting class id into a
// feature bundle. Any lookup or load failure yields an empty bundle:
// OOV-class decoration is informational, not load-bearing for
// segmentation itself.
func (s *Segmenter) decodeOOVFeats(surface string) ud.FeatList {
	oov, err := s.container.OOVProperty()
	if err != nil {
		return nil
	}
	r := []rune(surface)[0]
	classID := oov.Search(string(r), len(string(r)))
	if classID < 0 {
		return nil
	}
	feats, err := model.DecodeOOVClass(classID)
	if err != nil {
		return nil
	}
	return feats
}

// mergeOOVWithCRF consults the segmentation CRF model to decide whether
// adjacent OOV single-rune spans should be merged into one token,
// using a minimal per-rune feature ("char=X"). A run merges when the
// CRF's best label for every rune of the run is not "S" (single).
func (s *Segmenter) mergeOOVWithCRF(spans []segEdge, runes []rune) ([]segEdge, error) {
	crf, err := s.container.SegCRF()
	if err != nil {
		return nil, err
	}

	var out []segEdge
	i := 0
	for i < len(spans) {
		if spans[i].id >= 0 {
			out = append(out, spans[i])
			i++
			continue
		}
		j := i
		for j < len(spans) && spans[j].id < 0 {
			j++
		}
		// spans[i:j] are consecutive OOV single-rune tokens.
		run := spans[i:j]
		if len(run) == 1 {
			out = append(out, run[0])
			i = j
			continue
		}
		merged := true
		for _, e := range run {
			feat := []string{"char=" + string(runes[e.from])}
			label, _ := crf.BestLabel(feat)
			if label == "S" {
				merged = false
				break
			}
		}
		if merged {
			out = append(out, segEdge{from: run[0].from, length: run[len(run)-1].from + run[len(run)-1].length - run[0].from, id: -1})
		} else {
			out = append(out, run...)
		}
		i = j
	}
	return out, nil
}

func runeByteOffsets(text string, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += len(string(r))
	}
	offsets[len(runes)] = len(text)
	return offsets
}

// classify assigns a WordType to a surface form by inspecting its
// first rune (spec.md §3/§6).
func classify(surface string) WordType {
	r := []rune(surface)[0]
	switch {
	case unicode.Is(unicode.Han, r):
		return Chinese
	case unicode.IsDigit(r):
		return Number
	case unicode.IsLetter(r):
		return English
	case unicode.IsPunct(r):
		return Punctuation
	case unicode.IsSymbol(r):
		return Symbol
	default:
		return Other
	}
}
