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

package tag

import (
	"math"

	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/segment"
)

// Tagger assigns a PartOfSpeechTagInstance to a TermInstance.
type Tagger interface {
	Tag(terms *segment.TermInstance) (*Instance, error)
}

// noneTagSentinel is the tag every token receives under NoneTagger.
const noneTagSentinel = "X"

// NoneTagger is a pass-through tagger: every token receives a fixed
// sentinel tag, matching spec.md §6's "none" tagger choice.
type NoneTagger struct{}

// Tag implements Tagger.
func (NoneTagger) Tag(terms *segment.TermInstance) (*Instance, error) {
	tags := make([]string, terms.Len())
	for i := range tags {
		tags[i] = noneTagSentinel
	}
	return &Instance{Tags: tags}, nil
}

// HMMTagger assigns POS tags by Viterbi decoding over a ModelContainer's
// HMM POS model (spec.md §3 expansion).
type HMMTagger struct {
	container *model.ModelContainer
}

// NewHMMTagger builds an HMMTagger reading its model from container.
func NewHMMTagger(container *model.ModelContainer) *HMMTagger {
	return &HMMTagger{container: container}
}

// Tag implements Tagger.
func (t *HMMTagger) Tag(terms *segment.TermInstance) (*Instance, error) {
	hmm, err := t.container.PosHMM()
	if err != nil {
		return nil, err
	}

	n := terms.Len()
	if n == 0 {
		return &Instance{}, nil
	}
	numTags := len(hmm.Tags)

	// Standard Viterbi: score[i][tag] = best log-prob path ending at
	// position i with this tag; back[i][tag] = the tag chosen at i-1.
	score := make([][]float64, n)
	back := make([][]int, n)
	for i := range score {
		score[i] = make([]float64, numTags)
		back[i] = make([]int, numTags)
	}

	for tagIdx := 0; tagIdx < numTags; tagIdx++ {
		score[0][tagIdx] = hmm.Initial(tagIdx) + hmm.Emission(hmm.Tags[tagIdx], terms.Surface(0))
		back[0][tagIdx] = -1
	}

	for i := 1; i < n; i++ {
		word := terms.Surface(i)
		for cur := 0; cur < numTags; cur++ {
			best := math.Inf(-1)
			bestPrev := 0
			for prev := 0; prev < numTags; prev++ {
				v := score[i-1][prev] + hmm.Transition(prev, cur)
				if v > best {
					best = v
					bestPrev = prev
				}
			}
			score[i][cur] = best + hmm.Emission(hmm.Tags[cur], word)
			back[i][cur] = bestPrev
		}
	}

	bestLast := 0
	bestScore := math.Inf(-1)
	for tagIdx := 0; tagIdx < numTags; tagIdx++ {
		if score[n-1][tagIdx] > bestScore {
			bestScore = score[n-1][tagIdx]
			bestLast = tagIdx
		}
	}

	path := make([]int, n)
	path[n-1] = bestLast
	for i := n - 1; i > 0; i-- {
		path[i-1] = back[i][path[i]]
	}

	tags := make([]string, n)
	for i, tagIdx := range path {
		tags[i] = hmm.Tags[tagIdx]
	}
	return &Instance{Tags: tags}, nil
}
