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
	"fmt"

	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/segment"
)

// CRFTagger assigns each token the highest-scoring label from a
// ModelContainer's POS CRF model, independently per token (a
// zero-order approximation of the full linear-chain CRF — the chain
// transition structure is the out-of-scope collaborator, spec.md §1;
// this is the minimal real consumer of PosCRF()'s per-token scoring
// contract).
type CRFTagger struct {
	container *model.ModelContainer
}

// NewCRFTagger builds a CRFTagger reading its model from container.
func NewCRFTagger(container *model.ModelContainer) *CRFTagger {
	return &CRFTagger{container: container}
}

// Tag implements Tagger.
func (t *CRFTagger) Tag(terms *segment.TermInstance) (*Instance, error) {
	crf, err := t.container.PosCRF()
	if err != nil {
		return nil, err
	}
	tags := make([]string, terms.Len())
	for i := 0; i < terms.Len(); i++ {
		feats := []string{fmt.Sprintf("word=%s", terms.Surface(i))}
		label, _ := crf.BestLabel(feats)
		tags[i] = label
	}
	return &Instance{Tags: tags}, nil
}

// MixedTagger runs the HMM tagger first, then replaces a token's tag
// with the CRF model's best label whenever that label is non-empty and
// its score is positive. The HMM's own score is not compared.
type MixedTagger struct {
	container *model.ModelContainer
	hmm       *HMMTagger
}

// NewMixedTagger builds a MixedTagger reading both models from
// container.
func NewMixedTagger(container *model.ModelContainer) *MixedTagger {
	return &MixedTagger{container: container, hmm: NewHMMTagger(container)}
}

// Tag implements Tagger.
func (t *MixedTagger) Tag(terms *segment.TermInstance) (*Instance, error) {
	inst, err := t.hmm.Tag(terms)
	if err != nil {
		return nil, err
	}
	crf, err := t.container.PosCRF()
	if err != nil {
		return nil, err
	}
	for i := 0; i < terms.Len(); i++ {
		feats := []string{fmt.Sprintf("word=%s", terms.Surface(i))}
		label, score := crf.BestLabel(feats)
		if score > 0 && label != "" {
			inst.Tags[i] = label
		}
	}
	return inst, nil
}
