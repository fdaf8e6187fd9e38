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

package depparse

import (
	"fmt"

	"github.com/kasuganosora/milkcat-go/feature"
	"github.com/kasuganosora/milkcat-go/model"
)

// Scorer picks the next transition for a State by extracting its
// feature set and scoring every legal class with an averaged
// perceptron (spec.md §4.4/§4.5).
type Scorer struct {
	perceptron  *model.Perceptron
	template    *feature.Template
	transitions []Transition // transitions[classID] == decoded class
}

// NewScorer builds a Scorer from a loaded perceptron model and a
// compiled feature template, decoding the model's class vocabulary
// into Transitions once up front.
func NewScorer(perceptron *model.Perceptron, template *feature.Template) (*Scorer, error) {
	classes := perceptron.Classes()
	transitions := make([]Transition, len(classes))
	for i, c := range classes {
		t, ok := ParseTransition(c)
		if !ok {
			return nil, model.Corruption(fmt.Sprintf("perceptron model: unrecognized class %q", c))
		}
		transitions[i] = t
	}
	return &Scorer{perceptron: perceptron, template: template, transitions: transitions}, nil
}

// Next extracts the current state's feature set and returns the
// highest-scoring legal transition, breaking ties toward the smaller
// class id (spec.md §4.5, via model.Perceptron.BestClass). It returns
// false if no transition is legal: that is the case once the state is
// terminal, and also when the buffer is empty while the stack top still
// has no head.
func (s *Scorer) Next(state *State) (Transition, bool, error) {
	var set feature.Set
	if err := s.template.Extract(state, &set); err != nil {
		return Transition{}, false, err
	}

	legal := make([]bool, len(s.transitions))
	anyLegal := false
	for i, t := range s.transitions {
		if t.Legal(state) {
			legal[i] = true
			anyLegal = true
		}
	}
	if !anyLegal {
		return Transition{}, false, nil
	}

	best := s.perceptron.BestClass(set.Slice(), legal)
	if best < 0 {
		return Transition{}, false, nil
	}
	return s.transitions[best], true, nil
}
