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
	"github.com/rs/zerolog/log"

	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/tag"
)

// Parser drives a State to termination using a Scorer (spec.md §4.4).
// A Parser is not safe for concurrent use by multiple goroutines: each
// call to Parse mutates its own private State, but a single Parser
// should still be confined to one goroutine at a time, matching
// spec.md §5's note that a parser instance is not a shared resource.
type Parser struct {
	scorer *Scorer
}

// NewParser builds a Parser around scorer.
func NewParser(scorer *Scorer) *Parser {
	return &Parser{scorer: scorer}
}

// Parse drives the arc-eager system from the initial configuration for
// (terms, tags) to termination and returns the resulting TreeInstance.
// Parsing always halts within 2n transitions (spec.md §4.4/§8 invariant
// 6); if the scorer ever reports no legal transition from a
// non-terminal configuration — a pathological state indicating a
// model/data mismatch — the driver falls back to SHIFT (buffer
// non-empty) or REDUCE, exactly as spec.md §4.4 prescribes.
func (p *Parser) Parse(terms *segment.TermInstance, tags *tag.Instance) (*TreeInstance, error) {
	n := terms.Len()
	state := NewState(terms, tags)

	maxTransitions := 2 * n
	if maxTransitions == 0 {
		maxTransitions = 1
	}

	for i := 0; i < maxTransitions && !state.IsTerminal(); i++ {
		t, ok, err := p.scorer.Next(state)
		if err != nil {
			return nil, err
		}
		if !ok {
			t = fallback(state)
			log.Warn().Int("sentence_len", n).Str("fallback", t.String()).
				Msg("no legal transition scored; applying pathological fallback")
		}
		t.Apply(state)
	}

	return storeResult(state), nil
}

// fallback implements spec.md §4.4's pathological-state recovery:
// SHIFT if the buffer is non-empty, else REDUCE.
func fallback(s *State) Transition {
	if !s.BufferEmpty() {
		return Transition{Kind: Shift}
	}
	return Transition{Kind: Reduce}
}

// storeResult writes, for each sentence position, the (head, label)
// pair into a TreeInstance (spec.md §3/§4.4 "Output"). Any token left
// without a head at termination is attached to ROOT with
// DefaultRootLabel.
func storeResult(s *State) *TreeInstance {
	n := s.NumTokens()
	tree := &TreeInstance{Head: make([]int, n), Label: make([]string, n)}
	for i := 0; i < n; i++ {
		nd := s.nodeAt(i)
		if nd.head == noHead || nd.head == s.rootIdx {
			tree.Head[i] = RootHeadIndex
			if nd.label != "" {
				tree.Label[i] = nd.label
			} else {
				tree.Label[i] = DefaultRootLabel
			}
			continue
		}
		tree.Head[i] = nd.head
		tree.Label[i] = nd.label
	}
	return tree
}
