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
	"github.com/kasuganosora/milkcat-go/feature"
	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/tag"
)

// rootTermID marks the synthetic ROOT node (spec.md §3).
const rootTermID = -1

// State is one parser configuration: a stack of node indices, a
// buffer cursor over the remaining input tokens, and an arena holding
// every node touched during the parse (spec.md §3/§9). The arena is
// sized n+1 up front — n sentence tokens plus the synthetic ROOT — and
// every reference into it is a small integer index, never a pointer.
type State struct {
	arena []node

	rootIdx int // index of the ROOT node, == n

	stack  []int // arena indices, bottom is always rootIdx
	buffer []int // arena indices of every token, in order
	bufPos int   // index into buffer of the current front

	transitions []Transition
}

// NewState builds the initial configuration for a sentence: a single
// ROOT on the stack, all tokens on the buffer in order.
func NewState(terms *segment.TermInstance, tags *tag.Instance) *State {
	n := terms.Len()
	s := &State{
		arena:   make([]node, n+1),
		rootIdx: n,
		buffer:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		s.arena[i] = node{
			termID: i,
			term:   terms.Surface(i),
			tag:    tags.Tag(i),
			head:   noHead,
		}
		s.buffer[i] = i
	}
	s.arena[n] = node{termID: rootTermID, term: feature.RootTerm, tag: feature.RootTag, head: noHead}
	s.stack = []int{n}
	return s
}

// NumTokens reports the sentence length (excluding ROOT).
func (s *State) NumTokens() int {
	return len(s.buffer)
}

// IsTerminal reports whether the buffer is exhausted and the stack
// holds only ROOT (spec.md §3/§4.4).
func (s *State) IsTerminal() bool {
	return s.bufPos >= len(s.buffer) && len(s.stack) == 1 && s.stack[0] == s.rootIdx
}

// BufferEmpty reports whether every token has been shifted off the
// buffer.
func (s *State) BufferEmpty() bool {
	return s.bufPos >= len(s.buffer)
}

// StackTop returns the arena index of the stack top, and whether the
// stack is non-empty (it always is, by construction — ROOT never
// leaves the stack until termination — but callers check anyway for
// symmetry with bufferFront).
func (s *State) StackTop() (int, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	return s.stack[len(s.stack)-1], true
}

func (s *State) stackTopHasHead() bool {
	top, ok := s.StackTop()
	return ok && s.arena[top].head != noHead
}

func (s *State) bufferAt(offset int) (int, bool) {
	i := s.bufPos + offset
	if i < 0 || i >= len(s.buffer) {
		return 0, false
	}
	return s.buffer[i], true
}

// History returns the transitions applied so far, in order.
func (s *State) History() []Transition {
	return s.transitions
}

// node accessors used by storeResult.

func (s *State) nodeAt(idx int) *node {
	return &s.arena[idx]
}

// ---- feature.Config implementation ----
//
// Each accessor below mirrors one atomic feature from spec.md §4.3,
// reading straight off the current configuration the way the original
// FeatureTemplate read straight off its own State.

func (s *State) STw() string {
	top, ok := s.StackTop()
	if !ok {
		return feature.RootTerm
	}
	return s.arena[top].term
}

func (s *State) STt() string {
	top, ok := s.StackTop()
	if !ok {
		return feature.RootTag
	}
	return s.arena[top].tag
}

func (s *State) N0w() string {
	i, ok := s.bufferAt(0)
	if !ok {
		return feature.NullTag
	}
	return s.arena[i].term
}

func (s *State) N0t() string {
	i, ok := s.bufferAt(0)
	if !ok {
		return feature.NullTag
	}
	return s.arena[i].tag
}

func (s *State) N1w() string {
	i, ok := s.bufferAt(1)
	if !ok {
		return feature.NullTag
	}
	return s.arena[i].term
}

func (s *State) N1t() string {
	i, ok := s.bufferAt(1)
	if !ok {
		return feature.NullTag
	}
	return s.arena[i].tag
}

func (s *State) N2t() string {
	i, ok := s.bufferAt(2)
	if !ok {
		return feature.NullTag
	}
	return s.arena[i].tag
}

func (s *State) STPt() string {
	top, ok := s.StackTop()
	if !ok {
		return feature.NullTag
	}
	head := s.arena[top].head
	if head == noHead {
		return feature.NullTag
	}
	return s.arena[head].tag
}

func (s *State) STLCt() string {
	top, ok := s.StackTop()
	if !ok {
		return feature.NullTag
	}
	c, ok := s.arena[top].leftmostChild()
	if !ok {
		return feature.NullTag
	}
	return s.arena[c].tag
}

func (s *State) STRCt() string {
	top, ok := s.StackTop()
	if !ok {
		return feature.NullTag
	}
	c, ok := s.arena[top].rightmostChild()
	if !ok {
		return feature.NullTag
	}
	return s.arena[c].tag
}

func (s *State) N0LCt() string {
	i, ok := s.bufferAt(0)
	if !ok {
		return feature.NullTag
	}
	c, ok := s.arena[i].leftmostChild()
	if !ok {
		return feature.NullTag
	}
	return s.arena[c].tag
}

func (s *State) N0RCt() string {
	i, ok := s.bufferAt(0)
	if !ok {
		return feature.NullTag
	}
	c, ok := s.arena[i].rightmostChild()
	if !ok {
		return feature.NullTag
	}
	return s.arena[c].tag
}
