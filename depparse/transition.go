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

import "strings"

// Kind is the arc-eager transition alphabet (spec.md §4.4).
type Kind int

const (
	Shift Kind = iota
	LeftArc
	RightArc
	Reduce
)

// Transition is one move of the arc-eager system. Label is set only
// for LeftArc/RightArc.
type Transition struct {
	Kind  Kind
	Label string
}

const (
	leftArcPrefix  = "LEFT_ARC:"
	rightArcPrefix = "RIGHT_ARC:"
)

// String renders a Transition the way a perceptron model's class
// vocabulary names it (model.Perceptron.Classes()).
func (t Transition) String() string {
	switch t.Kind {
	case Shift:
		return "SHIFT"
	case Reduce:
		return "REDUCE"
	case LeftArc:
		return leftArcPrefix + t.Label
	case RightArc:
		return rightArcPrefix + t.Label
	default:
		return "?"
	}
}

// ParseTransition decodes a class name produced by String back into a
// Transition.
func ParseTransition(class string) (Transition, bool) {
	switch {
	case class == "SHIFT":
		return Transition{Kind: Shift}, true
	case class == "REDUCE":
		return Transition{Kind: Reduce}, true
	case strings.HasPrefix(class, leftArcPrefix):
		return Transition{Kind: LeftArc, Label: class[len(leftArcPrefix):]}, true
	case strings.HasPrefix(class, rightArcPrefix):
		return Transition{Kind: RightArc, Label: class[len(rightArcPrefix):]}, true
	default:
		return Transition{}, false
	}
}

// Legal reports whether t may be applied to s (spec.md §4.4's
// preconditions).
func (t Transition) Legal(s *State) bool {
	switch t.Kind {
	case Shift:
		return !s.BufferEmpty()
	case LeftArc:
		top, ok := s.StackTop()
		if !ok || top == s.rootIdx {
			return false
		}
		return s.arena[top].head == noHead && !s.BufferEmpty()
	case RightArc:
		_, stackOK := s.StackTop()
		return stackOK && !s.BufferEmpty()
	case Reduce:
		return s.stackTopHasHead()
	default:
		return false
	}
}

// Apply performs t on s. Callers are expected to have already checked
// Legal; Apply does not re-validate preconditions.
func (t Transition) Apply(s *State) {
	switch t.Kind {
	case Shift:
		front, _ := s.bufferAt(0)
		s.bufPos++
		s.stack = append(s.stack, front)

	case LeftArc:
		top, _ := s.StackTop()
		front, _ := s.bufferAt(0)
		s.arena[top].head = front
		s.arena[top].label = t.Label
		s.arena[front].attachChild(top, true)
		s.stack = s.stack[:len(s.stack)-1]

	case RightArc:
		top, _ := s.StackTop()
		front, _ := s.bufferAt(0)
		s.arena[front].head = top
		s.arena[front].label = t.Label
		s.arena[top].attachChild(front, false)
		s.bufPos++
		s.stack = append(s.stack, front)

	case Reduce:
		s.stack = s.stack[:len(s.stack)-1]
	}
	s.transitions = append(s.transitions, t)
}
