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

// Package feature renders a dependency-parser configuration into the
// sparse string features the perceptron scorer consumes.
package feature

import "fmt"

const (
	// MaxFeatures bounds the number of feature strings a single
	// extraction may produce (one per template line).
	MaxFeatures = 50

	// MaxFeatureSize bounds the byte length of a single rendered
	// feature string.
	MaxFeatureSize = 1000
)

// Set is a bounded collection of feature strings built by one
// FeatureTemplate.Extract call.
type Set struct {
	features []string
}

// Add appends f to the set. It is a Corruption-class error for the
// caller's template to overflow MaxFeatures or MaxFeatureSize; this
// mirrors the original hard compile-time bounds, kept here as runtime
// checks since Go has no fixed-size char buffers to overflow into.
func (s *Set) Add(f string) error {
	if len(s.features) >= MaxFeatures {
		return fmt.Errorf("feature set exceeds %d features", MaxFeatures)
	}
	if len(f) > MaxFeatureSize {
		return fmt.Errorf("feature exceeds %d bytes: %q", MaxFeatureSize, f)
	}
	s.features = append(s.features, f)
	return nil
}

// Slice returns the accumulated feature strings.
func (s *Set) Slice() []string {
	return s.features
}

// Len reports the number of features accumulated so far.
func (s *Set) Len() int {
	return len(s.features)
}
