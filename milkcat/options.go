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

// Package milkcat is the public facade tying the segmenter, tagger and
// dependency parser together into a single Parse call over arbitrary
// input text (spec.md §6 "Public surface").
package milkcat

// SegmenterChoice selects the segmentation strategy (spec.md §6).
type SegmenterChoice int

const (
	SegmenterMixed SegmenterChoice = iota
	SegmenterCRF
	SegmenterUnigram
	SegmenterBigram
)

// TaggerChoice selects the POS-tagging strategy (spec.md §6).
type TaggerChoice int

const (
	TaggerMixed TaggerChoice = iota
	TaggerHMM
	TaggerCRF
	TaggerNone
)

// DependencyParserChoice enables or disables the dependency parser
// stage (spec.md §6).
type DependencyParserChoice int

const (
	DependencyParserArcEager DependencyParserChoice = iota
	DependencyParserNone
)

// Options configures a Parser (spec.md §6).
type Options struct {
	Segmenter        SegmenterChoice
	Tagger           TaggerChoice
	DependencyParser DependencyParserChoice

	// BeamWidth controls the dependency parser's search width. Only 1
	// (fully deterministic, greedy arg-max) is currently supported; any
	// other value is rejected with a RuntimeError at Parser
	// construction time (SPEC_FULL.md §9 — no beam-search re-ranking is
	// implemented, out of scope per spec.md §1).
	BeamWidth int
}

// DefaultOptions returns the Options a caller gets without customizing
// anything: mixed segmentation, mixed tagging, arc-eager dependency
// parsing, beam width 1.
func DefaultOptions() Options {
	return Options{
		Segmenter:        SegmenterMixed,
		Tagger:           TaggerMixed,
		DependencyParser: DependencyParserArcEager,
		BeamWidth:        1,
	}
}
