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

// Package segment turns raw UTF-8 text into a TermInstance: the ordered
// sequence of surface-form tokens the POS tagger and dependency parser
// consume.
package segment

import "github.com/kasuganosora/milkcat-go/ud"

// WordType classifies a token's surface form. The integer coding is
// fixed and stable across versions (spec.md §6).
type WordType int

const (
	Chinese WordType = iota
	English
	Number
	Symbol
	Punctuation
	Other
)

func (t WordType) String() string {
	switch t {
	case Chinese:
		return "Chinese"
	case English:
		return "English"
	case Number:
		return "Number"
	case Symbol:
		return "Symbol"
	case Punctuation:
		return "Punctuation"
	case Other:
		return "Other"
	default:
		return "Unknown"
	}
}

// Token is one surface-form unit of a TermInstance.
type Token struct {
	Surface string
	Type    WordType

	// OOV reports whether the segmenter found no dictionary entry
	// covering this token (spec.md §3 "OOV").
	OOV bool
	// OOVFeats decodes the OOVProperty trie's class id for this
	// token's leading rune (SPEC_FULL.md §4.10). Always empty when
	// OOV is false, or when the segmenter was not given a
	// ModelContainer exposing an OOVProperty trie.
	OOVFeats ud.FeatList
}

// TermInstance is an ordered sequence of tokens produced by a
// Segmenter (spec.md §3).
type TermInstance struct {
	Tokens []Token
}

// Len reports the number of tokens.
func (t *TermInstance) Len() int {
	return len(t.Tokens)
}

// Surface returns the surface form at i.
func (t *TermInstance) Surface(i int) string {
	return t.Tokens[i].Surface
}
