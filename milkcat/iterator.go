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

package milkcat

import (
	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/ud"
)

type iterToken struct {
	surface  string
	tag      string
	wtype    segment.WordType
	head     int
	label    string
	begin    bool
	stopword bool
	oovFeats ud.FeatList
}

// Iterator is a forward-only view over a Parser.Parse result: one
// token at a time, across sentence boundaries, mirroring
// `mc_parseriter_t` in the collaborator C API (spec.md §6).
type Iterator struct {
	tokens []iterToken
	pos    int
}

// Next advances to the next token, returning false once exhausted.
func (it *Iterator) Next() bool {
	if it.pos+1 >= len(it.tokens) {
		return false
	}
	it.pos++
	return true
}

// Surface returns the current token's surface form.
func (it *Iterator) Surface() string {
	return it.tokens[it.pos].surface
}

// Tag returns the current token's POS tag.
func (it *Iterator) Tag() string {
	return it.tokens[it.pos].tag
}

// WordType returns the current token's category.
func (it *Iterator) WordType() segment.WordType {
	return it.tokens[it.pos].wtype
}

// Head returns the current token's dependency head index, or
// depparse.RootHeadIndex if the parser was not run or the token
// attaches to ROOT.
func (it *Iterator) Head() int {
	return it.tokens[it.pos].head
}

// Label returns the current token's dependency label, or "" if the
// dependency parser was not run.
func (it *Iterator) Label() string {
	return it.tokens[it.pos].label
}

// IsBeginOfSentence reports whether the current token starts a new
// sentence.
func (it *Iterator) IsBeginOfSentence() bool {
	return it.tokens[it.pos].begin
}

// IsStopword reports whether the current token's surface form is
// present in the model's stopword trie (spec.md §6 `stopword.idx`).
func (it *Iterator) IsStopword() bool {
	return it.tokens[it.pos].stopword
}

// OOVFeats returns the current token's decoded OOV-class feature
// bundle (SPEC_FULL.md §4.10), or an empty FeatList for an
// in-dictionary token.
func (it *Iterator) OOVFeats() ud.FeatList {
	return it.tokens[it.pos].oovFeats
}
