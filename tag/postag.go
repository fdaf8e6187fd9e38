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

// Package tag assigns a part-of-speech tag to each token of a
// TermInstance, producing a PartOfSpeechTagInstance of the same length
// (spec.md §3).
package tag

// Instance is an ordered sequence of POS tag strings, same length as
// the TermInstance it was tagged from.
type Instance struct {
	Tags []string
}

// Len reports the number of tags.
func (i *Instance) Len() int {
	return len(i.Tags)
}

// Tag returns the tag at position idx.
func (i *Instance) Tag(idx int) string {
	return i.Tags[idx]
}
