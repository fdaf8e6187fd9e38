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

// RootHeadIndex is the distinguished head index meaning "this token's
// head is the synthetic ROOT". It is the value -1, never a valid
// token index.
const RootHeadIndex = -1

// DefaultRootLabel is attached to a token whose head is still unset at
// termination (spec.md §4.4's "typical convention").
const DefaultRootLabel = "HED"

// TreeInstance is the dependency-parse output for one sentence: for
// each token position, its head's token index (or RootHeadIndex) and
// its dependency label (spec.md §3 "Output").
type TreeInstance struct {
	Head  []int
	Label []string
}

// Len reports the sentence length.
func (t *TreeInstance) Len() int {
	return len(t.Head)
}
