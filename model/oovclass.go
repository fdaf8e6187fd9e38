// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
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

package model

import "github.com/kasuganosora/milkcat-go/ud"

// oovClassFeats maps an oov_property.idx class id to the morphological
// feature bundle it stands for. LoadTrieFile already treats the trie's
// on-disk encoding as ours to define (it is an external collaborator
// format per spec.md §6); this table is the other half of that
// definition, the part that gives a class id meaning.
var oovClassFeats = []string{
	0: "",
	1: "NumType=Card",
	2: "Foreign=Yes|Script=Latn",
	3: "Foreign=Yes|Script=Latn|NumType=Card",
	4: "Punct=Yes",
}

// DecodeOOVClass parses the feature bundle for an OOVProperty trie
// class id. A class id outside the known table decodes to an empty
// FeatList rather than an error, since a model directory may carry
// classes this code predates.
func DecodeOOVClass(classID int) (ud.FeatList, error) {
	if classID < 0 || classID >= len(oovClassFeats) || oovClassFeats[classID] == "" {
		return ud.FeatList{}, nil
	}
	return ud.ParseFeats(oovClassFeats[classID])
}
