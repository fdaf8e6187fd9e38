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

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetNormalizeFnKnownNames(t *testing.T) {
	fn, err := GetNormalizeFn("lowercase")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "abc", fn("ABC"))

	fn, err = GetNormalizeFn("identity")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "ABC", fn("ABC"))
}

func TestGetNormalizeFnUnknownName(t *testing.T) {
	_, err := GetNormalizeFn("bogus")
	assert.Error(t, err)
}

func TestNormalizeFullwidthFoldsToBasicLatin(t *testing.T) {
	fn, err := GetNormalizeFn("fullwidth")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "ABC 123", fn("ABC　１２３"))
}

func TestNormalizeFnNamesListsRegistry(t *testing.T) {
	names := NormalizeFnNames()
	assert.Contains(t, names, "identity")
	assert.Contains(t, names, "lowercase")
	assert.Contains(t, names, "fullwidth")
}
