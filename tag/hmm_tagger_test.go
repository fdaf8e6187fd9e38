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

package tag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/segment"
)

func TestNoneTaggerTagsEverythingWithSentinel(t *testing.T) {
	terms := &segment.TermInstance{Tokens: []segment.Token{
		{Surface: "我"}, {Surface: "爱"},
	}}
	inst, err := NoneTagger{}.Tag(terms)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"X", "X"}, inst.Tags)
}

func TestHMMTaggerPicksBestViterbiPath(t *testing.T) {
	dir := t.TempDir()
	content := "PN VV\n" +
		"-0.1 -5.0\n" +
		"-5.0 -0.1\n" +
		"-5.0 -5.0\n" +
		"PN\t我\t-0.1\n" +
		"VV\t爱\t-0.1\n"
	if err := os.WriteFile(filepath.Join(dir, "ctb_pos.hmm"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	container := model.Open(dir)
	tagger := NewHMMTagger(container)

	terms := &segment.TermInstance{Tokens: []segment.Token{
		{Surface: "我"}, {Surface: "爱"},
	}}
	inst, err := tagger.Tag(terms)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"PN", "VV"}, inst.Tags)
}

func TestHMMTaggerEmptyInput(t *testing.T) {
	dir := t.TempDir()
	content := "PN\n-0.1\n-0.1\nPN\t我\t-0.1\n"
	if err := os.WriteFile(filepath.Join(dir, "ctb_pos.hmm"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	tagger := NewHMMTagger(model.Open(dir))
	inst, err := tagger.Tag(&segment.TermInstance{})
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 0, inst.Len())
}
