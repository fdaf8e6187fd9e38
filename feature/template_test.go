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

package feature

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConfig is a fixed Config stand-in so template rendering can be
// tested without a real depparse.State.
type fakeConfig struct{}

func (fakeConfig) STw() string   { return "爱" }
func (fakeConfig) STt() string   { return "VV" }
func (fakeConfig) N0w() string   { return "你" }
func (fakeConfig) N0t() string   { return "PN" }
func (fakeConfig) N1w() string   { return "" }
func (fakeConfig) N1t() string   { return NullTag }
func (fakeConfig) N2t() string   { return NullTag }
func (fakeConfig) STPt() string  { return RootTag }
func (fakeConfig) STLCt() string { return NullTag }
func (fakeConfig) STRCt() string { return NullTag }
func (fakeConfig) N0LCt() string { return NullTag }
func (fakeConfig) N0RCt() string { return NullTag }

func TestTemplateExtractSubstitutesAtomicFeatures(t *testing.T) {
	tmpl, err := New([]string{"[STw]-[N0t]", "tag=[STt]"})
	if err != nil {
		t.Fatal(err)
	}

	var set Set
	if err := tmpl.Extract(fakeConfig{}, &set); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"爱-PN", "tag=VV"}, set.Slice())
}

func TestTemplateExtractUnknownNameIsCorruption(t *testing.T) {
	tmpl, err := New([]string{"[bogus]"})
	if err != nil {
		t.Fatal(err)
	}
	var set Set
	err = tmpl.Extract(fakeConfig{}, &set)
	assert.Error(t, err)
}

func TestTemplateExtractUnclosedBracketIsCorruption(t *testing.T) {
	tmpl, err := New([]string{"[STw"})
	if err != nil {
		t.Fatal(err)
	}
	var set Set
	err = tmpl.Extract(fakeConfig{}, &set)
	assert.Error(t, err)
}

func TestTemplateLinesReturnsCompiledSource(t *testing.T) {
	lines := []string{"[STw]", "[N0t]"}
	tmpl, err := New(lines)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, lines, tmpl.Lines())
}

func TestSetAddEnforcesSizeBound(t *testing.T) {
	var set Set
	err := set.Add(strings.Repeat("x", MaxFeatureSize+1))
	assert.Error(t, err)
}

func TestSetAddEnforcesCountBound(t *testing.T) {
	var set Set
	for i := 0; i < MaxFeatures; i++ {
		if err := set.Add("f"); err != nil {
			t.Fatal(err)
		}
	}
	assert.Error(t, set.Add("overflow"))
}
