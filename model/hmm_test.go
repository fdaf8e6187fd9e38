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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeHMMFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ctb_pos.hmm")
	content := "PN VV\n" +
		"-0.5 -1.5\n" +
		"-1.0 -0.5\n" +
		"-0.5 -1.0\n" +
		"PN\t我\t-0.1\n" +
		"VV\t爱\t-0.1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadHMMModel(t *testing.T) {
	m, err := LoadHMMModel(writeHMMFixture(t))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, []string{"PN", "VV"}, m.Tags)
	assert.Equal(t, 0, m.TagIndex("PN"))
	assert.Equal(t, 1, m.TagIndex("VV"))
	assert.Equal(t, -1, m.TagIndex("NN"))
	assert.Equal(t, -0.1, m.Emission("PN", "我"))
	assert.Equal(t, defaultEmissionFloor, m.Emission("PN", "unseen"))
}

func TestLoadHMMModelRejectsMismatchedRowWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hmm")
	content := "PN VV\n-0.5 -1.5\n-1.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHMMModel(path)
	assert.Error(t, err)
	assert.Equal(t, KindCorruption, KindOf(err))
}
