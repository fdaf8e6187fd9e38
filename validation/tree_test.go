// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Charles University, Faculty of Arts,
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

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kasuganosora/milkcat-go/depparse"
)

func TestCheckTreeValidTree(t *testing.T) {
	v := &TreeValidator{}
	tree := &depparse.TreeInstance{
		Head:  []int{1, depparse.RootHeadIndex, 1},
		Label: []string{"nsubj", depparse.DefaultRootLabel, "dobj"},
	}
	err := v.CheckTree(0, tree)
	assert.NoError(t, err)
	assert.Empty(t, v.Errors)
}

func TestCheckTreeDetectsSelfHead(t *testing.T) {
	v := &TreeValidator{}
	tree := &depparse.TreeInstance{
		Head:  []int{0},
		Label: []string{"x"},
	}
	err := v.CheckTree(0, tree)
	assert.NoError(t, err)
	assert.Len(t, v.Errors, 1)
	assert.Contains(t, v.Errors[0].Reason, "own head")
}

func TestCheckTreeDetectsCycle(t *testing.T) {
	v := &TreeValidator{}
	tree := &depparse.TreeInstance{
		Head:  []int{1, 0},
		Label: []string{"a", "b"},
	}
	err := v.CheckTree(0, tree)
	assert.NoError(t, err)
	assert.NotEmpty(t, v.Errors)
}

func TestCheckTreeStopsAfterMaxErrors(t *testing.T) {
	v := &TreeValidator{MaxNumErrors: 1}
	bad := &depparse.TreeInstance{
		Head:  []int{0, 1},
		Label: []string{"x", "y"},
	}
	err := v.CheckTree(0, bad)
	assert.ErrorIs(t, err, ErrTooManyTreeErrors)
}
