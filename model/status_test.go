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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusKinds(t *testing.T) {
	assert.Equal(t, KindIO, IOError("x", nil).Kind())
	assert.Equal(t, KindCorruption, Corruption("x").Kind())
	assert.Equal(t, KindRuntime, RuntimeError("x").Kind())
	assert.Equal(t, KindOK, (*Status)(nil).Kind())
}

func TestStatusWrapsUnderlyingError(t *testing.T) {
	inner := errors.New("disk full")
	s := IOError("could not load artifact", inner)
	assert.ErrorIs(t, s, inner)
	assert.Contains(t, s.Error(), "disk full")
}

func TestKindOfDefaultsToIOForForeignErrors(t *testing.T) {
	assert.Equal(t, KindIO, KindOf(errors.New("not ours")))
	assert.Equal(t, KindOK, KindOf(nil))
}
