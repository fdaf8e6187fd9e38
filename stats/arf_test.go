// Copyright 2019 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2019 Charles University, Faculty of Arts,
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

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestARFCalculatorEvenlyDistributed(t *testing.T) {
	// "A" at every other position across 4 tokens: maximally dispersed,
	// so its ARF should be close to its raw count.
	c := NewARFCalculator(4)
	c.AddOccurrence("A")
	c.AddOccurrence("B")
	c.AddOccurrence("A")
	c.AddOccurrence("B")

	res := c.Finalize()
	assert.Equal(t, 2, res["A"].Count)
	assert.Equal(t, 2, res["B"].Count)
	assert.Greater(t, res["A"].ARF, 0.0)
}

func TestARFCalculatorClusteredLowerThanDispersed(t *testing.T) {
	clustered := NewARFCalculator(6)
	clustered.AddOccurrence("X")
	clustered.AddOccurrence("X")
	clustered.AddOccurrence("Y")
	clustered.AddOccurrence("Y")
	clustered.AddOccurrence("Y")
	clustered.AddOccurrence("Y")

	dispersed := NewARFCalculator(6)
	dispersed.AddOccurrence("X")
	dispersed.AddOccurrence("Y")
	dispersed.AddOccurrence("X")
	dispersed.AddOccurrence("Y")
	dispersed.AddOccurrence("Y")
	dispersed.AddOccurrence("Y")

	clusteredRes := clustered.Finalize()
	dispersedRes := dispersed.Finalize()
	assert.Equal(t, 2, clusteredRes["X"].Count)
	assert.Equal(t, 2, dispersedRes["X"].Count)
	assert.LessOrEqual(t, clusteredRes["X"].ARF, dispersedRes["X"].ARF)
}
