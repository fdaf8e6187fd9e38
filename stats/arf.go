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
	"fmt"
	"math"
)

// Average reduced frequency (ARF) measures how evenly an item's
// occurrences are spread across a corpus, rather than raw frequency
// alone. See e.g. https://www.sketchengine.eu/documentation/average-reduced-frequency/
//
// Adapted from ptcount/arf.go's two-pass ARF calculator: the original
// tracked dispersion of word/ngram occurrences across a vertical
// corpus; here the same running-distance accumulation tracks
// dispersion of POS tags and dependency labels across a batch of
// parsed sentences (SPEC_FULL.md's DOMAIN STACK expansion).

// minf returns the smaller of a running average distance and an
// actual integer distance (ptcount/arf.go's min, renamed to avoid
// shadowing the builtin min).
func minf(avg float64, actual int) float64 {
	if avg < float64(actual) {
		return avg
	}
	return float64(actual)
}

// runningARF accumulates the state ptcount.WordARF held per ngram:
// the running ARF sum, the index of the item's first occurrence, and
// the index of its most recent occurrence.
type runningARF struct {
	arf        float64
	firstIdx   int
	prevIdx    int
	count      int
}

func (r runningARF) String() string {
	return fmt.Sprintf("runningARF{arf: %.2f, first: %d, prev: %d, count: %d}",
		r.arf, r.firstIdx, r.prevIdx, r.count)
}

// ARFCalculator computes dispersion (ARF) for string-keyed items —
// POS tags or dependency labels — across a stream of token positions
// fed in corpus order via AddOccurrence.
type ARFCalculator struct {
	counts    map[string]*runningARF
	numTokens int
	pos       int
}

// NewARFCalculator returns a calculator. numTokens is the total token
// count of the corpus the calculator will be fed (needed to normalize
// the final ARF value, same as ptcount.NewARFCalculator's numTokens).
func NewARFCalculator(numTokens int) *ARFCalculator {
	return &ARFCalculator{
		counts:    make(map[string]*runningARF),
		numTokens: numTokens,
	}
}

// AddOccurrence records one occurrence of key (a POS tag or dependency
// label) at the next corpus-wide token position. Call once per token,
// in corpus order.
func (c *ARFCalculator) AddOccurrence(key string) {
	idx := c.pos
	c.pos++

	r, ok := c.counts[key]
	if !ok {
		r = &runningARF{firstIdx: idx, prevIdx: -1}
		c.counts[key] = r
	}
	r.count++
	if r.prevIdx > -1 {
		r.arf += minf(float64(c.numTokens)/float64(r.count), idx-r.prevIdx)
	}
	r.prevIdx = idx
}

// Result is the finalized ARF and raw occurrence count for one key.
type Result struct {
	Count int
	ARF   float64
}

// Finalize closes the running accumulation (the "wrap around" term
// ptcount.ARFCalculator.Finalize adds once the whole corpus has been
// seen) and returns the per-key results.
func (c *ARFCalculator) Finalize() map[string]Result {
	ans := make(map[string]Result, len(c.counts))
	for key, r := range c.counts {
		avgDist := float64(c.numTokens) / float64(r.count)
		arf := r.arf + minf(avgDist, r.firstIdx+c.numTokens-r.prevIdx)
		ans[key] = Result{
			Count: r.count,
			ARF:   math.Round(arf/avgDist*1000) / 1000.0,
		}
	}
	return ans
}
