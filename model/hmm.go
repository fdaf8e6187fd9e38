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
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// HMMModel is a hidden Markov model for POS tagging: tag transition
// probabilities, and per-word emission probabilities. Training is out
// of this module's scope (spec.md §1); this exposes only what the
// tagger collaborator needs to run Viterbi decoding.
type HMMModel struct {
	Tags []string

	// transition[i][j] = log P(tag_j | tag_i), indexed by position in Tags.
	transition [][]float64

	// initial[i] = log P(tag_i | sentence start)
	initial []float64

	// emission[tag][word] = log P(word | tag). Missing entries are
	// treated as a fixed OOV log-probability (emissionFloor).
	emission      map[string]map[string]float64
	emissionFloor float64
}

const defaultEmissionFloor = -20.0

// TagIndex returns the index of tag within Tags, or -1.
func (m *HMMModel) TagIndex(tag string) int {
	for i, t := range m.Tags {
		if t == tag {
			return i
		}
	}
	return -1
}

// Initial returns log P(tag) at sentence start.
func (m *HMMModel) Initial(tagIdx int) float64 {
	if tagIdx < 0 || tagIdx >= len(m.initial) {
		return math.Inf(-1)
	}
	return m.initial[tagIdx]
}

// Transition returns log P(to | from).
func (m *HMMModel) Transition(from, to int) float64 {
	if from < 0 || from >= len(m.transition) || to < 0 || to >= len(m.transition[from]) {
		return math.Inf(-1)
	}
	return m.transition[from][to]
}

// Emission returns log P(word | tag).
func (m *HMMModel) Emission(tag, word string) float64 {
	if byWord, ok := m.emission[tag]; ok {
		if p, ok := byWord[word]; ok {
			return p
		}
	}
	return m.emissionFloor
}

// LoadHMMModel reads an HMM model file:
//
//	line 1: tags, space-separated
//	line 2: initial log-probabilities, space-separated, aligned to tags
//	next len(tags) lines: transition log-probabilities, one row per "from" tag
//	remaining lines: "tag\tword\tlogprob" emissions
func LoadHMMModel(path string) (*HMMModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open HMM model %s", path), err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, Corruption(fmt.Sprintf("HMM model %s is empty", path))
	}
	tags := strings.Fields(sc.Text())
	if len(tags) == 0 {
		return nil, Corruption(fmt.Sprintf("HMM model %s has no tags", path))
	}

	if !sc.Scan() {
		return nil, Corruption(fmt.Sprintf("HMM model %s: missing initial probabilities", path))
	}
	initial, err := parseFloatRow(sc.Text(), len(tags))
	if err != nil {
		return nil, Corruption(fmt.Sprintf("HMM model %s: bad initial row: %s", path, err))
	}

	transition := make([][]float64, len(tags))
	for i := range tags {
		if !sc.Scan() {
			return nil, Corruption(fmt.Sprintf("HMM model %s: missing transition row %d", path, i))
		}
		row, err := parseFloatRow(sc.Text(), len(tags))
		if err != nil {
			return nil, Corruption(fmt.Sprintf("HMM model %s: bad transition row %d: %s", path, i, err))
		}
		transition[i] = row
	}

	emission := make(map[string]map[string]float64)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, Corruption(fmt.Sprintf("HMM model %s: malformed emission line %q", path, line))
		}
		p, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, Corruption(fmt.Sprintf("HMM model %s: bad emission prob %q", path, parts[2]))
		}
		byWord, ok := emission[parts[0]]
		if !ok {
			byWord = make(map[string]float64)
			emission[parts[0]] = byWord
		}
		byWord[parts[1]] = p
	}
	if err := sc.Err(); err != nil {
		return nil, IOError(fmt.Sprintf("failed to read HMM model %s", path), err)
	}

	return &HMMModel{
		Tags:          tags,
		transition:    transition,
		initial:       initial,
		emission:      emission,
		emissionFloor: defaultEmissionFloor,
	}, nil
}

func parseFloatRow(line string, want int) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(fields))
	}
	row := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float %q", f)
		}
		row[i] = v
	}
	return row, nil
}
