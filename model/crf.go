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
	"os"
	"strconv"
	"strings"
)

// CRFModel is a linear-chain conditional random field: a set of
// per-label feature weights. Training and the exact feature-function
// language a CRF toolkit would use are out of this module's scope
// (spec.md §1) — this is the read-only scoring contract the segmenter
// and POS tagger collaborators need: given a feature string and a
// candidate label, a weight.
type CRFModel struct {
	labels  []string
	weights map[string]map[string]float32 // feature -> label -> weight
}

// Labels returns the model's label vocabulary, in load order.
func (m *CRFModel) Labels() []string {
	return m.labels
}

// Score sums the weights of feature/label pairs found in the model; an
// absent feature contributes 0 (the usual CRF sparse-feature
// convention).
func (m *CRFModel) Score(features []string, label string) float32 {
	var total float32
	for _, f := range features {
		if byLabel, ok := m.weights[f]; ok {
			total += byLabel[label]
		}
	}
	return total
}

// BestLabel returns the label maximizing Score(features, label), and
// that score.
func (m *CRFModel) BestLabel(features []string) (string, float32) {
	var best string
	var bestScore float32
	first := true
	for _, label := range m.labels {
		s := m.Score(features, label)
		if first || s > bestScore {
			best = label
			bestScore = s
			first = false
		}
	}
	return best, bestScore
}

// LoadCRFModel reads a CRF model file: a first line listing labels
// space-separated, then one "feature\tlabel\tweight" line per weight.
func LoadCRFModel(path string) (*CRFModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open CRF model %s", path), err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, Corruption(fmt.Sprintf("CRF model %s is empty", path))
	}
	labels := strings.Fields(sc.Text())
	if len(labels) == 0 {
		return nil, Corruption(fmt.Sprintf("CRF model %s has no labels", path))
	}

	m := &CRFModel{labels: labels, weights: make(map[string]map[string]float32)}
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, Corruption(fmt.Sprintf("CRF model %s: malformed weight line %q", path, line))
		}
		w, err := strconv.ParseFloat(parts[2], 32)
		if err != nil {
			return nil, Corruption(fmt.Sprintf("CRF model %s: bad weight %q", path, parts[2]))
		}
		byLabel, ok := m.weights[parts[0]]
		if !ok {
			byLabel = make(map[string]float32)
			m.weights[parts[0]] = byLabel
		}
		byLabel[parts[1]] = float32(w)
	}
	if err := sc.Err(); err != nil {
		return nil, IOError(fmt.Sprintf("failed to read CRF model %s", path), err)
	}
	return m, nil
}
