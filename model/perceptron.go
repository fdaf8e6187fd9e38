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

// Perceptron is a linear multi-class averaged-perceptron classifier over
// sparse string features: exactly the scoring contract spec.md §4.5
// requires of the dependency transition scorer. Training is out of this
// module's scope (spec.md §1).
type Perceptron struct {
	// classes names the model's class space, in the order weight rows
	// are stored. The depparse package maps each name to a Transition
	// (e.g. "SHIFT", "REDUCE", "LEFT_ARC:nsubj", "RIGHT_ARC:dobj"): the
	// Cartesian enumeration of the transition alphabet, spec.md §4.4/§9.
	classes []string

	// weights[feature] is a per-class weight row, length len(classes).
	weights map[string][]float32
}

// Classes returns the model's class-name vocabulary, in load order.
func (p *Perceptron) Classes() []string {
	return p.classes
}

// NumClasses reports the size of the model's class space.
func (p *Perceptron) NumClasses() int {
	return len(p.classes)
}

// Score adds up, for every class, the weights of the given features;
// absent features contribute nothing.
func (p *Perceptron) Score(features []string) []float32 {
	scores := make([]float32, len(p.classes))
	for _, f := range features {
		row, ok := p.weights[f]
		if !ok {
			continue
		}
		for c, w := range row {
			scores[c] += w
		}
	}
	return scores
}

// BestClass returns the highest-scoring class id among those with
// legal[c] == true, breaking ties by the smaller class id (spec.md
// §4.5). It returns -1 if no class is legal.
func (p *Perceptron) BestClass(features []string, legal []bool) int {
	scores := p.Score(features)
	best := -1
	var bestScore float32
	for c, ok := range legal {
		if !ok || c >= len(scores) {
			continue
		}
		if best == -1 || scores[c] > bestScore {
			best = c
			bestScore = scores[c]
		}
	}
	return best
}

// LoadPerceptronModel reads a perceptron weight file with the given
// filename prefix (spec.md §6: "ctb5_dep" is a prefix, not a single
// file) by opening "<prefix>.weights":
//
//	line 1: class names, space-separated (mirrors LoadCRFModel's label line)
//	remaining lines: "feature\tw0 w1 ... w(numClasses-1)"
func LoadPerceptronModel(prefix string) (*Perceptron, error) {
	path := prefix + ".weights"
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(fmt.Sprintf("failed to open perceptron model %s", path), err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, Corruption(fmt.Sprintf("perceptron model %s is empty", path))
	}
	classes := strings.Fields(sc.Text())
	numClasses := len(classes)
	if numClasses == 0 {
		return nil, Corruption(fmt.Sprintf("perceptron model %s: no classes", path))
	}

	weights := make(map[string][]float32)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return nil, Corruption(fmt.Sprintf("perceptron model %s: malformed line %q", path, line))
		}
		fields := strings.Fields(line[tab+1:])
		if len(fields) != numClasses {
			return nil, Corruption(fmt.Sprintf(
				"perceptron model %s: feature %q has %d weights, want %d",
				path, line[:tab], len(fields), numClasses))
		}
		row := make([]float32, numClasses)
		for i, s := range fields {
			v, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return nil, Corruption(fmt.Sprintf("perceptron model %s: bad weight %q", path, s))
			}
			row[i] = float32(v)
		}
		weights[line[:tab]] = row
	}
	if err := sc.Err(); err != nil {
		return nil, IOError(fmt.Sprintf("failed to read perceptron model %s", path), err)
	}

	return &Perceptron{classes: classes, weights: weights}, nil
}
