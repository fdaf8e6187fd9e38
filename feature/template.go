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

	"github.com/kasuganosora/milkcat-go/model"
)

// RootTerm and RootTag are the sentinels substituted for a stack-top
// accessor when the stack holds only the synthetic ROOT node.
const (
	RootTerm = "ROOT"
	RootTag  = "ROOT"
)

// NullTag is the sentinel substituted for a child/buffer accessor that
// has nothing to report (an absent child, or a buffer position past
// the end of the sentence).
const NullTag = "NULL"

// atomicNames is the fixed feature-template vocabulary (spec.md §4.3).
// Order matches Config's method set below.
var atomicNames = []string{
	"STw", "STt", "N0w", "N0t", "N1w", "N1t", "N2t",
	"STPt", "STLCt", "STRCt", "N0LCt", "N0RCt",
}

// Config exposes the twelve atomic features of a parser configuration.
// depparse.State implements this directly, the same way the original
// DependencyParser::FeatureTemplate read straight off its own State.
type Config interface {
	STw() string
	STt() string
	N0w() string
	N0t() string
	N1w() string
	N1t() string
	N2t() string
	STPt() string
	STLCt() string
	STRCt() string
	N0LCt() string
	N0RCt() string
}

// Template is a compiled feature template: an ordered list of lines,
// each a mix of literal text and [NAME] substitutions into one of the
// twelve atomic features.
type Template struct {
	lines []string
	index *model.Trie
}

// New compiles lines (one template per line, already trimmed and
// non-empty) into a Template. An internal trie resolves [NAME]
// references against the fixed atomic-feature vocabulary, exactly as
// the original built a double-array trie over the same twelve names.
func New(lines []string) (*Template, error) {
	entries := make(map[string]int, len(atomicNames))
	for i, name := range atomicNames {
		entries[name] = i
	}
	return &Template{
		lines: append([]string(nil), lines...),
		index: model.NewTrieFromMap(entries),
	}, nil
}

func atomicValue(cfg Config, id int) string {
	switch id {
	case 0:
		return cfg.STw()
	case 1:
		return cfg.STt()
	case 2:
		return cfg.N0w()
	case 3:
		return cfg.N0t()
	case 4:
		return cfg.N1w()
	case 5:
		return cfg.N1t()
	case 6:
		return cfg.N2t()
	case 7:
		return cfg.STPt()
	case 8:
		return cfg.STLCt()
	case 9:
		return cfg.STRCt()
	case 10:
		return cfg.N0LCt()
	case 11:
		return cfg.N0RCt()
	default:
		return ""
	}
}

// Extract renders every template line against cfg's current atomic
// features and appends the results to set. An unclosed '[' or an
// unknown name inside it is a Corruption error (spec.md §4.3).
func (t *Template) Extract(cfg Config, set *Set) error {
	cached := make([]string, len(atomicNames))
	for i := range atomicNames {
		cached[i] = atomicValue(cfg, i)
	}

	for _, line := range t.lines {
		var b strings.Builder
		i := 0
		for i < len(line) {
			c := line[i]
			if c != '[' {
				b.WriteByte(c)
				i++
				continue
			}
			end := strings.IndexByte(line[i+1:], ']')
			if end < 0 {
				return model.Corruption("Template file corrupted.")
			}
			name := line[i+1 : i+1+end]
			id := t.index.Search(name, len(name))
			if id < 0 {
				return model.Corruption("Template file corrupted.")
			}
			b.WriteString(cached[id])
			i += end + 2
		}
		if err := set.Add(b.String()); err != nil {
			return model.Corruption(err.Error())
		}
	}
	return nil
}

// Lines returns the compiled template's raw source lines.
func (t *Template) Lines() []string {
	return t.lines
}
