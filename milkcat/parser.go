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

package milkcat

import (
	"sync"

	"github.com/kasuganosora/milkcat-go/depparse"
	"github.com/kasuganosora/milkcat-go/feature"
	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/tag"
)

// Parser drives text through segmentation, tagging and (optionally)
// dependency parsing (spec.md §6's opaque `Parser` handle, §4.6
// expansion). A Parser is not safe for concurrent use by multiple
// goroutines at once — build one per goroutine from a shared Model.
type Parser struct {
	model *Model
	opts  Options

	segmenter *segment.Segmenter
	tagger    tag.Tagger
	depParser *depparse.Parser // nil if Options.DependencyParser == DependencyParserNone

	mu      sync.Mutex
	lastErr error
}

// NewParser builds a Parser over model with the given options. A
// BeamWidth other than 1 is rejected (SPEC_FULL.md §9).
func NewParser(m *Model, opts Options) (*Parser, error) {
	if opts.BeamWidth == 0 {
		opts.BeamWidth = 1
	}
	if opts.BeamWidth != 1 {
		return nil, model.RuntimeError("beam search is not implemented; BeamWidth must be 1")
	}

	p := &Parser{model: m, opts: opts}
	p.segmenter = newSegmenter(m.container, opts.Segmenter)
	p.tagger = newTagger(m.container, opts.Tagger)

	if opts.DependencyParser == DependencyParserArcEager {
		dp, err := newDependencyParser(m.container)
		if err != nil {
			return nil, err
		}
		p.depParser = dp
	}

	return p, nil
}

func newSegmenter(c *model.ModelContainer, choice SegmenterChoice) *segment.Segmenter {
	switch choice {
	case SegmenterUnigram:
		return segment.NewSegmenter(c, segment.Unigram)
	case SegmenterBigram, SegmenterCRF:
		return segment.NewSegmenter(c, segment.Bigram)
	default:
		return segment.NewSegmenter(c, segment.Mixed)
	}
}

func newTagger(c *model.ModelContainer, choice TaggerChoice) tag.Tagger {
	switch choice {
	case TaggerHMM:
		return tag.NewHMMTagger(c)
	case TaggerCRF:
		return tag.NewCRFTagger(c)
	case TaggerNone:
		return tag.NoneTagger{}
	default:
		return tag.NewMixedTagger(c)
	}
}

func newDependencyParser(c *model.ModelContainer) (*depparse.Parser, error) {
	perceptron, err := c.DependencyPerceptron()
	if err != nil {
		return nil, err
	}
	lines, err := c.DependencyTemplateLines()
	if err != nil {
		return nil, err
	}
	tmpl, err := feature.New(lines)
	if err != nil {
		return nil, err
	}
	scorer, err := depparse.NewScorer(perceptron, tmpl)
	if err != nil {
		return nil, err
	}
	return depparse.NewParser(scorer), nil
}

// Parse splits text into sentences and runs the configured pipeline
// over each, returning an Iterator over the concatenated result
// (spec.md §4.6 expansion).
func (p *Parser) Parse(text string) (*Iterator, error) {
	var tokens []iterToken

	stopword, err := p.model.container.Stopword()
	if err != nil {
		p.setLastError(err)
		return nil, err
	}

	sc := segment.NewSentenceScanner(text)
	for sc.Scan() {
		sentence := sc.Text()
		terms, err := p.segmenter.Segment(sentence)
		if err != nil {
			p.setLastError(err)
			return nil, err
		}
		if terms.Len() == 0 {
			continue
		}

		tags, err := p.tagger.Tag(terms)
		if err != nil {
			p.setLastError(err)
			return nil, err
		}

		var tree *depparse.TreeInstance
		if p.depParser != nil {
			tree, err = p.depParser.Parse(terms, tags)
			if err != nil {
				p.setLastError(err)
				return nil, err
			}
		}

		for i := 0; i < terms.Len(); i++ {
			tok := iterToken{
				surface:  terms.Surface(i),
				tag:      tags.Tag(i),
				wtype:    terms.Tokens[i].Type,
				begin:    i == 0,
				head:     depparse.RootHeadIndex,
				stopword: stopword.Contains(terms.Surface(i)),
				oovFeats: terms.Tokens[i].OOVFeats,
			}
			if tree != nil {
				tok.head = tree.Head[i]
				tok.label = tree.Label[i]
			}
			tokens = append(tokens, tok)
		}
	}

	return &Iterator{tokens: tokens, pos: -1}, nil
}

// LastError returns the most recent failure recorded against this
// Parser, or nil (per-instance, not process-wide; SPEC_FULL.md §9).
func (p *Parser) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *Parser) setLastError(err error) {
	if err == nil {
		return
	}
	p.mu.Lock()
	p.lastErr = err
	p.mu.Unlock()
}
