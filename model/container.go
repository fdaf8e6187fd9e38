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
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kasuganosora/milkcat-go/fs"
)

// Fixed artifact filenames under a model directory (spec.md §6).
const (
	fileUnigramIndex  = "unigram.idx"
	fileUnigramCost   = "unigram.bin"
	fileBigramCost    = "bigram.bin"
	fileSegCRF        = "ctb_seg.crf"
	filePosCRF        = "ctb_pos.crf"
	filePosHMM        = "ctb_pos.hmm"
	fileOOVProperty   = "oov_property.idx"
	fileStopword      = "stopword.idx"
	fileDepPerceptron = "ctb5_dep" // prefix, not a filename
	fileDepTemplate   = "depparse.tmpl"
)

// ModelContainer is the process-wide, lazily-populated registry of
// read-only model artifacts, plus a mutable, atomically-swappable
// user-dictionary slot (spec.md §3/§4.1). A single mutex guards every
// slot; a slot that is already filled is returned without re-reading
// the file, so concurrent callers never observe a torn value — either
// the previous artifact or the newly loaded one, never a partial read.
type ModelContainer struct {
	dir string

	mu sync.Mutex

	unigramIndex *Trie
	unigramCost  *Array
	bigramCost   *HashTable
	segCRF       *CRFModel
	posCRF       *CRFModel
	posHMM       *HMMModel
	oovProperty   *Trie
	stopword      *Trie
	depPerceptron *Perceptron
	depTemplate   []string

	userDict *userDict // nil until SetUserDictionary succeeds
}

// Open returns a ModelContainer rooted at dir. No artifact is read
// until first requested: every getter below is lazy.
func Open(dir string) *ModelContainer {
	return &ModelContainer{dir: dir}
}

func (c *ModelContainer) path(name string) string {
	return filepath.Join(c.dir, name)
}

// requireFile resolves name under the model directory and reports an
// IOError up front if it is missing or not a regular file, so a
// caller gets spec.md §7's "file not found" IOError rather than
// whatever a format-specific decoder happens to return for an absent
// file.
func (c *ModelContainer) requireFile(name string) (string, error) {
	p := c.path(name)
	if !fs.IsFile(p) {
		return "", IOError("model artifact not found: "+p, nil)
	}
	return p, nil
}

// UnigramIndex lazily loads and returns the term index trie.
func (c *ModelContainer) UnigramIndex() (*Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unigramIndex != nil {
		return c.unigramIndex, nil
	}
	fp, err := c.requireFile(fileUnigramIndex)
	if err != nil {
		return nil, err
	}
	t, err := LoadTrieFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileUnigramIndex).Int("entries", t.Len()).Msg("loaded unigram index")
	c.unigramIndex = t
	return t, nil
}

// UnigramCost lazily loads and returns the unigram cost array.
func (c *ModelContainer) UnigramCost() (*Array, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unigramCost != nil {
		return c.unigramCost, nil
	}
	fp, err := c.requireFile(fileUnigramCost)
	if err != nil {
		return nil, err
	}
	a, err := LoadArrayFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileUnigramCost).Int("entries", a.Len()).Msg("loaded unigram cost array")
	c.unigramCost = a
	return a, nil
}

// BigramCost lazily loads and returns the bigram cost hash table.
func (c *ModelContainer) BigramCost() (*HashTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bigramCost != nil {
		return c.bigramCost, nil
	}
	fp, err := c.requireFile(fileBigramCost)
	if err != nil {
		return nil, err
	}
	h, err := LoadHashTableFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileBigramCost).Int("entries", h.Len()).Msg("loaded bigram cost table")
	c.bigramCost = h
	return h, nil
}

// SegCRF lazily loads and returns the segmentation CRF model.
func (c *ModelContainer) SegCRF() (*CRFModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.segCRF != nil {
		return c.segCRF, nil
	}
	fp, err := c.requireFile(fileSegCRF)
	if err != nil {
		return nil, err
	}
	m, err := LoadCRFModel(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileSegCRF).Msg("loaded segmentation CRF model")
	c.segCRF = m
	return m, nil
}

// PosCRF lazily loads and returns the POS-tagging CRF model.
func (c *ModelContainer) PosCRF() (*CRFModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.posCRF != nil {
		return c.posCRF, nil
	}
	fp, err := c.requireFile(filePosCRF)
	if err != nil {
		return nil, err
	}
	m, err := LoadCRFModel(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", filePosCRF).Msg("loaded POS CRF model")
	c.posCRF = m
	return m, nil
}

// PosHMM lazily loads and returns the POS-tagging HMM model.
func (c *ModelContainer) PosHMM() (*HMMModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.posHMM != nil {
		return c.posHMM, nil
	}
	fp, err := c.requireFile(filePosHMM)
	if err != nil {
		return nil, err
	}
	m, err := LoadHMMModel(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", filePosHMM).Msg("loaded POS HMM model")
	c.posHMM = m
	return m, nil
}

// OOVProperty lazily loads and returns the OOV-class trie.
func (c *ModelContainer) OOVProperty() (*Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.oovProperty != nil {
		return c.oovProperty, nil
	}
	fp, err := c.requireFile(fileOOVProperty)
	if err != nil {
		return nil, err
	}
	t, err := LoadTrieFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileOOVProperty).Int("entries", t.Len()).Msg("loaded OOV property trie")
	c.oovProperty = t
	return t, nil
}

// Stopword lazily loads and returns the stopword trie.
func (c *ModelContainer) Stopword() (*Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopword != nil {
		return c.stopword, nil
	}
	fp, err := c.requireFile(fileStopword)
	if err != nil {
		return nil, err
	}
	t, err := LoadTrieFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileStopword).Int("entries", t.Len()).Msg("loaded stopword trie")
	c.stopword = t
	return t, nil
}

// DependencyPerceptron lazily loads and returns the dependency-transition
// scorer. fileDepPerceptron is a filename prefix, not a single file
// (spec.md §6).
func (c *ModelContainer) DependencyPerceptron() (*Perceptron, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depPerceptron != nil {
		return c.depPerceptron, nil
	}
	p, err := LoadPerceptronModel(c.path(fileDepPerceptron))
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileDepPerceptron+".weights").Int("classes", p.NumClasses()).Msg("loaded dependency perceptron")
	c.depPerceptron = p
	return p, nil
}

// DependencyTemplateLines lazily loads and returns the dependency
// feature template's source lines (one per template, spec.md §6), with
// blank lines already discarded. Compiling these lines into a usable
// FeatureTemplate is the feature package's job, not this one's: the
// atomic-feature trie it builds depends on this package, so this
// package cannot depend back on it.
func (c *ModelContainer) DependencyTemplateLines() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depTemplate != nil {
		return c.depTemplate, nil
	}
	fp, err := c.requireFile(fileDepTemplate)
	if err != nil {
		return nil, err
	}
	lines, err := loadTemplateLinesFile(fp)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fileDepTemplate).Int("lines", len(lines)).Msg("loaded dependency feature template")
	c.depTemplate = lines
	return lines, nil
}

// SetUserDictionary replaces the user-dictionary slots from a file,
// atomically: readers either see the previous dictionary (or none) or
// the fully-loaded new one.
func (c *ModelContainer) SetUserDictionary(path string) error {
	d, err := loadUserDictionaryFile(path)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.userDict = d
	c.mu.Unlock()
	log.Info().Str("file", path).Int("entries", d.index.Len()).Msg("installed user dictionary")
	return nil
}

// SetUserDictionaryMap replaces the user-dictionary slots from an
// in-memory (word -> cost) mapping, atomically.
func (c *ModelContainer) SetUserDictionaryMap(words map[string]float32) error {
	d, err := loadUserDictionaryMap(words)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.userDict = d
	c.mu.Unlock()
	log.Info().Int("entries", d.index.Len()).Msg("installed user dictionary (in-memory)")
	return nil
}

// HasUserDictionary reports whether a user dictionary is currently
// installed.
func (c *ModelContainer) HasUserDictionary() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.userDict != nil
}

// UserIndex returns the user-dictionary trie. It is a RuntimeError to
// call this before a user dictionary has been installed.
func (c *ModelContainer) UserIndex() (*Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userDict == nil {
		return nil, RuntimeError("no user dictionary is installed")
	}
	return c.userDict.index, nil
}

// UserCost returns the user-dictionary cost array. It is a RuntimeError
// to call this before a user dictionary has been installed.
func (c *ModelContainer) UserCost() (*Array, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userDict == nil {
		return nil, RuntimeError("no user dictionary is installed")
	}
	return c.userDict.cost, nil
}
