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

// Command vertdepparse streams a pre-tokenized, pre-tagged vertical
// corpus file (word and tag as two of the file's positional-attribute
// columns, sentences delimited by a <s> structure) through the
// dependency parser alone, and writes the resulting trees to a
// database. Grounded on actions.go/library/actions.go's
// open-db/create-schema/stream shape, retargeted from structural-
// attribute accumulation to vertigo.Token streaming into
// depparse.Parser, and wired to github.com/tomachalek/vertigo (a
// teacher dependency previously unused by the core spec).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tomachalek/vertigo/v5"

	"github.com/kasuganosora/milkcat-go/depparse"
	"github.com/kasuganosora/milkcat-go/feature"
	"github.com/kasuganosora/milkcat-go/model"
	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/stats"
	"github.com/kasuganosora/milkcat-go/store"
	"github.com/kasuganosora/milkcat-go/tag"
	"github.com/kasuganosora/milkcat-go/validation"
)

// tokenCounter is a throwaway vertigo.LineProcessor used for a quick
// first pass over the vertical file, counting tokens so the second
// pass's stats.ARFCalculator can be built with the correct corpus
// size (the same two-pass shape ptcount.ARFCalculator documents).
type tokenCounter struct {
	n int
}

func (c *tokenCounter) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	c.n++
	return nil
}

func (c *tokenCounter) ProcStruct(st *vertigo.Structure, line int, err error) error       { return err }
func (c *tokenCounter) ProcStructClose(st *vertigo.StructureClose, line int, err error) error { return err }

// sentenceCollector implements vertigo.LineProcessor: it buffers the
// tokens of the atom structure (<s>) and, on close, runs the
// dependency parser over the buffered (word, tag) pairs and persists
// the result.
type sentenceCollector struct {
	atomStruct string
	wordIdx    int
	tagIdx     int
	corpusID   string

	parser    *depparse.Parser
	writer    *store.Writer
	validator *validation.TreeValidator
	tagARF    *stats.ARFCalculator
	labelARF  *stats.ARFCalculator

	terms   []segment.Token
	tags    []string
	sentIdx int
}

func (c *sentenceCollector) ProcToken(tk *vertigo.Token, line int, err error) error {
	if err != nil {
		return err
	}
	c.terms = append(c.terms, segment.Token{
		Surface: tk.PosAttrByIndex(c.wordIdx),
		Type:    segment.Chinese,
	})
	c.tags = append(c.tags, tk.PosAttrByIndex(c.tagIdx))
	return nil
}

func (c *sentenceCollector) ProcStruct(st *vertigo.Structure, line int, err error) error {
	return err
}

func (c *sentenceCollector) ProcStructClose(st *vertigo.StructureClose, line int, err error) error {
	if err != nil {
		return err
	}
	if st.Name != c.atomStruct || len(c.terms) == 0 {
		return nil
	}

	terms := &segment.TermInstance{Tokens: c.terms}
	tags := &tag.Instance{Tags: c.tags}
	tree, perr := c.parser.Parse(terms, tags)
	if perr != nil {
		return fmt.Errorf("failed to parse sentence %d: %w", c.sentIdx, perr)
	}

	if verr := c.validator.CheckTree(c.sentIdx, tree); verr != nil {
		return verr
	}

	for i, t := range c.tags {
		c.tagARF.AddOccurrence(t)
		c.labelARF.AddOccurrence(tree.Label[i])
	}

	text := ""
	for i, t := range c.terms {
		if i > 0 {
			text += " "
		}
		text += t.Surface
	}
	if werr := c.writer.WriteSentence(c.corpusID, text, terms, tags, tree); werr != nil {
		return fmt.Errorf("failed to store sentence %d: %w", c.sentIdx, werr)
	}

	c.sentIdx++
	c.terms = c.terms[:0]
	c.tags = c.tags[:0]
	return nil
}

func main() {
	modelDir := flag.String("model-dir", "", "path to the model directory (required)")
	vertFile := flag.String("vert", "", "path to the pre-tagged vertical corpus file (required)")
	atomStruct := flag.String("atom-struct", "s", "structure delimiting one sentence")
	wordIdx := flag.Int("word-col", 0, "0-based column index of the surface form")
	tagIdx := flag.Int("tag-col", 1, "0-based column index of the POS tag")
	corpusID := flag.String("corpus-id", "corpus", "corpus_id stored alongside each sentence")
	dbPath := flag.String("db", "vertdepparse.db", "output sqlite3 database path")
	maxErrors := flag.Int("max-errors", 0, "stop after this many tree invariant violations (0 = never stop)")
	flag.Parse()

	if *modelDir == "" || *vertFile == "" {
		fmt.Fprintln(os.Stderr, "ERROR: -model-dir and -vert are required")
		os.Exit(1)
	}

	container := model.Open(*modelDir)
	perceptron, err := container.DependencyPerceptron()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dependency model")
	}
	lines, err := container.DependencyTemplateLines()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dependency template")
	}
	tmpl, err := feature.New(lines)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compile dependency template")
	}
	scorer, err := depparse.NewScorer(perceptron, tmpl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build dependency scorer")
	}

	database, err := store.OpenSQLite(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open output database")
	}
	defer database.Close()
	if err := store.DropExisting(database); err != nil {
		log.Fatal().Err(err).Msg("failed to drop existing schema")
	}
	if err := store.CreateSchema(database); err != nil {
		log.Fatal().Err(err).Msg("failed to create schema")
	}

	writer, err := store.NewWriter(database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open writer transaction")
	}

	parserConf := &vertigo.ParserConf{
		InputFilePath:         *vertFile,
		StructAttrAccumulator: "nil",
		Encoding:              "utf-8",
	}

	counter := &tokenCounter{}
	if err := vertigo.ParseVerticalFile(parserConf, counter); err != nil {
		log.Fatal().Err(err).Msg("failed first counting pass over vertical file")
	}

	collector := &sentenceCollector{
		atomStruct: *atomStruct,
		wordIdx:    *wordIdx,
		tagIdx:     *tagIdx,
		corpusID:   *corpusID,
		parser:     depparse.NewParser(scorer),
		writer:     writer,
		validator:  &validation.TreeValidator{MaxNumErrors: *maxErrors},
		tagARF:     stats.NewARFCalculator(counter.n),
		labelARF:   stats.NewARFCalculator(counter.n),
	}

	if err := vertigo.ParseVerticalFile(parserConf, collector); err != nil {
		writer.Rollback()
		log.Fatal().Err(err).Msg("failed to parse vertical file")
	}

	if err := writer.Commit(); err != nil {
		log.Fatal().Err(err).Msg("failed to commit parsed sentences")
	}

	log.Info().
		Int("sentences", collector.sentIdx).
		Int("tree_errors", len(collector.validator.Errors)).
		Msg("vertdepparse finished")

	for tagName, res := range collector.tagARF.Finalize() {
		fmt.Printf("tag\t%s\t%d\t%.3f\n", tagName, res.Count, res.ARF)
	}
	for label, res := range collector.labelARF.Finalize() {
		fmt.Printf("label\t%s\t%d\t%.3f\n", label, res.Count, res.ARF)
	}
}
