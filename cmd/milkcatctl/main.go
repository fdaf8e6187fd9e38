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

// Command milkcatctl segments, tags and dependency-parses a single
// piece of text read from a file or stdin, printing one line per
// token. Grounded on cmd/udex's flag-parsing / stdout-report shape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kasuganosora/milkcat-go/milkcat"
)

func printMsg(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}

func readInput(path string) (string, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin

	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	buf, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func main() {
	modelDir := flag.String("model-dir", "", "path to the model directory (required)")
	userDict := flag.String("user-dict", "", "optional path to a user dictionary file")
	inputFile := flag.String("input", "-", "path to the input text file, or - for stdin")
	segmenter := flag.String("segmenter", "mixed", "mixed|crf|unigram|bigram")
	tagger := flag.String("tagger", "mixed", "mixed|hmm|crf|none")
	noDepParse := flag.Bool("no-depparse", false, "disable dependency parsing")
	flag.Parse()

	if *modelDir == "" {
		printMsg("ERROR: -model-dir is required")
		os.Exit(1)
	}

	opts := milkcat.DefaultOptions()
	switch *segmenter {
	case "crf":
		opts.Segmenter = milkcat.SegmenterCRF
	case "unigram":
		opts.Segmenter = milkcat.SegmenterUnigram
	case "bigram":
		opts.Segmenter = milkcat.SegmenterBigram
	}
	switch *tagger {
	case "hmm":
		opts.Tagger = milkcat.TaggerHMM
	case "crf":
		opts.Tagger = milkcat.TaggerCRF
	case "none":
		opts.Tagger = milkcat.TaggerNone
	}
	if *noDepParse {
		opts.DependencyParser = milkcat.DependencyParserNone
	}

	m := milkcat.Open(*modelDir)
	if *userDict != "" {
		if err := m.SetUserDictionary(*userDict); err != nil {
			printMsg("ERROR: failed to load user dictionary: %s", err)
			os.Exit(1)
		}
	}

	p, err := milkcat.NewParser(m, opts)
	if err != nil {
		printMsg("ERROR: failed to build parser: %s", err)
		os.Exit(1)
	}

	text, err := readInput(*inputFile)
	if err != nil {
		printMsg("ERROR: failed to read input: %s", err)
		os.Exit(1)
	}

	it, err := p.Parse(text)
	if err != nil {
		printMsg("ERROR: failed to parse: %s", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	idx := 0
	for it.Next() {
		if it.IsBeginOfSentence() {
			idx = 0
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			idx, it.Surface(), it.Tag(), it.WordType(), it.Head(), it.Label())
		idx++
	}
}
