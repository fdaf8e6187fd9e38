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

package segment

import (
	"strings"
	"unicode/utf8"
)

// sentenceFinal lists the Chinese and Latin sentence-final punctuation
// marks a SentenceScanner splits on (spec.md §3 expansion).
const sentenceFinal = "。！？!?;；"

// SentenceScanner walks a UTF-8 text byte by byte and yields one
// sentence-bounded substring per Scan call, the same incremental
// "advance, hold current value, repeat" shape as the teacher's
// MultiFileScanner, retargeted from "next line of the next file" to
// "next sentence of this buffer".
type SentenceScanner struct {
	text string
	pos  int
	cur  string
}

// NewSentenceScanner returns a scanner over text.
func NewSentenceScanner(text string) *SentenceScanner {
	return &SentenceScanner{text: text}
}

// Scan advances to the next sentence, returning false once the input
// is exhausted.
func (s *SentenceScanner) Scan() bool {
	for s.pos < len(s.text) && isSentenceSpace(s.text[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.text) {
		return false
	}

	start := s.pos
	for s.pos < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.pos += size
		if strings.ContainsRune(sentenceFinal, r) {
			// Absorb any immediately repeated final punctuation
			// ("？！", "?!") into the same sentence.
			for s.pos < len(s.text) {
				r2, size2 := utf8.DecodeRuneInString(s.text[s.pos:])
				if !strings.ContainsRune(sentenceFinal, r2) {
					break
				}
				s.pos += size2
			}
			break
		}
	}
	s.cur = s.text[start:s.pos]
	return true
}

// Text returns the current sentence.
func (s *SentenceScanner) Text() string {
	return s.cur
}

func isSentenceSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
