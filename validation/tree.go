// Copyright 2022 Martin Zimandl <martin.zimandl@gmail.com>
// Copyright 2022 Charles University, Faculty of Arts,
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

// Package validation checks dependency-parse output against the
// invariants SPEC_FULL.md §8 (invariant 6) requires of a terminated
// arc-eager parse: every non-ROOT token has exactly one head, and the
// head relation contains no cycles.
package validation

import (
	"errors"
	"fmt"

	"github.com/kasuganosora/milkcat-go/depparse"
)

// ErrTooManyTreeErrors is returned once a batch run's accumulated
// invariant violations exceed its configured budget — the same
// stop-condition shape validation/validator.go used for vertical-file
// parse errors (ErrorTooManyParsingErrors), retargeted to tree
// invariant violations.
var ErrTooManyTreeErrors = errors.New("too many dependency tree errors")

// TreeError describes one invariant violation found in a single
// sentence's tree.
type TreeError struct {
	SentenceIdx int
	TokenIdx    int
	Reason      string
}

func (e TreeError) Error() string {
	return fmt.Sprintf("sentence %d, token %d: %s", e.SentenceIdx, e.TokenIdx, e.Reason)
}

// TreeValidator accumulates invariant violations across a batch of
// parsed sentences, stopping the batch once MaxNumErrors is exceeded.
// Grounded on validation/validator.go's handleProcError counter/cutoff
// pattern.
type TreeValidator struct {
	MaxNumErrors int

	errorCount int
	Errors     []TreeError
}

// CheckTree validates one sentence's tree: every index in [0, n) must
// have a head in {RootHeadIndex} ∪ [0, n), no token may be its own
// head, and following head pointers from any token must terminate at
// ROOT without revisiting a token (no cycles).
//
// Returns ErrTooManyTreeErrors once the accumulated violation count
// exceeds MaxNumErrors; the caller should stop processing further
// sentences in that case. All other returns are nil even when
// violations were recorded — check len(v.Errors) to see them.
func (v *TreeValidator) CheckTree(sentenceIdx int, tree *depparse.TreeInstance) error {
	n := tree.Len()
	for i := 0; i < n; i++ {
		head := tree.Head[i]
		if head == depparse.RootHeadIndex {
			continue
		}
		if head < 0 || head >= n {
			if err := v.record(sentenceIdx, i, fmt.Sprintf("head index %d out of range", head)); err != nil {
				return err
			}
			continue
		}
		if head == i {
			if err := v.record(sentenceIdx, i, "token is its own head"); err != nil {
				return err
			}
			continue
		}
	}

	for i := 0; i < n; i++ {
		seen := make(map[int]bool, n)
		cur := i
		for {
			if seen[cur] {
				if err := v.record(sentenceIdx, i, "cycle in head chain"); err != nil {
					return err
				}
				break
			}
			seen[cur] = true
			head := tree.Head[cur]
			if head == depparse.RootHeadIndex || head < 0 || head >= n || head == cur {
				break
			}
			cur = head
		}
	}
	return nil
}

func (v *TreeValidator) record(sentenceIdx, tokenIdx int, reason string) error {
	v.Errors = append(v.Errors, TreeError{SentenceIdx: sentenceIdx, TokenIdx: tokenIdx, Reason: reason})
	v.errorCount++
	if v.MaxNumErrors > 0 && v.errorCount > v.MaxNumErrors {
		return ErrTooManyTreeErrors
	}
	return nil
}
