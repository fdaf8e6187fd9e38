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

// Package model owns the process-wide set of read-only model artifacts
// (trie index, cost tables, CRF/HMM/perceptron parameters, feature
// template) used by the segmenter, tagger and dependency parser.
package model

import (
	"errors"
	"fmt"
)

// Kind classifies a failure the way every loader in this package
// reports it: a single unified taxonomy instead of one error type per
// artifact.
type Kind int

const (
	// KindOK marks the default, no-failure status.
	KindOK Kind = iota

	// KindIO covers file-not-found, short-read and other I/O failures.
	KindIO

	// KindCorruption covers structurally invalid artifacts: bad magic,
	// inconsistent lengths, an empty user dictionary, an unclosed
	// template bracket, an unknown atomic feature name.
	KindCorruption

	// KindRuntime covers an operation invoked in an illegal state, e.g.
	// requesting the user index when no user dictionary is loaded.
	KindRuntime
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindIO:
		return "io error"
	case KindCorruption:
		return "corruption"
	case KindRuntime:
		return "runtime error"
	default:
		return "unknown"
	}
}

// Status is the error type every loader in this package returns. It
// carries a Kind alongside the usual message so callers (and tests) can
// branch on failure class without string matching.
type Status struct {
	kind Kind
	msg  string
	err  error
}

func (s *Status) Error() string {
	if s.err != nil {
		return fmt.Sprintf("%s: %s", s.msg, s.err)
	}
	return s.msg
}

func (s *Status) Unwrap() error {
	return s.err
}

// Kind reports the failure class of a Status. A nil *Status reports
// KindOK.
func (s *Status) Kind() Kind {
	if s == nil {
		return KindOK
	}
	return s.kind
}

// IOError builds a Status of KindIO, wrapping the underlying error.
func IOError(msg string, err error) *Status {
	return &Status{kind: KindIO, msg: msg, err: err}
}

// Corruption builds a Status of KindCorruption.
func Corruption(msg string) *Status {
	return &Status{kind: KindCorruption, msg: msg}
}

// RuntimeError builds a Status of KindRuntime.
func RuntimeError(msg string) *Status {
	return &Status{kind: KindRuntime, msg: msg}
}

// KindOf reports the Kind of any error, defaulting to KindIO for errors
// that did not originate as a *Status (e.g. a raw os.Open failure
// surfacing from a lower layer).
func KindOf(err error) Kind {
	if err == nil {
		return KindOK
	}
	var st *Status
	if errors.As(err, &st) {
		return st.Kind()
	}
	return KindIO
}
