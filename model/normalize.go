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
	"fmt"
	"strings"
)

// NormalizeFn maps a raw surface form to a canonical form. The registry
// below stands alone: the trie, cost tables and segmenter of this module
// build and look up keys over raw surfaces and apply no normalizer.
type NormalizeFn func(string) string

// normalizers is the named registry of surface normalizers, following
// the same name -> function table shape as db/colgen's FuncList.
var normalizers = map[string]NormalizeFn{
	"identity":  normalizeIdentity,
	"lowercase": normalizeLowercase,
	"fullwidth": normalizeFullwidth,
}

func normalizeIdentity(s string) string {
	return s
}

func normalizeLowercase(s string) string {
	return strings.ToLower(s)
}

// normalizeFullwidth folds ASCII fullwidth forms (U+FF01-U+FF5E) down to
// their basic-Latin equivalents, and the fullwidth space (U+3000) to a
// plain space.
func normalizeFullwidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '　':
			b.WriteRune(' ')
		case r >= 0xFF01 && r <= 0xFF5E:
			b.WriteRune(r - 0xFEE0)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GetNormalizeFn resolves a normalizer by name.
func GetNormalizeFn(name string) (NormalizeFn, error) {
	fn, ok := normalizers[name]
	if !ok {
		return nil, fmt.Errorf("unknown normalizer: %s", name)
	}
	return fn, nil
}

// NormalizeFnNames lists the registered normalizer names.
func NormalizeFnNames() []string {
	names := make([]string, 0, len(normalizers))
	for k := range normalizers {
		names = append(names, k)
	}
	return names
}
