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

	"github.com/kasuganosora/milkcat-go/model"
)

// Model owns the shared, process-wide set of read-only artifacts
// loaded from one model directory (spec.md §3/§6's opaque `Model`
// handle). A single Model may back any number of Parser instances.
type Model struct {
	container *model.ModelContainer

	mu      sync.Mutex
	lastErr error
}

// Open returns a Model rooted at dir. No artifact is read until a
// Parser built from this Model first requests it.
func Open(dir string) *Model {
	return &Model{container: model.Open(dir)}
}

// SetUserDictionary installs a user dictionary from a file, replacing
// any previously installed one.
func (m *Model) SetUserDictionary(path string) error {
	err := m.container.SetUserDictionary(path)
	m.setLastError(err)
	return err
}

// SetUserDictionaryMap installs a user dictionary from an in-memory
// (word -> cost) mapping.
func (m *Model) SetUserDictionaryMap(words map[string]float32) error {
	err := m.container.SetUserDictionaryMap(words)
	m.setLastError(err)
	return err
}

// HasUserDictionary reports whether a user dictionary is installed.
func (m *Model) HasUserDictionary() bool {
	return m.container.HasUserDictionary()
}

// LastError returns the most recent failure recorded against this
// Model, or nil. Scoped per-instance rather than process-wide/
// thread-local (SPEC_FULL.md §9 redesign note).
func (m *Model) LastError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Model) setLastError(err error) {
	if err == nil {
		return
	}
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}
