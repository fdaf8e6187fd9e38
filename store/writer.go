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

package store

import (
	"database/sql"
	"fmt"

	"github.com/kasuganosora/milkcat-go/depparse"
	"github.com/kasuganosora/milkcat-go/segment"
	"github.com/kasuganosora/milkcat-go/tag"
)

// Writer persists parsed sentences within a single transaction, the
// way the teacher's VertValidator.Run ran the whole vertical-file
// import inside one transaction for sqlite3 insert speed.
type Writer struct {
	tx          *sql.Tx
	insSentence *insert
	insToken    *insert
}

// NewWriter opens a transaction against database and prepares the
// sentence/token INSERT statements.
func NewWriter(database *sql.DB) (*Writer, error) {
	tx, err := database.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	sentStmt, err := tx.Prepare("INSERT INTO sentence (corpus_id, text) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to prepare sentence insert: %w", err)
	}
	tokStmt, err := tx.Prepare(
		"INSERT INTO token (sentence_id, idx, surface, tag, word_type, head, label) " +
			"VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		sentStmt.Close()
		tx.Rollback()
		return nil, fmt.Errorf("failed to prepare token insert: %w", err)
	}
	return &Writer{
		tx:          tx,
		insSentence: &insert{stmt: sentStmt},
		insToken:    &insert{stmt: tokStmt},
	}, nil
}

// WriteSentence stores one parsed sentence (terms/tags, and the
// dependency tree if the pipeline ran a dependency parser) under
// corpusID.
func (w *Writer) WriteSentence(
	corpusID, text string,
	terms *segment.TermInstance,
	tags *tag.Instance,
	tree *depparse.TreeInstance,
) error {
	res, err := w.insSentence.exec(corpusID, text)
	if err != nil {
		return fmt.Errorf("failed to insert sentence: %w", err)
	}
	sentenceID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read sentence id: %w", err)
	}

	for i := 0; i < terms.Len(); i++ {
		head := depparse.RootHeadIndex
		label := ""
		if tree != nil {
			head = tree.Head[i]
			label = tree.Label[i]
		}
		_, err := w.insToken.exec(
			sentenceID, i, terms.Surface(i), tags.Tag(i), int(terms.Tokens[i].Type), head, label)
		if err != nil {
			return fmt.Errorf("failed to insert token %d: %w", i, err)
		}
	}
	return nil
}

// Commit finalizes the transaction, closing the prepared statements
// first.
func (w *Writer) Commit() error {
	w.insSentence.Close()
	w.insToken.Close()
	return w.tx.Commit()
}

// Rollback aborts the transaction, closing the prepared statements
// first. Safe to call after a failed WriteSentence.
func (w *Writer) Rollback() error {
	w.insSentence.Close()
	w.insToken.Close()
	return w.tx.Rollback()
}
