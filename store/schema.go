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

// Package store persists parsed sentences and tokens (surface form,
// POS tag, word type, dependency head/label) to a SQL database, so a
// batch run over a corpus can be queried afterwards instead of
// re-parsed (SPEC_FULL.md's DOMAIN STACK expansion).
package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// DropExisting drops the sentence/token tables and their indices. Safe
// to call even if none of them exist yet.
func DropExisting(database *sql.DB) error {
	log.Info().Msg("Attempting to drop possible existing tables")
	for _, stmt := range []string{
		"DROP TABLE IF EXISTS token",
		"DROP TABLE IF EXISTS sentence",
	} {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute %q: %w", stmt, err)
		}
	}
	return nil
}

// CreateSchema creates the sentence/token tables and the indices used
// by Searcher.
func CreateSchema(database *sql.DB) error {
	log.Info().Msg("Attempting to create tables and indices")

	_, err := database.Exec(
		"CREATE TABLE sentence (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"corpus_id TEXT NOT NULL, " +
			"text TEXT NOT NULL" +
			")")
	if err != nil {
		return fmt.Errorf("failed to create table 'sentence': %w", err)
	}

	_, err = database.Exec(
		"CREATE TABLE token (" +
			"id INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"sentence_id INTEGER NOT NULL, " +
			"idx INTEGER NOT NULL, " +
			"surface TEXT NOT NULL, " +
			"tag TEXT NOT NULL, " +
			"word_type INTEGER NOT NULL, " +
			"head INTEGER NOT NULL, " +
			"label TEXT NOT NULL" +
			")")
	if err != nil {
		return fmt.Errorf("failed to create table 'token': %w", err)
	}

	_, err = database.Exec("CREATE INDEX token_sentence_id_idx ON token(sentence_id)")
	if err != nil {
		return fmt.Errorf("failed to create index 'token_sentence_id_idx': %w", err)
	}
	_, err = database.Exec("CREATE INDEX token_tag_idx ON token(tag)")
	if err != nil {
		return fmt.Errorf("failed to create index 'token_tag_idx': %w", err)
	}
	log.Info().Msg("...DONE")
	return nil
}

// insert wraps a prepared INSERT statement, converting empty strings
// to SQL NULL the same way db.Insert did for the teacher's liveattrs
// tables.
type insert struct {
	stmt *sql.Stmt
}

func (ins *insert) exec(values ...any) (sql.Result, error) {
	for i, v := range values {
		if s, ok := v.(string); ok && s == "" {
			values[i] = sql.NullString{}
		}
	}
	return ins.stmt.Exec(values...)
}

func (ins *insert) Close() error {
	return ins.stmt.Close()
}
