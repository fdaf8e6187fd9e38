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
	"testing"

	"github.com/stretchr/testify/assert"
)

func createDatabase() *sql.DB {
	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		panic(err)
	}
	return database
}

func tableColumns(database *sql.DB, table string) map[string]bool {
	res, err := database.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		panic(err)
	}
	defer res.Close()

	cols := make(map[string]bool)
	for res.Next() {
		var cid, notnull, pk int
		var name, tp string
		var dflt any
		if err := res.Scan(&cid, &name, &tp, &notnull, &dflt, &pk); err != nil {
			panic(err)
		}
		cols[name] = true
	}
	return cols
}

func TestCreateSchema(t *testing.T) {
	database := createDatabase()
	if err := CreateSchema(database); err != nil {
		t.Fatal(err)
	}

	sentCols := tableColumns(database, "sentence")
	assert.Contains(t, sentCols, "id")
	assert.Contains(t, sentCols, "corpus_id")
	assert.Contains(t, sentCols, "text")

	tokCols := tableColumns(database, "token")
	assert.Contains(t, tokCols, "sentence_id")
	assert.Contains(t, tokCols, "idx")
	assert.Contains(t, tokCols, "surface")
	assert.Contains(t, tokCols, "tag")
	assert.Contains(t, tokCols, "word_type")
	assert.Contains(t, tokCols, "head")
	assert.Contains(t, tokCols, "label")
}

func TestDropExisting(t *testing.T) {
	database := createDatabase()
	if err := CreateSchema(database); err != nil {
		t.Fatal(err)
	}
	if err := DropExisting(database); err != nil {
		t.Fatal(err)
	}

	res, err := database.Query("SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		panic(err)
	}
	defer res.Close()
	assert.False(t, res.Next())
}
