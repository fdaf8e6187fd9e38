// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Department of Linguistics
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
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// TagFilter narrows a search to tokens within corpusID whose surface
// form and/or POS tag match (either may be left empty to mean "any").
type TagFilter struct {
	Surface string
	Tag     string
}

// TokenMatch is one token row returned by Searcher.FindTokens.
type TokenMatch struct {
	SentenceID int64
	Idx        int
	Surface    string
	Tag        string
	Head       int
	Label      string
}

// Searcher runs attribute-filtered reads over a store-populated
// database. Grounded on livetokens/searcher.go's FilterTokens dynamic
// WHERE-clause pattern, retargeted from livetokens' UD-feature joins
// to this schema's tag/surface filters.
type Searcher struct {
	DB *sql.DB
}

// FindTokens returns every token of corpusID that matches filter,
// ordered by sentence then position.
func (s *Searcher) FindTokens(ctx context.Context, corpusID string, filter TagFilter) ([]TokenMatch, error) {
	clauses := []string{"s.corpus_id = ?"}
	values := []any{corpusID}
	if filter.Surface != "" {
		clauses = append(clauses, "t.surface = ?")
		values = append(values, filter.Surface)
	}
	if filter.Tag != "" {
		clauses = append(clauses, "t.tag = ?")
		values = append(values, filter.Tag)
	}

	sqlq := "SELECT t.sentence_id, t.idx, t.surface, t.tag, t.head, t.label " +
		"FROM token AS t JOIN sentence AS s ON s.id = t.sentence_id " +
		"WHERE " + strings.Join(clauses, " AND ") + " " +
		"ORDER BY t.sentence_id, t.idx"

	rows, err := s.DB.QueryContext(ctx, sqlq, values...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter tokens: %w", err)
	}
	defer rows.Close()

	var ans []TokenMatch
	for rows.Next() {
		var m TokenMatch
		if err := rows.Scan(&m.SentenceID, &m.Idx, &m.Surface, &m.Tag, &m.Head, &m.Label); err != nil {
			return nil, fmt.Errorf("failed to scan token row: %w", err)
		}
		ans = append(ans, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating token rows: %w", err)
	}
	return ans, nil
}

// AvailableTags returns the distinct POS tags stored for corpusID,
// the same "what can I still filter by" helper livetokens.Searcher
// offers for its own attribute set.
func (s *Searcher) AvailableTags(ctx context.Context, corpusID string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		"SELECT DISTINCT t.tag FROM token AS t JOIN sentence AS s ON s.id = t.sentence_id "+
			"WHERE s.corpus_id = ? ORDER BY t.tag", corpusID)
	if err != nil {
		return nil, fmt.Errorf("failed to get available tags: %w", err)
	}
	defer rows.Close()

	var ans []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		ans = append(ans, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}
	return ans, nil
}
