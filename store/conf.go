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
	"os"

	"github.com/bytedance/sonic"
)

// Conf describes a batch ingestion run: where the model directory and
// corpus text live, and which database backend to write parsed
// sentences/tokens to. cmd/vertdepparse does not read it; that command
// takes its settings from flags. Grounded on
// cnf/config.go's VTEConf / db.Conf shape, trimmed to this module's
// sentence/token schema (no per-corpus structural attribute
// configuration is needed here).
type Conf struct {
	ModelDir    string `json:"modelDir"`
	CorpusID    string `json:"corpusId"`
	InputFile   string `json:"inputFile"`
	UserDictFile string `json:"userDictFile,omitempty"`

	DB struct {
		Type string `json:"type"` // "sqlite" or "mysql"
		Path string `json:"path"` // sqlite file path, or mysql DSN
	} `json:"db"`
}

// LoadConf reads and decodes a JSON config file. Uses sonic for
// decoding (a teacher dependency not otherwise exercised by the core
// spec) the same way cnf/config.go used encoding/json for its own
// config file.
func LoadConf(confPath string) (*Conf, error) {
	raw, err := os.ReadFile(confPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", confPath, err)
	}
	var conf Conf
	if err := sonic.Unmarshal(raw, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", confPath, err)
	}
	return &conf, nil
}

// OpenDB opens the database configured by conf.DB.
func (c *Conf) OpenDB() (*sql.DB, error) {
	switch c.DB.Type {
	case "mysql":
		return OpenMySQL(c.DB.Path)
	default:
		return OpenSQLite(c.DB.Path)
	}
}
