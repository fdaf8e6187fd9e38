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
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(text string) []string {
	var out []string
	sc := NewSentenceScanner(text)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

func TestSentenceScannerSplitsOnFinalPunctuation(t *testing.T) {
	got := scanAll("我爱你。今天天气怎么样？挺好的！")
	assert.Equal(t, []string{"我爱你。", "今天天气怎么样？", "挺好的！"}, got)
}

func TestSentenceScannerAbsorbsRepeatedPunctuation(t *testing.T) {
	got := scanAll("怎么办？！下一句。")
	assert.Equal(t, []string{"怎么办？！", "下一句。"}, got)
}

func TestSentenceScannerSkipsLeadingWhitespace(t *testing.T) {
	got := scanAll("  \n你好。")
	assert.Equal(t, []string{"你好。"}, got)
}

func TestSentenceScannerEmptyInput(t *testing.T) {
	assert.Empty(t, scanAll(""))
	assert.Empty(t, scanAll("   \t\n"))
}

func TestSentenceScannerTrailingTextWithoutFinalPunctuation(t *testing.T) {
	got := scanAll("没有标点结尾")
	assert.Equal(t, []string{"没有标点结尾"}, got)
}
