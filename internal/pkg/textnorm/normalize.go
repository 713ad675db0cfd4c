// Copyright 2023 ecodeclub
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

package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize 转小写、去掉变音符号、标点换成空格并合并连续空白。
// 格鲁吉亚字母没有大小写，保持原样
func Normalize(s string) string {
	// transformer 有内部状态，不能在 goroutine 之间共享
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	res, _, err := transform.String(t, s)
	if err != nil {
		res = s
	}
	res = strings.ToLower(res)
	var sb strings.Builder
	sb.Grow(len(res))
	for _, r := range res {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(' ')
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// ContainsTerm 判断已经归一化的 text 里面是否有以 term 开头的词，
// term 同样要求已经归一化。按词首匹配，兼容词尾变格
func ContainsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	return strings.Contains(" "+text, " "+term)
}

// ContainsAny 任意一个 term 命中即可
func ContainsAny(text string, terms []string) bool {
	for _, term := range terms {
		if ContainsTerm(text, term) {
			return true
		}
	}
	return false
}
