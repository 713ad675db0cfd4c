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

package filter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/role"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/textnorm"
)

const (
	minPhraseLen = 6
	minTokenLen  = 3
)

// CandidateFilter 在调用大模型之前按文本规则剔除候选人，不看相似度
type CandidateFilter struct {
	classifier *role.Classifier
}

func NewCandidateFilter(classifier *role.Classifier) *CandidateFilter {
	return &CandidateFilter{classifier: classifier}
}

// Apply 基础岗位剔除专业人士；非基础岗位在调用方要求时做严格的岗位匹配
func (f *CandidateFilter) Apply(hits []domain.CandidateHit, cls domain.Classification, requireRoleMatch bool) []domain.CandidateHit {
	switch {
	case cls.Basic:
		return f.ExcludeSpecialists(hits)
	case requireRoleMatch:
		return MatchRole(hits, cls)
	default:
		return hits
	}
}

func (f *CandidateFilter) ExcludeSpecialists(hits []domain.CandidateHit) []domain.CandidateHit {
	return keep(hits, func(text string) bool {
		return !f.classifier.IsSpecialist(text)
	})
}

// MatchRole 简历里面出现完整的岗位名称，或者岗位名称（含同义词）的所有有效词
func MatchRole(hits []domain.CandidateHit, cls domain.Classification) []domain.CandidateHit {
	phrases := append([]string{cls.Normalized}, normalizeAll(cls.Variants)...)
	tokenSets := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		if tokens := significantTokens(p); len(tokens) > 0 {
			tokenSets = append(tokenSets, tokens)
		}
	}
	if len(tokenSets) == 0 {
		return hits
	}
	return keep(hits, func(text string) bool {
		for _, p := range phrases {
			if utf8.RuneCountInString(p) >= minPhraseLen && strings.Contains(text, p) {
				return true
			}
		}
		for _, tokens := range tokenSets {
			if containsAll(text, tokens) {
				return true
			}
		}
		return false
	})
}

func keep(hits []domain.CandidateHit, pred func(text string) bool) []domain.CandidateHit {
	res := make([]domain.CandidateHit, 0, len(hits))
	for _, h := range hits {
		if pred(textnorm.Normalize(h.Excerpt)) {
			res = append(res, h)
		}
	}
	return res
}

func containsAll(text string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}

// significantTokens 至少三个字符，全是字母数字，并且不是纯数字
func significantTokens(phrase string) []string {
	var res []string
	for _, w := range strings.Fields(phrase) {
		if utf8.RuneCountInString(w) < minTokenLen {
			continue
		}
		alnum, digits := true, true
		for _, r := range w {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				alnum = false
				break
			}
			if !unicode.IsDigit(r) {
				digits = false
			}
		}
		if alnum && !digits {
			res = append(res, w)
		}
	}
	return res
}

func normalizeAll(terms []string) []string {
	res := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := textnorm.Normalize(t); n != "" {
			res = append(res, n)
		}
	}
	return res
}
