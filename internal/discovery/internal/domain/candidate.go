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

package domain

import (
	"strings"
	"unicode"

	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
)

// FormCandidatePrefix 没有简历、只填了表单的候选人使用合成 ID
const FormCandidatePrefix = "form_"

type CandidateKind string

const (
	CandidateKindCV   CandidateKind = "cv"
	CandidateKindForm CandidateKind = "form"
)

func (k CandidateKind) Valid() bool {
	return k == CandidateKindCV || k == CandidateKindForm
}

// KindOf 根据 ID 判断候选人类型
func KindOf(id string) CandidateKind {
	if strings.HasPrefix(id, FormCandidatePrefix) {
		return CandidateKindForm
	}
	return CandidateKindCV
}

// CandidateHit 向量检索命中的候选人
type CandidateHit struct {
	ID        string
	Namespace string
	// Score 余弦相似度，[0, 1]
	Score   float64
	Excerpt string
	Name    string
}

func (h CandidateHit) FormOnly() bool {
	return KindOf(h.ID) == CandidateKindForm
}

type AssessmentResult struct {
	FitScore int
	Summary  string
	Verdict  match.Verdict
}

type AssessedCandidate struct {
	Hit        CandidateHit
	Assessment AssessmentResult
}

// RankedCandidate 返回给前端的结果，不带相似度
type RankedCandidate struct {
	CandidateID string
	Name        string
	Initials    string
	Summary     string
	Verdict     match.Verdict
	FormOnly    bool
	// 解锁之后才有
	Contact    string
	ProfileURL string
	Unlocked   bool
}

// CandidateProfile 候选人资料，建索引和解锁都以它为准
type CandidateProfile struct {
	ID         string
	Kind       CandidateKind
	Name       string
	Email      string
	Phone      string
	ProfileURL string
	Text       string
	Utime      int64
}

func (p CandidateProfile) Contact() string {
	parts := make([]string, 0, 2)
	if p.Email != "" {
		parts = append(parts, p.Email)
	}
	if p.Phone != "" {
		parts = append(parts, p.Phone)
	}
	return strings.Join(parts, " / ")
}

// Initials 取前两个词的首字母。用 ToTitle，格鲁吉亚字母不会被转成 Mtavruli
func Initials(name string) string {
	var sb strings.Builder
	for i, w := range strings.Fields(name) {
		if i == 2 {
			break
		}
		for _, r := range w {
			sb.WriteRune(unicode.ToTitle(r))
			break
		}
	}
	return sb.String()
}

// UnlockCandidate 前端提交的解锁请求
type UnlockCandidate struct {
	JobName     string
	CandidateID string
	Name        string
	Verdict     match.Verdict
	Summary     string
	Contact     string
	ProfileURL  string
}
