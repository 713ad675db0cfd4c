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

package web

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
)

const defaultTopK = 10

type SearchReq struct {
	Title            string `json:"title" validate:"max=200"`
	Description      string `json:"description" validate:"required,min=10,max=8000"`
	Experience       string `json:"experience" validate:"max=500"`
	EmploymentType   string `json:"employment_type" validate:"max=100"`
	City             string `json:"city" validate:"max=100"`
	TopK             int    `json:"top_k" validate:"min=5,max=50"`
	Strength         string `json:"strength" validate:"required,oneof=strong good partial"`
	RequireRoleMatch bool   `json:"require_role_match"`
}

// normalize 校验之前去掉首尾空白，top_k 不传时使用默认值
func (r *SearchReq) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Experience = strings.TrimSpace(r.Experience)
	r.EmploymentType = strings.TrimSpace(r.EmploymentType)
	r.City = strings.TrimSpace(r.City)
	r.Strength = strings.ToLower(strings.TrimSpace(r.Strength))
	if r.TopK == 0 {
		r.TopK = defaultTopK
	}
}

type Candidate struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Initials    string `json:"initials"`
	Summary     string `json:"summary"`
	Verdict     string `json:"verdict"`
	FormOnly    bool   `json:"form_only"`
	Unlocked    bool   `json:"unlocked"`
	Contact     string `json:"contact,omitempty"`
	ProfileURL  string `json:"profile_url,omitempty"`
}

func newCandidates(res []domain.RankedCandidate) []Candidate {
	return slice.Map(res, func(idx int, src domain.RankedCandidate) Candidate {
		return Candidate{
			CandidateID: src.CandidateID,
			Name:        src.Name,
			Initials:    src.Initials,
			Summary:     src.Summary,
			Verdict:     src.Verdict.String(),
			FormOnly:    src.FormOnly,
			Unlocked:    src.Unlocked,
			Contact:     src.Contact,
			ProfileURL:  src.ProfileURL,
		}
	})
}

type UnlockReq struct {
	JobName   string          `json:"job_name" validate:"required,max=255"`
	Candidate UnlockCandidate `json:"candidate"`
}

type UnlockCandidate struct {
	ID         string `json:"id" validate:"required,max=64"`
	Name       string `json:"name" validate:"max=255"`
	Verdict    string `json:"verdict" validate:"required"`
	Summary    string `json:"summary"`
	Contact    string `json:"contact" validate:"max=255"`
	ProfileURL string `json:"profile_url" validate:"max=512"`
}

type UnlockResp struct {
	Credits float64 `json:"credits"`
	Already bool    `json:"already"`
}
