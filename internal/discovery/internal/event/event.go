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

package event

import "github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"

const CandidateProfileEventName = "candidate_profile_events"

const (
	ActionUpsert = "upsert"
	ActionDelete = "delete"
)

// CandidateProfileEvent 候选人提交或者修改了简历、表单
type CandidateProfileEvent struct {
	Action    string    `json:"action"`
	Candidate Candidate `json:"candidate"`
}

type Candidate struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ProfileURL string `json:"profile_url"`
	Text       string `json:"text"`
}

func (c Candidate) ToDomain() domain.CandidateProfile {
	return domain.CandidateProfile{
		ID:         c.ID,
		Kind:       domain.CandidateKind(c.Kind),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		ProfileURL: c.ProfileURL,
		Text:       c.Text,
	}
}
