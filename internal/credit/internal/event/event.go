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

const (
	UserRegistrationEventName  = "user_registration_events"
	CandidateUnlockedEventName = "candidate_unlocked_events"
)

type UserRegistrationEvent struct {
	Uid int64 `json:"uid"`
}

// CandidateUnlockedEvent 雇主解锁了某个岗位下的候选人
type CandidateUnlockedEvent struct {
	Uid         int64  `json:"uid"`
	JobName     string `json:"job_name"`
	CandidateID string `json:"candidate_id"`
	Verdict     string `json:"verdict"`
	Cost        string `json:"cost"`
	Balance     string `json:"balance"`
	Ctime       int64  `json:"ctime"`
}
