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
	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/domain"
)

type Credit struct {
	Amount float64 `json:"amount"`
}

type HistoryReq struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"`
}

type CreditLog struct {
	ID           int64   `json:"id"`
	Delta        float64 `json:"delta"`
	BalanceAfter float64 `json:"balance_after"`
	Kind         string  `json:"kind"`
	JobName      string  `json:"job_name,omitempty"`
	CandidateID  string  `json:"candidate_id,omitempty"`
	Verdict      string  `json:"verdict,omitempty"`
	Desc         string  `json:"desc"`
	Ctime        int64   `json:"ctime"`
}

type CreditLogList struct {
	Logs []CreditLog `json:"logs"`
}

func newCreditLogList(logs []domain.CreditLog) CreditLogList {
	return CreditLogList{
		Logs: slice.Map(logs, func(idx int, src domain.CreditLog) CreditLog {
			res := CreditLog{
				ID:           src.ID,
				Delta:        src.Delta.InexactFloat64(),
				BalanceAfter: src.BalanceAfter.InexactFloat64(),
				Kind:         string(src.Kind),
				JobName:      src.JobName,
				CandidateID:  src.CandidateID,
				Desc:         src.Desc,
				Ctime:        src.Ctime,
			}
			if src.Verdict.Valid() {
				res.Verdict = src.Verdict.String()
			}
			return res
		}),
	}
}
