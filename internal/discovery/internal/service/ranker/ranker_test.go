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

package ranker

import (
	"testing"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/stretchr/testify/assert"
)

func candidate(id string, score float64, v match.Verdict) domain.AssessedCandidate {
	return domain.AssessedCandidate{
		Hit:        domain.CandidateHit{ID: id, Score: score, Name: "Name " + id},
		Assessment: domain.AssessmentResult{Verdict: v, Summary: "summary " + id},
	}
}

func TestSelect(t *testing.T) {
	pool := []domain.AssessedCandidate{
		candidate("s1", 0.60, match.VerdictStrong),
		candidate("g1", 0.90, match.VerdictGood),
		candidate("p1", 0.50, match.VerdictPartial),
		candidate("s2", 0.80, match.VerdictStrong),
		candidate("w1", 0.99, match.VerdictWeak),
		candidate("p2", 0.85, match.VerdictPartial),
		candidate("g2", 0.70, match.VerdictGood),
		candidate("p3", 0.85, match.VerdictPartial),
		candidate("form_1", 0.95, match.VerdictGood),
	}
	testCases := []struct {
		name     string
		strength match.Strength
		topK     int
		wantIDs  []string
	}{
		{name: "strong", strength: match.StrengthStrong, topK: 10, wantIDs: []string{"s2", "s1"}},
		{name: "good 不包含 strong 和 partial", strength: match.StrengthGood, topK: 10, wantIDs: []string{"form_1", "g1", "g2"}},
		{name: "partial 按相似度并且稳定", strength: match.StrengthPartial, topK: 10, wantIDs: []string{"p2", "p3", "p1"}},
		{name: "截断", strength: match.StrengthGood, topK: 2, wantIDs: []string{"form_1", "g1"}},
		{name: "未知强度", strength: match.Strength("any"), topK: 10, wantIDs: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Select(tc.strength, pool, tc.topK)
			assert.Equal(t, tc.wantIDs, slice.Map(res, func(idx int, src domain.RankedCandidate) string {
				return src.CandidateID
			}))
			for _, r := range res {
				assert.Equal(t, tc.strength.Allowed(), r.Verdict)
			}
		})
	}
}

func TestSelect_Fields(t *testing.T) {
	res := Select(match.StrengthGood, []domain.AssessedCandidate{
		candidate("form_1", 0.95, match.VerdictGood),
	}, 5)
	assert.Equal(t, []domain.RankedCandidate{
		{
			CandidateID: "form_1",
			Name:        "Name form_1",
			Initials:    "NF",
			Summary:     "summary form_1",
			Verdict:     match.VerdictGood,
			FormOnly:    true,
		},
	}, res)
}
