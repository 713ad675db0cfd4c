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
	"sort"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
)

// Select 只保留与匹配强度对应的结论，排序后截断到 topK。
// 相似度只用于排序，不会出现在结果里面
func Select(strength match.Strength, candidates []domain.AssessedCandidate, topK int) []domain.RankedCandidate {
	allowed := strength.Allowed()
	kept := make([]domain.AssessedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Assessment.Verdict == allowed {
			kept = append(kept, c)
		}
	}
	tierFirst := strength.TierFirst()
	sort.SliceStable(kept, func(i, j int) bool {
		vi, vj := kept[i].Assessment.Verdict, kept[j].Assessment.Verdict
		if tierFirst && vi != vj {
			return vi.Rank() < vj.Rank()
		}
		return kept[i].Hit.Score > kept[j].Hit.Score
	})
	if topK >= 0 && len(kept) > topK {
		kept = kept[:topK]
	}
	res := make([]domain.RankedCandidate, 0, len(kept))
	for _, c := range kept {
		res = append(res, domain.RankedCandidate{
			CandidateID: c.Hit.ID,
			Name:        c.Hit.Name,
			Initials:    domain.Initials(c.Hit.Name),
			Summary:     c.Assessment.Summary,
			Verdict:     c.Assessment.Verdict,
			FormOnly:    c.Hit.FormOnly(),
		})
	}
	return res
}
