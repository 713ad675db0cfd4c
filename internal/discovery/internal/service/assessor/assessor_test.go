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

package assessor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/ai"
	aimocks "github.com/george572/job-board-express-server-sub000/internal/ai/mocks"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLLMAssessor_Assess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	llm := aimocks.NewMockService(ctrl)
	llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
			assert.Equal(t, biz, req.Biz)
			assert.Equal(t, int64(7), req.Uid)
			assert.Contains(t, req.SystemPrompt, "50%")
			assert.Contains(t, req.SystemPrompt, "must not exceed 30")
			assert.Contains(t, req.Prompt, "Title: Waiter")
			assert.Contains(t, req.Prompt, "CANDIDATE PROFILE\nოფიციანტი 2 წელი")
			assert.NotContains(t, req.Prompt, "City:")
			return ai.LLMResponse{Answer: `{"fit_score": 81, "summary": "ok", "verdict": "STRONG_MATCH"}`}, nil
		})
	a := NewLLMAssessor(llm, DefaultConfig(), nil)
	res, err := a.Assess(context.Background(), domain.JobQuery{Uid: 7, Title: "Waiter"}, "ოფიციანტი 2 წელი")
	require.NoError(t, err)
	assert.Equal(t, domain.AssessmentResult{FitScore: 81, Summary: "ok", Verdict: match.VerdictStrong}, res)
}

func TestLLMAssessor_AssessBatch(t *testing.T) {
	hits := make([]domain.CandidateHit, 0, 12)
	for i := 0; i < 12; i++ {
		hits = append(hits, domain.CandidateHit{
			ID:      fmt.Sprintf("c%d", i),
			Score:   0.95 - float64(i)*0.05,
			Excerpt: fmt.Sprintf("profile c%d", i),
		})
	}
	testCases := []struct {
		name     string
		strength match.Strength
		topK     int
		answer   func(profile string) (string, error)
		wantIDs  []string
	}{
		{
			name:     "strong 只评估 2 倍",
			strength: match.StrengthStrong,
			topK:     2,
			answer: func(profile string) (string, error) {
				return `{"fit_score": 90}`, nil
			},
			wantIDs: []string{"c0", "c1", "c2", "c3"},
		},
		{
			name:     "partial 评估 4 倍",
			strength: match.StrengthPartial,
			topK:     2,
			answer: func(profile string) (string, error) {
				return `{"fit_score": 50}`, nil
			},
			wantIDs: []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"},
		},
		{
			name:     "单个失败只剔除自己",
			strength: match.StrengthGood,
			topK:     1,
			answer: func(profile string) (string, error) {
				switch {
				case strings.HasSuffix(profile, "c1"):
					return "", errors.New("mock provider error")
				case strings.HasSuffix(profile, "c2"):
					return "I cannot evaluate this", nil
				default:
					return `{"fit_score": 70}`, nil
				}
			},
			wantIDs: []string{"c0"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			llm := aimocks.NewMockService(ctrl)
			llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req ai.LLMRequest) (ai.LLMResponse, error) {
					_, ok := ctx.Deadline()
					assert.True(t, ok)
					ans, err := tc.answer(req.Prompt)
					return ai.LLMResponse{Answer: ans}, err
				}).AnyTimes()
			cfg := DefaultConfig()
			cfg.Concurrency = 3
			cfg.Timeout = time.Second
			counter := NewAssessmentCounter()
			a := NewLLMAssessor(llm, cfg, counter)
			res := a.AssessBatch(context.Background(), domain.JobQuery{
				Strength: tc.strength,
				TopK:     tc.topK,
			}, hits)
			assert.Equal(t, tc.wantIDs, slice.Map(res, func(idx int, src domain.AssessedCandidate) string {
				return src.Hit.ID
			}))
			assert.Equal(t, float64(len(tc.wantIDs)), testutil.ToFloat64(counter.WithLabelValues(res[0].Assessment.Verdict.String())))
		})
	}
}

func TestLLMAssessor_AssessBatch_ScoreFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	llm := aimocks.NewMockService(ctrl)
	llm.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ai.LLMResponse{Answer: `{"fit_score": 88}`}, nil).Times(1)
	a := NewLLMAssessor(llm, DefaultConfig(), nil)
	res := a.AssessBatch(context.Background(), domain.JobQuery{Strength: match.StrengthStrong, TopK: 5}, []domain.CandidateHit{
		{ID: "a", Score: 0.41},
		{ID: "b", Score: 0.39},
	})
	require.Len(t, res, 1)
	assert.Equal(t, "a", res[0].Hit.ID)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	cfg := DefaultConfig()
	cfg.Multipliers[match.StrengthGood] = 5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	cfg = DefaultConfig()
	cfg.ScoreFloor = 1.2
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
