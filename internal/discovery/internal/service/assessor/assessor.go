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
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const biz = "candidate_assessment"

var ErrInvalidConfig = errors.New("评估配置非法")

type Config struct {
	// ScoreFloor 相似度低于它的候选人不评估
	ScoreFloor float64
	// Multipliers 评估数量 = topK * 倍数，匹配强度越宽松倍数越大
	Multipliers map[match.Strength]int
	Concurrency int
	// Timeout 单个候选人的超时时间
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		ScoreFloor: 0.4,
		Multipliers: map[match.Strength]int{
			match.StrengthStrong:  2,
			match.StrengthGood:    3,
			match.StrengthPartial: 4,
		},
		Concurrency: 8,
		Timeout:     20 * time.Second,
	}
}

// Validate 倍数要求 strong <= good <= partial 并且都大于 0
func (c Config) Validate() error {
	s, g, p := c.Multipliers[match.StrengthStrong], c.Multipliers[match.StrengthGood], c.Multipliers[match.StrengthPartial]
	if s <= 0 || g < s || p < g {
		return fmt.Errorf("%w: multipliers strong=%d good=%d partial=%d", ErrInvalidConfig, s, g, p)
	}
	if c.ScoreFloor < 0 || c.ScoreFloor > 1 {
		return fmt.Errorf("%w: scoreFloor=%v", ErrInvalidConfig, c.ScoreFloor)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("%w: concurrency=%d", ErrInvalidConfig, c.Concurrency)
	}
	return nil
}

//go:generate mockgen -source=./assessor.go -destination=./mocks/assessor.mock.go -package=assessormocks Assessor
type Assessor interface {
	Assess(ctx context.Context, job domain.JobQuery, profileText string) (domain.AssessmentResult, error)
	// AssessBatch 单个候选人失败只会被剔除，不影响其它候选人
	AssessBatch(ctx context.Context, job domain.JobQuery, hits []domain.CandidateHit) []domain.AssessedCandidate
}

type LLMAssessor struct {
	llm     ai.LLMService
	cfg     Config
	counter *prometheus.CounterVec
	logger  *elog.Component
}

// NewLLMAssessor counter 可以为 nil
func NewLLMAssessor(llm ai.LLMService, cfg Config, counter *prometheus.CounterVec) *LLMAssessor {
	return &LLMAssessor{
		llm:     llm,
		cfg:     cfg,
		counter: counter,
		logger:  elog.DefaultLogger,
	}
}

// NewAssessmentCounter 按结果统计评估次数
func NewAssessmentCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobboard",
		Subsystem: "discovery",
		Name:      "assessments_total",
		Help:      "候选人评估次数",
	}, []string{"result"})
}

func (a *LLMAssessor) Assess(ctx context.Context, job domain.JobQuery, profileText string) (domain.AssessmentResult, error) {
	resp, err := a.llm.Invoke(ctx, ai.LLMRequest{
		Biz:          biz,
		Uid:          job.Uid,
		SystemPrompt: systemPrompt,
		Prompt:       buildPrompt(job, profileText),
	})
	if err != nil {
		return domain.AssessmentResult{}, err
	}
	return Parse(resp.Answer)
}

func (a *LLMAssessor) AssessBatch(ctx context.Context, job domain.JobQuery, hits []domain.CandidateHit) []domain.AssessedCandidate {
	pool := a.pool(job, hits)
	results := make([]*domain.AssessedCandidate, len(pool))
	var eg errgroup.Group
	eg.SetLimit(a.cfg.Concurrency)
	for i, hit := range pool {
		eg.Go(func() error {
			actx, cancel := a.withTimeout(ctx)
			defer cancel()
			res, err := a.Assess(actx, job, hit.Excerpt)
			if err != nil {
				a.observe("failed")
				a.logger.Warn("评估候选人失败，跳过",
					elog.FieldErr(err),
					elog.String("candidateID", hit.ID))
				return nil
			}
			a.observe(res.Verdict.String())
			results[i] = &domain.AssessedCandidate{Hit: hit, Assessment: res}
			return nil
		})
	}
	_ = eg.Wait()

	assessed := make([]domain.AssessedCandidate, 0, len(results))
	for _, r := range results {
		if r != nil {
			assessed = append(assessed, *r)
		}
	}
	return assessed
}

// pool 过滤掉低相似度的候选人，再按 topK 和匹配强度截断。hits 已经按分数降序
func (a *LLMAssessor) pool(job domain.JobQuery, hits []domain.CandidateHit) []domain.CandidateHit {
	res := make([]domain.CandidateHit, 0, len(hits))
	for _, h := range hits {
		if h.Score >= a.cfg.ScoreFloor {
			res = append(res, h)
		}
	}
	limit := job.TopK * a.multiplier(job.Strength)
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

func (a *LLMAssessor) multiplier(s match.Strength) int {
	if m, ok := a.cfg.Multipliers[s]; ok && m > 0 {
		return m
	}
	return a.cfg.Multipliers[match.StrengthPartial]
}

func (a *LLMAssessor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.Timeout)
}

func (a *LLMAssessor) observe(result string) {
	if a.counter != nil {
		a.counter.WithLabelValues(result).Inc()
	}
}
