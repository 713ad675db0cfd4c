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

package service

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/assessor"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/filter"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/query"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/ranker"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/role"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./search.go -destination=../../mocks/search.mock.go -package=discoverymocks SearchService
type SearchService interface {
	// Search 检索失败返回 ErrUpstream；单个候选人评估失败只会少一个结果
	Search(ctx context.Context, job domain.JobQuery) ([]domain.RankedCandidate, error)
}

type searchService struct {
	classifier *role.Classifier
	filter     *filter.CandidateFilter
	retriever  Retriever
	assessor   assessor.Assessor
	profiles   repository.CandidateRepository
	credits    credit.Service
	logger     *elog.Component
}

func NewSearchService(classifier *role.Classifier,
	f *filter.CandidateFilter,
	r Retriever,
	a assessor.Assessor,
	profiles repository.CandidateRepository,
	credits credit.Service) SearchService {
	return &searchService{
		classifier: classifier,
		filter:     f,
		retriever:  r,
		assessor:   a,
		profiles:   profiles,
		credits:    credits,
		logger:     elog.DefaultLogger,
	}
}

func (s *searchService) Search(ctx context.Context, job domain.JobQuery) ([]domain.RankedCandidate, error) {
	start := time.Now()
	cls := s.classifier.Classify(job.Title)
	text := query.Build(job, cls)

	hits, err := s.retriever.Retrieve(ctx, text, job.TopK)
	if err != nil {
		return nil, err
	}
	retrieved := len(hits)
	hits = s.filter.Apply(hits, cls, job.RequireRoleMatch)
	assessed := s.assessor.AssessBatch(ctx, job, hits)
	res := ranker.Select(job.Strength, assessed, job.TopK)
	s.enrich(ctx, job, res)

	s.logger.Info("候选人检索完成",
		elog.Int64("uid", job.Uid),
		elog.String("role", cls.Normalized),
		elog.Any("basic", cls.Basic),
		elog.String("strength", string(job.Strength)),
		elog.Int("retrieved", retrieved),
		elog.Int("filtered", len(hits)),
		elog.Int("assessed", len(assessed)),
		elog.Int("returned", len(res)),
		elog.FieldCost(time.Since(start)))
	return res, nil
}

// enrich 补充姓名和已解锁的联系方式，失败不影响检索结果
func (s *searchService) enrich(ctx context.Context, job domain.JobQuery, res []domain.RankedCandidate) {
	if len(res) == 0 {
		return
	}
	ids := slice.Map(res, func(idx int, src domain.RankedCandidate) string {
		return src.CandidateID
	})
	profiles, err := s.profiles.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("查询候选人资料失败", elog.FieldErr(err))
	}
	for i := range res {
		if p, ok := profiles[res[i].CandidateID]; ok && p.Name != "" {
			res[i].Name = p.Name
			res[i].Initials = domain.Initials(p.Name)
		}
	}

	jobName := job.JobName()
	if job.Uid <= 0 || jobName == "" {
		return
	}
	records, err := s.credits.ListUnlocked(ctx, job.Uid, jobName, ids)
	if err != nil {
		s.logger.Warn("查询解锁记录失败", elog.FieldErr(err), elog.Int64("uid", job.Uid))
		return
	}
	unlocked := make(map[string]credit.UnlockRecord, len(records))
	for _, r := range records {
		unlocked[r.CandidateID] = r
	}
	for i := range res {
		r, ok := unlocked[res[i].CandidateID]
		if !ok {
			continue
		}
		res[i].Unlocked = true
		res[i].Contact = r.Contact
		res[i].ProfileURL = r.ProfileURL
		if r.FullName != "" {
			res[i].Name = r.FullName
			res[i].Initials = domain.Initials(r.FullName)
		}
	}
}
