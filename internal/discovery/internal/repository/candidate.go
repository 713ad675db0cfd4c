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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/cache"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCandidateNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./candidate.go -destination=./mocks/candidate.mock.go -package=repomocks CandidateRepository
type CandidateRepository interface {
	// Save 写库之后删除缓存
	Save(ctx context.Context, p domain.CandidateProfile) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (domain.CandidateProfile, error)
	// FindByIDs 找不到的直接忽略
	FindByIDs(ctx context.Context, ids []string) (map[string]domain.CandidateProfile, error)
}

type CachedCandidateRepository struct {
	dao    dao.CandidateDAO
	cache  cache.CandidateCache
	logger *elog.Component
}

func NewCachedCandidateRepository(d dao.CandidateDAO, c cache.CandidateCache) CandidateRepository {
	return &CachedCandidateRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedCandidateRepository) Save(ctx context.Context, p domain.CandidateProfile) error {
	if err := r.dao.Upsert(ctx, r.toEntity(p)); err != nil {
		return err
	}
	return r.cache.Delete(ctx, p.ID)
}

func (r *CachedCandidateRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return err
	}
	return r.cache.Delete(ctx, id)
}

func (r *CachedCandidateRepository) FindByID(ctx context.Context, id string) (domain.CandidateProfile, error) {
	p, err := r.cache.Get(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		r.logger.Warn("读取候选人缓存失败", elog.FieldErr(err), elog.String("candidateID", id))
	}
	c, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.CandidateProfile{}, err
	}
	p = r.toDomain(c)
	// 忽略掉这里的错误
	_ = r.cache.Set(ctx, p)
	return p, nil
}

func (r *CachedCandidateRepository) FindByIDs(ctx context.Context, ids []string) (map[string]domain.CandidateProfile, error) {
	res := make(map[string]domain.CandidateProfile, len(ids))
	misses := make([]string, 0, len(ids))
	for _, id := range ids {
		p, err := r.cache.Get(ctx, id)
		if err != nil {
			misses = append(misses, id)
			continue
		}
		res[id] = p
	}
	if len(misses) == 0 {
		return res, nil
	}
	cs, err := r.dao.FindByIDs(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, p := range slice.Map(cs, func(idx int, src dao.Candidate) domain.CandidateProfile {
		return r.toDomain(src)
	}) {
		res[p.ID] = p
		_ = r.cache.Set(ctx, p)
	}
	return res, nil
}

func (r *CachedCandidateRepository) toEntity(p domain.CandidateProfile) dao.Candidate {
	return dao.Candidate{
		Id:          p.ID,
		Kind:        string(p.Kind),
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		ProfileUrl:  p.ProfileURL,
		ProfileText: p.Text,
	}
}

func (r *CachedCandidateRepository) toDomain(c dao.Candidate) domain.CandidateProfile {
	return domain.CandidateProfile{
		ID:         c.Id,
		Kind:       domain.CandidateKind(c.Kind),
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		ProfileURL: c.ProfileUrl,
		Text:       c.ProfileText,
		Utime:      c.Utime,
	}
}
