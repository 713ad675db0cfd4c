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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

//go:generate mockgen -source=./candidate.go -destination=../mocks/candidate_cache.mock.go -package=repomocks CandidateCache
type CandidateCache interface {
	Get(ctx context.Context, id string) (domain.CandidateProfile, error)
	Set(ctx context.Context, p domain.CandidateProfile) error
	Delete(ctx context.Context, id string) error
}

type CandidateECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewCandidateECache 过期时间要短，资料变更时会主动删除
func NewCandidateECache(c ecache.Cache, expiration time.Duration) CandidateCache {
	return &CandidateECache{
		cache: &ecache.NamespaceCache{
			Namespace: "candidate:",
			C:         c,
		},
		expiration: expiration,
	}
}

func (c *CandidateECache) Get(ctx context.Context, id string) (domain.CandidateProfile, error) {
	var p domain.CandidateProfile
	err := c.cache.Get(ctx, c.key(id)).JSONScan(&p)
	return p, err
}

func (c *CandidateECache) Set(ctx context.Context, p domain.CandidateProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(p.ID), data, c.expiration)
}

func (c *CandidateECache) Delete(ctx context.Context, id string) error {
	_, err := c.cache.Delete(ctx, c.key(id))
	return err
}

func (c *CandidateECache) key(id string) string {
	return "profile:" + id
}
