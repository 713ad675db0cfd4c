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
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/search"
	"golang.org/x/sync/errgroup"
)

const (
	maxFetch = 100

	metaName = "name"
	metaText = "text"
	metaKind = "kind"
)

var ErrUpstream = errors.New("检索上游服务失败")

type RetrieverConfig struct {
	Namespaces   []string
	EmbedTimeout time.Duration
	QueryTimeout time.Duration
}

//go:generate mockgen -source=./retriever.go -destination=./mocks/retriever.mock.go -package=svcmocks Retriever
type Retriever interface {
	// Retrieve 多取一些留给后面的过滤，要么全部成功要么返回 ErrUpstream
	Retrieve(ctx context.Context, queryText string, topK int) ([]domain.CandidateHit, error)
}

type vectorRetriever struct {
	embedder ai.Embedder
	index    search.VectorIndex
	cfg      RetrieverConfig
}

func NewVectorRetriever(embedder ai.Embedder, index search.VectorIndex, cfg RetrieverConfig) Retriever {
	return &vectorRetriever{
		embedder: embedder,
		index:    index,
		cfg:      cfg,
	}
}

func FetchSize(topK int) int {
	return min(2*topK, maxFetch)
}

func (r *vectorRetriever) Retrieve(ctx context.Context, queryText string, topK int) ([]domain.CandidateHit, error) {
	fetch := FetchSize(topK)
	if fetch <= 0 {
		return nil, nil
	}
	vector, err := r.embed(ctx, queryText)
	if err != nil {
		return nil, err
	}

	var (
		mu   sync.Mutex
		hits []domain.CandidateHit
	)
	eg, egCtx := errgroup.WithContext(ctx)
	for _, ns := range r.cfg.Namespaces {
		eg.Go(func() error {
			qctx, cancel := withTimeout(egCtx, r.cfg.QueryTimeout)
			defer cancel()
			matches, er := r.index.Query(qctx, ns, vector, fetch)
			if er != nil {
				return fmt.Errorf("%w: 查询向量索引 %s 失败: %w", ErrUpstream, ns, er)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, m := range matches {
				hits = append(hits, toHit(m))
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	return merge(hits, fetch), nil
}

func (r *vectorRetriever) embed(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.EmbedTimeout)
	defer cancel()
	vectors, err := r.embedder.Embed(ctx, []string{text}, ai.EmbedModeQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: 生成检索向量失败: %w", ErrUpstream, err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("%w: 检索向量数量 %d", ErrUpstream, len(vectors))
	}
	return vectors[0], nil
}

// merge 同一个候选人只保留最高分，按分数从高到低截断
func merge(hits []domain.CandidateHit, limit int) []domain.CandidateHit {
	best := make(map[string]int, len(hits))
	res := make([]domain.CandidateHit, 0, len(hits))
	for _, h := range hits {
		if idx, ok := best[h.ID]; ok {
			if h.Score > res[idx].Score {
				res[idx] = h
			}
			continue
		}
		best[h.ID] = len(res)
		res = append(res, h)
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Score != res[j].Score {
			return res[i].Score > res[j].Score
		}
		return res[i].ID < res[j].ID
	})
	if len(res) > limit {
		res = res[:limit]
	}
	return res
}

func toHit(m search.Match) domain.CandidateHit {
	return domain.CandidateHit{
		ID:        m.ID,
		Namespace: m.Namespace,
		Score:     m.Score,
		Excerpt:   m.Metadata[metaText],
		Name:      m.Metadata[metaName],
	}
}

// withTimeout timeout <= 0 表示不额外限制
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
