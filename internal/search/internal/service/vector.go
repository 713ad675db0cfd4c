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

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/search/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/search/internal/repository/dao"
)

var (
	ErrInvalidVector = errors.New("向量非法")
	ErrInvalidQuery  = errors.New("向量检索参数非法")
)

//go:generate mockgen -source=./vector.go -destination=../../mocks/vector.mock.go -package=searchmocks VectorIndex
type VectorIndex interface {
	Upsert(ctx context.Context, namespace, id string, vector []float32, metadata map[string]string) error
	// Query 按相似度从高到低返回，最多 topK 个
	Query(ctx context.Context, namespace string, vector []float32, topK int) ([]domain.Match, error)
	// Delete 不存在也算成功
	Delete(ctx context.Context, namespace, id string) error
}

type vectorIndex struct {
	dao        dao.VectorDAO
	dimensions int
}

func NewVectorIndex(d dao.VectorDAO, dimensions int) VectorIndex {
	return &vectorIndex{
		dao:        d,
		dimensions: dimensions,
	}
}

func (v *vectorIndex) Upsert(ctx context.Context, namespace, id string, vector []float32, metadata map[string]string) error {
	if namespace == "" || id == "" {
		return fmt.Errorf("%w: namespace=%q id=%q", ErrInvalidVector, namespace, id)
	}
	if err := v.checkDimensions(vector); err != nil {
		return err
	}
	return v.dao.Upsert(ctx, dao.VectorDoc{
		ID:        id,
		Namespace: namespace,
		Vector:    vector,
		Metadata:  metadata,
	})
}

func (v *vectorIndex) Query(ctx context.Context, namespace string, vector []float32, topK int) ([]domain.Match, error) {
	if namespace == "" || topK <= 0 {
		return nil, fmt.Errorf("%w: namespace=%q topK=%d", ErrInvalidQuery, namespace, topK)
	}
	if err := v.checkDimensions(vector); err != nil {
		return nil, err
	}
	docs, err := v.dao.Search(ctx, namespace, vector, topK)
	if err != nil {
		return nil, err
	}
	return slice.Map(docs, func(idx int, src dao.ScoredDoc) domain.Match {
		return domain.Match{
			Namespace: src.Namespace,
			ID:        src.ID,
			Score:     similarity(src.Score),
			Metadata:  src.Metadata,
		}
	}), nil
}

func (v *vectorIndex) Delete(ctx context.Context, namespace, id string) error {
	if namespace == "" || id == "" {
		return fmt.Errorf("%w: namespace=%q id=%q", ErrInvalidVector, namespace, id)
	}
	return v.dao.Delete(ctx, namespace, id)
}

func (v *vectorIndex) checkDimensions(vector []float32) error {
	if len(vector) != v.dimensions {
		return fmt.Errorf("%w: 维度 %d, 期望 %d", ErrInvalidVector, len(vector), v.dimensions)
	}
	return nil
}

// similarity 把 cosine + 1 换回 cosine，负相关当作 0
func similarity(raw float64) float64 {
	s := raw - 1
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}
