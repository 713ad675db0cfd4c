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

package embedding

import (
	"context"
	"errors"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
)

var (
	ErrDimensionMismatch = errors.New("向量维度不一致")
	ErrCountMismatch     = errors.New("向量数量和输入数量不一致")
	ErrUnknownMode       = errors.New("未知的向量化模式")
)

//go:generate mockgen -source=./type.go -destination=../../../mocks/embedder.mock.go -package=aimocks Embedder
type Embedder interface {
	// Embed 返回的向量和 texts 一一对应
	Embed(ctx context.Context, texts []string, mode domain.EmbedMode) ([][]float32, error)
}

// checkedEmbedder 保证模型输出的向量和索引的维度一致
type checkedEmbedder struct {
	Embedder
	dimensions int
}

func NewCheckedEmbedder(e Embedder, dimensions int) Embedder {
	return &checkedEmbedder{
		Embedder:   e,
		dimensions: dimensions,
	}
}

func (c *checkedEmbedder) Embed(ctx context.Context, texts []string, mode domain.EmbedMode) ([][]float32, error) {
	if mode != domain.EmbedModeQuery && mode != domain.EmbedModePassage {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, mode)
	}
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	vectors, err := c.Embedder.Embed(ctx, texts, mode)
	if err != nil {
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: 输入 %d 输出 %d", ErrCountMismatch, len(texts), len(vectors))
	}
	for i, v := range vectors {
		if len(v) != c.dimensions {
			return nil, fmt.Errorf("%w: 第 %d 个向量维度 %d, 期望 %d", ErrDimensionMismatch, i, len(v), c.dimensions)
		}
	}
	return vectors, nil
}
