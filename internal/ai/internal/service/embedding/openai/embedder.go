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

package openai

import (
	"context"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Prefixes e5/bge 一类的非对称模型靠前缀区分查询和文档
type Prefixes struct {
	Query   string `yaml:"query"`
	Passage string `yaml:"passage"`
}

type Embedder struct {
	client     *openai.Client
	model      string
	dimensions int64
	prefixes   Prefixes
}

func NewEmbedder(apikey, baseURL, model string, dimensions int64, prefixes Prefixes) *Embedder {
	opts := []option.RequestOption{option.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Embedder{
		client:     openai.NewClient(opts...),
		model:      model,
		dimensions: dimensions,
		prefixes:   prefixes,
	}
}

func (e *Embedder) Embed(ctx context.Context, texts []string, mode domain.EmbedMode) ([][]float32, error) {
	prefix := e.prefixes.Query
	if mode == domain.EmbedModePassage {
		prefix = e.prefixes.Passage
	}
	input := make(openai.EmbeddingNewParamsInputArrayOfStrings, 0, len(texts))
	for _, text := range texts {
		input = append(input, prefix+text)
	}
	params := openai.EmbeddingNewParams{
		Input:          openai.F[openai.EmbeddingNewParamsInputUnion](input),
		Model:          openai.F(openai.EmbeddingModel(e.model)),
		EncodingFormat: openai.F(openai.EmbeddingNewParamsEncodingFormatFloat),
	}
	if e.dimensions > 0 {
		params.Dimensions = openai.F(e.dimensions)
	}
	resp, err := e.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai 向量化失败: %w", err)
	}
	res := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(res) {
			return nil, fmt.Errorf("openai 返回了非法的下标 %d", d.Index)
		}
		vec := make([]float32, len(d.Embedding))
		for i, f := range d.Embedding {
			vec[i] = float32(f)
		}
		res[d.Index] = vec
	}
	return res, nil
}
