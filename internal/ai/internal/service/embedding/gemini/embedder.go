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

package gemini

import (
	"context"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"google.golang.org/genai"
)

const (
	taskRetrievalQuery    = "RETRIEVAL_QUERY"
	taskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

type Embedder struct {
	client     *genai.Client
	model      string
	dimensions int32
}

func NewEmbedder(client *genai.Client, model string, dimensions int32) *Embedder {
	return &Embedder{
		client:     client,
		model:      model,
		dimensions: dimensions,
	}
}

func (e *Embedder) Embed(ctx context.Context, texts []string, mode domain.EmbedMode) ([][]float32, error) {
	contents := make([]*genai.Content, 0, len(texts))
	for _, text := range texts {
		contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))
	}
	cfg := &genai.EmbedContentConfig{
		TaskType: taskRetrievalQuery,
	}
	if mode == domain.EmbedModePassage {
		cfg.TaskType = taskRetrievalDocument
	}
	if e.dimensions > 0 {
		cfg.OutputDimensionality = genai.Ptr(e.dimensions)
	}
	resp, err := e.client.Models.EmbedContent(ctx, e.model, contents, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini 向量化失败: %w", err)
	}
	res := make([][]float32, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		if emb == nil {
			res = append(res, nil)
			continue
		}
		res = append(res, emb.Values)
	}
	return res, nil
}
