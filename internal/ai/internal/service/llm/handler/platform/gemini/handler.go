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
	"errors"
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"google.golang.org/genai"
)

type Handler struct {
	client      *genai.Client
	model       string
	temperature float32
}

func NewHandler(client *genai.Client, model string, temperature float32) *Handler {
	return &Handler{
		client:      client,
		model:       model,
		temperature: temperature,
	}
}

func (h *Handler) Name() string {
	return "gemini"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemPrompt, genai.RoleUser)
	}
	if h.temperature > 0 {
		cfg.Temperature = genai.Ptr(h.temperature)
	}
	resp, err := h.client.Models.GenerateContent(ctx, h.model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(part.Text)
		}
	}
	answer := strings.TrimSpace(builder.String())
	if answer == "" {
		return domain.LLMResponse{}, errors.New("gemini 没有返回任何结果")
	}
	res := domain.LLMResponse{Answer: answer}
	if resp.UsageMetadata != nil {
		res.Tokens = int64(resp.UsageMetadata.TotalTokenCount)
	}
	return res, nil
}
