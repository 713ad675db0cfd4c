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

package claude

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
)

const defaultMaxTokens = 1024

type Handler struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

func NewHandler(apikey, baseURL, model string, maxTokens int64, temperature float64) *Handler {
	opts := []option.RequestOption{option.WithAPIKey(apikey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Handler{
		client:      anthropic.NewClient(opts...),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

func (h *Handler) Name() string {
	return "claude"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(h.model),
		MaxTokens: h.maxTokens,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: req.Prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	}
	if req.SystemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.SystemPrompt}}
	}
	if h.temperature > 0 {
		params.Temperature = anthropic.Float(h.temperature)
	}
	msg, err := h.client.Messages.New(ctx, params)
	if err != nil {
		return domain.LLMResponse{}, err
	}
	var builder strings.Builder
	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		builder.WriteString(block.Text)
	}
	answer := strings.TrimSpace(builder.String())
	if answer == "" {
		return domain.LLMResponse{}, errors.New("claude 没有返回任何结果")
	}
	return domain.LLMResponse{
		Tokens: msg.Usage.InputTokens + msg.Usage.OutputTokens,
		Answer: answer,
	}, nil
}
