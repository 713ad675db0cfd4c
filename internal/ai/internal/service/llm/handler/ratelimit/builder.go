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

package ratelimit

import (
	"context"
	"errors"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler"
	"golang.org/x/time/rate"
)

var ErrRateLimited = errors.New("LLM 调用被限流")

// HandlerBuilder 进程内对平台调用限流，等待直到拿到令牌或者 ctx 结束
type HandlerBuilder struct {
	limiter *rate.Limiter
}

var _ handler.Builder = &HandlerBuilder{}

// NewHandlerBuilder qps <= 0 表示不限流
func NewHandlerBuilder(qps float64, burst int) *HandlerBuilder {
	limit := rate.Limit(qps)
	if qps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &HandlerBuilder{
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (h *HandlerBuilder) Name() string {
	return "ratelimit"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		if err := h.limiter.Wait(ctx); err != nil {
			return domain.LLMResponse{}, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
		return next.Handle(ctx, req)
	})
}
