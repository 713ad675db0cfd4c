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

package timeout

import (
	"context"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 给每一次调用加上超时，超时之后下游调用会被取消
type HandlerBuilder struct {
	timeout time.Duration
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(timeout time.Duration) *HandlerBuilder {
	return &HandlerBuilder{
		timeout: timeout,
	}
}

func (h *HandlerBuilder) Name() string {
	return "timeout"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	if h.timeout <= 0 {
		return next
	}
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, h.timeout)
		defer cancel()
		return next.Handle(ctx, req)
	})
}
