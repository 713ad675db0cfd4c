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

package metrics

import (
	"context"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
)

type HandlerBuilder struct {
	summaryVec *prometheus.SummaryVec
	tokens     *prometheus.CounterVec
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandlerBuilder(reg prometheus.Registerer) *HandlerBuilder {
	summaryVec := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "llm_request_duration_seconds",
			Help: "LLM request duration in seconds",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
		},
		[]string{"biz", "status"},
	)
	tokens := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_tokens_total",
			Help: "Total number of tokens consumed by LLM requests",
		},
		[]string{"biz"},
	)
	reg.MustRegister(summaryVec, tokens)
	return &HandlerBuilder{
		summaryVec: summaryVec,
		tokens:     tokens,
	}
}

func (h *HandlerBuilder) Name() string {
	return "metrics"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		start := time.Now()
		resp, err := next.Handle(ctx, req)
		status := "ok"
		if err != nil {
			status = "error"
		}
		h.summaryVec.WithLabelValues(req.Biz, status).Observe(time.Since(start).Seconds())
		h.tokens.WithLabelValues(req.Biz).Add(float64(resp.Tokens))
		return resp, err
	})
}
