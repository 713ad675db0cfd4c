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
	"errors"
	"testing"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHandlerBuilder_Next(t *testing.T) {
	b := NewHandlerBuilder(prometheus.NewRegistry())
	ok := b.Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{Tokens: 120}, nil
	}))
	failed := b.Next(handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		return domain.LLMResponse{}, errors.New("mock error")
	}))

	req := domain.LLMRequest{Biz: "candidate_assessment"}
	_, err := ok.Handle(context.Background(), req)
	assert.NoError(t, err)
	_, err = ok.Handle(context.Background(), req)
	assert.NoError(t, err)
	_, err = failed.Handle(context.Background(), req)
	assert.Error(t, err)

	assert.Equal(t, float64(240), testutil.ToFloat64(b.tokens.WithLabelValues("candidate_assessment")))
	assert.Equal(t, 2, testutil.CollectAndCount(b.summaryVec))
}
