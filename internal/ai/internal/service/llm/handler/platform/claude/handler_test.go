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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": [{"type": "text", "text": "{\"fit_score\": 55, \"verdict\": \"PARTIAL_MATCH\"}"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 20, "output_tokens": 10}
		}`))
	}))
	defer srv.Close()

	h := NewHandler("mock-key", srv.URL, "claude-3-5-haiku-latest", 0, 0)
	resp, err := h.Handle(context.Background(), domain.LLMRequest{
		SystemPrompt: "you are a recruiter",
		Prompt:       "assess",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(30), resp.Tokens)
	assert.Equal(t, `{"fit_score": 55, "verdict": "PARTIAL_MATCH"}`, resp.Answer)
}
