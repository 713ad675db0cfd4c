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

//go:build wireinject

package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/embedding"
	geminiembedder "github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/embedding/gemini"
	openaiembedder "github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/embedding/openai"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/log"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/metrics"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/platform/claude"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/platform/gemini"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/ratelimit"
	"github.com/george572/job-board-express-server-sub000/internal/ai/internal/service/llm/handler/timeout"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/genai"
)

func InitModule() (*Module, error) {
	wire.Build(
		initLLMConfig,
		initEmbeddingConfig,
		initPlatform,
		initCommonHandlers,
		initLLMService,
		initEmbedder,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type LLMConfig struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"apikey"`
	BaseURL     string  `yaml:"baseURL"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"maxTokens"`
	Timeout     string  `yaml:"timeout"`
	QPS         float64 `yaml:"qps"`
	Burst       int     `yaml:"burst"`
}

type EmbeddingConfig struct {
	Provider   string                 `yaml:"provider"`
	APIKey     string                 `yaml:"apikey"`
	BaseURL    string                 `yaml:"baseURL"`
	Model      string                 `yaml:"model"`
	Dimensions int                    `yaml:"dimensions"`
	Prefixes   openaiembedder.Prefixes `yaml:"prefixes"`
}

func initLLMConfig() LLMConfig {
	var cfg LLMConfig
	err := econf.UnmarshalKey("ai.llm", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initEmbeddingConfig() EmbeddingConfig {
	var cfg EmbeddingConfig
	err := econf.UnmarshalKey("ai.embedding", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func newGenAIClient(apikey string) *genai.Client {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apikey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		panic(err)
	}
	return client
}

// initPlatform 按配置选择真正的出口
func initPlatform(cfg LLMConfig) handler.Handler {
	switch cfg.Provider {
	case "zhipu":
		h, err := zhipu.NewHandler(cfg.APIKey, cfg.Model, cfg.Temperature)
		if err != nil {
			panic(err)
		}
		return h
	case "gemini":
		return gemini.NewHandler(newGenAIClient(cfg.APIKey), cfg.Model, float32(cfg.Temperature))
	case "claude":
		return claude.NewHandler(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens, cfg.Temperature)
	case "openai", "":
		return openai.NewHandler(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Temperature)
	default:
		panic(fmt.Sprintf("未知的 LLM 平台 %s", cfg.Provider))
	}
}

var (
	metricsOnce    sync.Once
	metricsBuilder *metrics.HandlerBuilder
)

func initMetricsBuilder() *metrics.HandlerBuilder {
	metricsOnce.Do(func() {
		metricsBuilder = metrics.NewHandlerBuilder(prometheus.DefaultRegisterer)
	})
	return metricsBuilder
}

// log -> metrics -> ratelimit -> timeout -> platform
func initCommonHandlers(cfg LLMConfig) []handler.Builder {
	var d time.Duration
	if cfg.Timeout != "" {
		var err error
		d, err = time.ParseDuration(cfg.Timeout)
		if err != nil {
			panic(err)
		}
	}
	return []handler.Builder{
		log.NewHandler(),
		initMetricsBuilder(),
		ratelimit.NewHandlerBuilder(cfg.QPS, cfg.Burst),
		timeout.NewHandlerBuilder(d),
	}
}

func initLLMService(common []handler.Builder, platform handler.Handler) LLMService {
	return llm.NewLLMService(handler.NewCompositionHandler(common, platform))
}

func initEmbedder(cfg EmbeddingConfig) Embedder {
	var e embedding.Embedder
	switch cfg.Provider {
	case "gemini":
		e = geminiembedder.NewEmbedder(newGenAIClient(cfg.APIKey), cfg.Model, int32(cfg.Dimensions))
	case "openai", "":
		e = openaiembedder.NewEmbedder(cfg.APIKey, cfg.BaseURL, cfg.Model, int64(cfg.Dimensions), cfg.Prefixes)
	default:
		panic(fmt.Sprintf("未知的向量化平台 %s", cfg.Provider))
	}
	return embedding.NewCheckedEmbedder(e, cfg.Dimensions)
}
