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

package discovery

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/george572/job-board-express-server-sub000/internal/ai"
	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/event/consumer"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/cache"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/dao"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/assessor"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/filter"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service/role"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/web"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/george572/job-board-express-server-sub000/internal/search"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/prometheus/client_golang/prometheus"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	aiModule *ai.Module,
	searchModule *search.Module,
	creditModule *credit.Module) (*Module, error) {
	wire.Build(wire.Struct(new(Module), "*"),
		wire.FieldsOf(new(*ai.Module), "Svc", "Embedder"),
		wire.FieldsOf(new(*search.Module), "VectorIndex"),
		wire.FieldsOf(new(*credit.Module), "Svc"),
		initConfig,
		initRepository,
		role.NewClassifier,
		filter.NewCandidateFilter,
		initRetriever,
		initAssessor,
		service.NewSearchService,
		service.NewUnlockService,
		initProfileService,
		web.NewHandler,
		initProfileConsumer,
	)
	return new(Module), nil
}

type Config struct {
	Namespaces struct {
		CV   string `yaml:"cv"`
		Form string `yaml:"form"`
	} `yaml:"namespaces"`
	ScoreFloor  float64 `yaml:"scoreFloor"`
	Multipliers struct {
		Strong  int `yaml:"strong"`
		Good    int `yaml:"good"`
		Partial int `yaml:"partial"`
	} `yaml:"assessMultipliers"`
	Concurrency int    `yaml:"assessConcurrency"`
	CacheTTL    string `yaml:"cacheTTL"`
	Timeouts    struct {
		Embed  string `yaml:"embed"`
		Query  string `yaml:"query"`
		Assess string `yaml:"assess"`
		Index  string `yaml:"index"`
	} `yaml:"timeouts"`
}

func initConfig() Config {
	def := assessor.DefaultConfig()
	var cfg Config
	cfg.Namespaces.CV = "candidates_cv"
	cfg.Namespaces.Form = "candidates_form"
	cfg.ScoreFloor = def.ScoreFloor
	cfg.Multipliers.Strong = def.Multipliers[match.StrengthStrong]
	cfg.Multipliers.Good = def.Multipliers[match.StrengthGood]
	cfg.Multipliers.Partial = def.Multipliers[match.StrengthPartial]
	cfg.Concurrency = def.Concurrency
	cfg.CacheTTL = "30m"
	cfg.Timeouts.Embed = "5s"
	cfg.Timeouts.Query = "5s"
	cfg.Timeouts.Assess = def.Timeout.String()
	cfg.Timeouts.Index = "5s"
	err := econf.UnmarshalKey("discovery", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func mustParseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

func initRepository(db *egorm.Component, ec ecache.Cache, cfg Config) repository.CandidateRepository {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return repository.NewCachedCandidateRepository(
		dao.NewCandidateGORMDAO(db),
		cache.NewCandidateECache(ec, mustParseDuration(cfg.CacheTTL)))
}

func initRetriever(embedder ai.Embedder, index search.VectorIndex, cfg Config) service.Retriever {
	return service.NewVectorRetriever(embedder, index, service.RetrieverConfig{
		Namespaces:   []string{cfg.Namespaces.CV, cfg.Namespaces.Form},
		EmbedTimeout: mustParseDuration(cfg.Timeouts.Embed),
		QueryTimeout: mustParseDuration(cfg.Timeouts.Query),
	})
}

var (
	counterOnce       = &sync.Once{}
	assessmentCounter *prometheus.CounterVec
)

func initAssessor(llm ai.LLMService, cfg Config) assessor.Assessor {
	counterOnce.Do(func() {
		assessmentCounter = assessor.NewAssessmentCounter()
		prometheus.MustRegister(assessmentCounter)
	})
	c := assessor.Config{
		ScoreFloor: cfg.ScoreFloor,
		Multipliers: map[match.Strength]int{
			match.StrengthStrong:  cfg.Multipliers.Strong,
			match.StrengthGood:    cfg.Multipliers.Good,
			match.StrengthPartial: cfg.Multipliers.Partial,
		},
		Concurrency: cfg.Concurrency,
		Timeout:     mustParseDuration(cfg.Timeouts.Assess),
	}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return assessor.NewLLMAssessor(llm, c, assessmentCounter)
}

func initProfileService(repo repository.CandidateRepository,
	embedder ai.Embedder,
	index search.VectorIndex,
	cfg Config) service.ProfileService {
	return service.NewProfileService(repo, embedder, index, service.ProfileConfig{
		Namespaces: map[domain.CandidateKind]string{
			domain.CandidateKindCV:   cfg.Namespaces.CV,
			domain.CandidateKindForm: cfg.Namespaces.Form,
		},
		EmbedTimeout: mustParseDuration(cfg.Timeouts.Embed),
		IndexTimeout: mustParseDuration(cfg.Timeouts.Index),
	})
}

func initProfileConsumer(svc service.ProfileService, q mq.MQ) *consumer.ProfileEventConsumer {
	c, err := consumer.NewProfileEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
