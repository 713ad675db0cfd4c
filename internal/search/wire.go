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

package search

import (
	"sync"

	"github.com/george572/job-board-express-server-sub000/internal/search/internal/repository/dao"
	"github.com/george572/job-board-express-server-sub000/internal/search/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/olivere/elastic/v7"
)

func InitModule(es *elastic.Client) (*Module, error) {
	wire.Build(
		initConfig,
		initVectorIndex,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type Config struct {
	Index   string `yaml:"index"`
	Refresh string `yaml:"refresh"`
	// 和 ai.embedding.dimensions 保持一致
	Dimensions int `yaml:"dimensions"`
}

func initConfig() Config {
	cfg := Config{
		Index: "candidate_vectors",
	}
	err := econf.UnmarshalKey("search.vector", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Dimensions == 0 {
		cfg.Dimensions = econf.GetInt("ai.embedding.dimensions")
	}
	return cfg
}

var indexOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client, cfg Config) {
	indexOnce.Do(func() {
		err := dao.InitES(es, cfg.Index, cfg.Dimensions)
		if err != nil {
			panic(err)
		}
	})
}

func initVectorIndex(es *elastic.Client, cfg Config) VectorIndex {
	InitIndexOnce(es, cfg)
	d := dao.NewVectorElasticDAO(es, cfg.Index, cfg.Refresh)
	return service.NewVectorIndex(d, cfg.Dimensions)
}
