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

package credit

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event/consumer"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event/producer"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/job"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository/dao"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/service"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/shopspring/decimal"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(wire.Struct(
		new(Module), "*"),
		initConfig,
		initPricing,
		InitService,
		web.NewHandler,
		initReconcileJob,
		initRegistrationConsumer,
	)
	return new(Module), nil
}

type Config struct {
	InitialGrant string `yaml:"initialGrant"`
	Timeout      string `yaml:"timeout"`
	Pricing      struct {
		Strong  string `yaml:"strong"`
		Good    string `yaml:"good"`
		Partial string `yaml:"partial"`
	} `yaml:"costs"`
	Reconcile struct {
		Limit int `yaml:"limit"`
	} `yaml:"reconcile"`
}

func initConfig() Config {
	cfg := Config{
		InitialGrant: "0",
		Timeout:      "3s",
	}
	err := econf.UnmarshalKey("credit", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initPricing(cfg Config) *Pricing {
	if cfg.Pricing.Strong == "" && cfg.Pricing.Good == "" && cfg.Pricing.Partial == "" {
		return service.DefaultPricing()
	}
	p, err := service.NewPricing(
		decimal.RequireFromString(cfg.Pricing.Strong),
		decimal.RequireFromString(cfg.Pricing.Good),
		decimal.RequireFromString(cfg.Pricing.Partial))
	if err != nil {
		panic(err)
	}
	return p
}

var (
	once = &sync.Once{}
	svc  service.Service
)

func InitService(db *egorm.Component, q mq.MQ, pricing *Pricing, cfg Config) Service {
	once.Do(func() {
		_ = dao.InitTables(db)
		d := dao.NewCreditGORMDAO(db)
		r := repository.NewCreditRepository(d)
		p, err := producer.NewUnlockEventProducer(q)
		if err != nil {
			panic(err)
		}
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			panic(err)
		}
		svc = service.NewCreditService(r, pricing, p, service.Config{
			InitialGrant: decimal.RequireFromString(cfg.InitialGrant),
			Timeout:      timeout,
		})
	})
	return svc
}

func initReconcileJob(svc service.Service, cfg Config) *job.LedgerReconcileJob {
	return job.NewLedgerReconcileJob(svc, cfg.Reconcile.Limit)
}

func initRegistrationConsumer(svc service.Service, q mq.MQ) *consumer.RegistrationEventConsumer {
	c, err := consumer.NewRegistrationEventConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
