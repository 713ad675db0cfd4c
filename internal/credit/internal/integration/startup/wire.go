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

package startup

import (
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event/producer"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository/dao"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/service"
	testioc "github.com/george572/job-board-express-server-sub000/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/shopspring/decimal"
)

func InitService() service.Service {
	wire.Build(
		testioc.InitDB,
		testioc.InitMQ,
		initDAO,
		repository.NewCreditRepository,
		initProducer,
		service.DefaultPricing,
		initConfig,
		service.NewCreditService,
	)
	return nil
}

func initDAO(db *egorm.Component) dao.CreditDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewCreditGORMDAO(db)
}

func initProducer(q mq.MQ) producer.UnlockEventProducer {
	p, err := producer.NewUnlockEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initConfig() service.Config {
	return service.Config{
		InitialGrant: decimal.NewFromInt(100),
		Timeout:      5 * time.Second,
	}
}
