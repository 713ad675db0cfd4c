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

package ioc

import (
	"github.com/george572/job-board-express-server-sub000/internal/ai"
	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery"
	"github.com/george572/job-board-express-server-sub000/internal/search"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitES)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		search.InitModule,
		credit.InitModule,
		wire.FieldsOf(new(*credit.Module), "Hdl", "ReconcileJob"),
		discovery.InitModule,
		wire.FieldsOf(new(*discovery.Module), "Hdl"),
		InitSession,
		initGinxServer,
		initCronJobs,
	)
	return new(App), nil
}
