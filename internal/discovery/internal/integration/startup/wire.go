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

	"github.com/ecodeclub/ecache"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/cache"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/dao"
	testioc "github.com/george572/job-board-express-server-sub000/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitCandidateRepository() repository.CandidateRepository {
	wire.Build(
		testioc.InitDB,
		testioc.InitCache,
		initDAO,
		initCache,
		repository.NewCachedCandidateRepository,
	)
	return nil
}

func initDAO(db *egorm.Component) dao.CandidateDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewCandidateGORMDAO(db)
}

func initCache(ec ecache.Cache) cache.CandidateCache {
	return cache.NewCandidateECache(ec, time.Minute)
}
