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

package job

import (
	"context"
	"fmt"

	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*LedgerReconcileJob)(nil)

// LedgerReconcileJob 核对每个账户的余额和流水是否一致，只报告不修复
type LedgerReconcileJob struct {
	svc    service.Service
	limit  int
	logger *elog.Component
}

func NewLedgerReconcileJob(svc service.Service, limit int) *LedgerReconcileJob {
	if limit <= 0 {
		limit = 100
	}
	return &LedgerReconcileJob{
		svc:    svc,
		limit:  limit,
		logger: elog.DefaultLogger,
	}
}

func (j *LedgerReconcileJob) Name() string {
	return "LedgerReconcileJob"
}

func (j *LedgerReconcileJob) Run(ctx context.Context) error {
	var (
		afterUID     int64
		checked      int
		inconsistent int
	)
	for {
		credits, err := j.svc.FindCredits(ctx, afterUID, j.limit)
		if err != nil {
			return fmt.Errorf("分页查询积分账户失败 afterUID=%d: %w", afterUID, err)
		}
		for _, c := range credits {
			r, err := j.svc.Reconcile(ctx, c.Uid)
			if err != nil {
				return fmt.Errorf("核对积分账户失败 uid=%d: %w", c.Uid, err)
			}
			checked++
			if !r.Consistent() {
				inconsistent++
				j.logger.Error("积分账户与流水不一致",
					elog.Int64("uid", r.Uid),
					elog.String("balance", r.Balance.StringFixed(2)),
					elog.String("sumOfDeltas", r.SumOfDeltas.StringFixed(2)),
					elog.String("lastBalanceAfter", r.LastBalanceAfter.StringFixed(2)),
					elog.Int64("entries", r.Entries))
			}
		}
		if len(credits) < j.limit {
			break
		}
		afterUID = credits[len(credits)-1].Uid
	}
	j.logger.Info("积分对账完成",
		elog.Int("checked", checked),
		elog.Int("inconsistent", inconsistent))
	return nil
}
