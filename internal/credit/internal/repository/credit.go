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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository/dao"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
)

var (
	ErrCreditNotEnough           = dao.ErrCreditNotEnough
	ErrRecordNotFound            = dao.ErrRecordNotFound
	ErrDuplicatedCredit          = dao.ErrDuplicatedCredit
	ErrRecordChangedConcurrently = dao.ErrRecordChangedConcurrently
)

//go:generate mockgen -source=./credit.go -destination=./mocks/credit.mock.go -package=repomocks CreditRepository
type CreditRepository interface {
	GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error)
	FindCredits(ctx context.Context, afterUID int64, limit int) ([]domain.Credit, error)
	CreateCredit(ctx context.Context, c domain.Credit, desc string) (domain.Credit, error)
	AdjustCredit(ctx context.Context, l domain.CreditLog) (domain.Credit, error)
	Unlock(ctx context.Context, r domain.UnlockRecord, cost domain.CreditLog) (domain.UnlockResult, error)
	FindCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error)
	FindUnlockRecords(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]domain.UnlockRecord, error)
	Reconcile(ctx context.Context, uid int64) (domain.Reconciliation, error)
}

type creditRepository struct {
	dao dao.CreditDAO
}

func NewCreditRepository(dao dao.CreditDAO) CreditRepository {
	return &creditRepository{dao: dao}
}

func (r *creditRepository) GetCreditByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	c, err := r.dao.FindCreditByUID(ctx, uid)
	if err != nil {
		return domain.Credit{}, err
	}
	return r.toDomainCredit(c), nil
}

func (r *creditRepository) FindCredits(ctx context.Context, afterUID int64, limit int) ([]domain.Credit, error) {
	cs, err := r.dao.FindCredits(ctx, afterUID, limit)
	return slice.Map(cs, func(idx int, src dao.Credit) domain.Credit {
		return r.toDomainCredit(src)
	}), err
}

func (r *creditRepository) CreateCredit(ctx context.Context, c domain.Credit, desc string) (domain.Credit, error) {
	res, err := r.dao.Create(ctx, dao.Credit{
		Uid:     c.Uid,
		Balance: c.Balance,
	}, dao.CreditLog{
		Kind: string(domain.EntryKindInitialGrant),
		Desc: desc,
	})
	return r.toDomainCredit(res), err
}

func (r *creditRepository) AdjustCredit(ctx context.Context, l domain.CreditLog) (domain.Credit, error) {
	res, err := r.dao.Adjust(ctx, l.Uid, r.toCreditLogEntity(l))
	return r.toDomainCredit(res), err
}

func (r *creditRepository) Unlock(ctx context.Context, ur domain.UnlockRecord, cost domain.CreditLog) (domain.UnlockResult, error) {
	balance, already, err := r.dao.Unlock(ctx, r.toUnlockRecordEntity(ur), r.toCreditLogEntity(cost))
	return domain.UnlockResult{
		Balance: balance,
		Already: already,
	}, err
}

func (r *creditRepository) FindCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error) {
	logs, err := r.dao.FindCreditLogs(ctx, uid, offset, limit)
	return slice.Map(logs, func(idx int, src dao.CreditLog) domain.CreditLog {
		return r.toDomainCreditLog(src)
	}), err
}

func (r *creditRepository) FindUnlockRecords(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]domain.UnlockRecord, error) {
	records, err := r.dao.FindUnlockRecords(ctx, uid, jobName, candidateIDs)
	return slice.Map(records, func(idx int, src dao.UnlockRecord) domain.UnlockRecord {
		return r.toDomainUnlockRecord(src)
	}), err
}

func (r *creditRepository) Reconcile(ctx context.Context, uid int64) (domain.Reconciliation, error) {
	c, err := r.dao.FindCreditByUID(ctx, uid)
	if err != nil {
		return domain.Reconciliation{}, err
	}
	s, err := r.dao.SummarizeCreditLogs(ctx, uid)
	return domain.Reconciliation{
		Uid:              uid,
		Balance:          c.Balance,
		SumOfDeltas:      s.SumOfDeltas,
		LastBalanceAfter: s.LastBalanceAfter,
		Entries:          s.Entries,
	}, err
}

func (r *creditRepository) toDomainCredit(c dao.Credit) domain.Credit {
	return domain.Credit{
		Uid:     c.Uid,
		Balance: c.Balance,
		Ctime:   c.Ctime,
		Utime:   c.Utime,
	}
}

func (r *creditRepository) toCreditLogEntity(l domain.CreditLog) dao.CreditLog {
	res := dao.CreditLog{
		Uid:         l.Uid,
		Delta:       l.Delta,
		Kind:        string(l.Kind),
		JobName:     l.JobName,
		CandidateID: l.CandidateID,
		Desc:        l.Desc,
	}
	if l.Verdict.Valid() {
		res.Verdict = l.Verdict.String()
	}
	return res
}

func (r *creditRepository) toDomainCreditLog(l dao.CreditLog) domain.CreditLog {
	// 历史数据里面可能没有结论
	verdict, _ := match.ParseVerdict(l.Verdict)
	return domain.CreditLog{
		ID:           l.Id,
		Uid:          l.Uid,
		Delta:        l.Delta,
		BalanceAfter: l.BalanceAfter,
		Kind:         domain.EntryKind(l.Kind),
		JobName:      l.JobName,
		CandidateID:  l.CandidateID,
		Verdict:      verdict,
		Desc:         l.Desc,
		Ctime:        l.Ctime,
	}
}

func (r *creditRepository) toUnlockRecordEntity(u domain.UnlockRecord) dao.UnlockRecord {
	return dao.UnlockRecord{
		Uid:         u.Uid,
		JobName:     u.JobName,
		CandidateID: u.CandidateID,
		FullName:    u.FullName,
		Contact:     u.Contact,
		ProfileURL:  u.ProfileURL,
		Summary:     u.Summary,
		Verdict:     u.Verdict.String(),
	}
}

func (r *creditRepository) toDomainUnlockRecord(u dao.UnlockRecord) domain.UnlockRecord {
	verdict, _ := match.ParseVerdict(u.Verdict)
	return domain.UnlockRecord{
		ID:          u.Id,
		Uid:         u.Uid,
		JobName:     u.JobName,
		CandidateID: u.CandidateID,
		FullName:    u.FullName,
		Contact:     u.Contact,
		ProfileURL:  u.ProfileURL,
		Summary:     u.Summary,
		Verdict:     verdict,
		CreditLogID: u.CreditLogId,
		Ctime:       u.Ctime,
	}
}
