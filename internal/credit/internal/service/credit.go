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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/event/producer"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

var (
	ErrCreditNotEnough = repository.ErrCreditNotEnough
	ErrAccountNotFound = errors.New("积分账户不存在")
	ErrInvalidUnlock   = errors.New("解锁请求非法")
	ErrInvalidAdjust   = errors.New("积分调整非法")
	ErrTimeout         = errors.New("积分操作超时")
)

type Config struct {
	// 注册时赠送的积分
	InitialGrant decimal.Decimal
	// 单次数据库操作的超时时间
	Timeout time.Duration
}

//go:generate mockgen -source=./credit.go -destination=../../mocks/credit.mock.go -package=creditmocks Service
type Service interface {
	// OpenAccount 幂等，已经开户的直接返回
	OpenAccount(ctx context.Context, uid int64) (domain.Credit, error)
	GetCreditsByUID(ctx context.Context, uid int64) (domain.Credit, error)
	// Unlock 同一个 (uid, 岗位, 候选人) 只扣一次费
	Unlock(ctx context.Context, req domain.UnlockRequest) (domain.UnlockResult, error)
	Adjust(ctx context.Context, uid int64, delta decimal.Decimal, reason string) (domain.Credit, error)
	// History 最新的在前面
	History(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error)
	ListUnlocked(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]domain.UnlockRecord, error)
	FindCredits(ctx context.Context, afterUID int64, limit int) ([]domain.Credit, error)
	Reconcile(ctx context.Context, uid int64) (domain.Reconciliation, error)
}

type service struct {
	repo     repository.CreditRepository
	pricing  *Pricing
	producer producer.UnlockEventProducer
	cfg      Config
	logger   *elog.Component
}

func NewCreditService(repo repository.CreditRepository,
	pricing *Pricing,
	p producer.UnlockEventProducer,
	cfg Config) Service {
	return &service{
		repo:     repo,
		pricing:  pricing,
		producer: p,
		cfg:      cfg,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) OpenAccount(ctx context.Context, uid int64) (domain.Credit, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.CreateCredit(ctx, domain.Credit{
		Uid:     uid,
		Balance: s.cfg.InitialGrant,
	}, "注册赠送积分")
	if errors.Is(err, repository.ErrDuplicatedCredit) {
		c, err = s.repo.GetCreditByUID(ctx, uid)
	}
	return c, s.translate(ctx, err)
}

func (s *service) GetCreditsByUID(ctx context.Context, uid int64) (domain.Credit, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.GetCreditByUID(ctx, uid)
	return c, s.translate(ctx, err)
}

func (s *service) Unlock(ctx context.Context, req domain.UnlockRequest) (domain.UnlockResult, error) {
	req.JobName = strings.TrimSpace(req.JobName)
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	if req.Uid <= 0 || req.JobName == "" || req.CandidateID == "" {
		return domain.UnlockResult{}, fmt.Errorf("%w: uid=%d, job=%q, candidate=%q",
			ErrInvalidUnlock, req.Uid, req.JobName, req.CandidateID)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	cost, err := s.pricing.Cost(req.Verdict)
	if err != nil {
		// 已经解锁过的候选人不看这次带过来的结论
		return s.alreadyUnlocked(ctx, req, err)
	}
	res, err := s.repo.Unlock(ctx, domain.UnlockRecord{
		Uid:         req.Uid,
		JobName:     req.JobName,
		CandidateID: req.CandidateID,
		FullName:    req.FullName,
		Contact:     req.Contact,
		ProfileURL:  req.ProfileURL,
		Summary:     req.Summary,
		Verdict:     req.Verdict,
	}, domain.CreditLog{
		Uid:         req.Uid,
		Delta:       cost.Neg(),
		Kind:        domain.EntryKindUnlockCandidate,
		JobName:     req.JobName,
		CandidateID: req.CandidateID,
		Verdict:     req.Verdict,
		Desc:        "解锁候选人",
	})
	if err = s.translate(ctx, err); err != nil {
		return res, err
	}
	if !res.Already {
		s.notifyUnlocked(ctx, req, cost, res.Balance)
	}
	return res, nil
}

func (s *service) alreadyUnlocked(ctx context.Context, req domain.UnlockRequest, priceErr error) (domain.UnlockResult, error) {
	records, err := s.repo.FindUnlockRecords(ctx, req.Uid, req.JobName, []string{req.CandidateID})
	if err != nil {
		return domain.UnlockResult{}, s.translate(ctx, err)
	}
	if len(records) == 0 {
		return domain.UnlockResult{}, priceErr
	}
	c, err := s.repo.GetCreditByUID(ctx, req.Uid)
	if err != nil {
		return domain.UnlockResult{}, s.translate(ctx, err)
	}
	return domain.UnlockResult{Balance: c.Balance, Already: true}, nil
}

func (s *service) notifyUnlocked(ctx context.Context, req domain.UnlockRequest, cost, balance decimal.Decimal) {
	err := s.producer.Produce(ctx, event.CandidateUnlockedEvent{
		Uid:         req.Uid,
		JobName:     req.JobName,
		CandidateID: req.CandidateID,
		Verdict:     req.Verdict.String(),
		Cost:        cost.StringFixed(2),
		Balance:     balance.StringFixed(2),
		Ctime:       time.Now().UnixMilli(),
	})
	if err != nil {
		// 扣费已经提交，消息丢了只影响下游通知
		s.logger.Error("发送候选人解锁事件失败",
			elog.FieldErr(err),
			elog.Int64("uid", req.Uid),
			elog.String("candidateID", req.CandidateID))
	}
}

func (s *service) Adjust(ctx context.Context, uid int64, delta decimal.Decimal, reason string) (domain.Credit, error) {
	if uid <= 0 || delta.IsZero() {
		return domain.Credit{}, fmt.Errorf("%w: uid=%d, delta=%s", ErrInvalidAdjust, uid, delta)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.AdjustCredit(ctx, domain.CreditLog{
		Uid:   uid,
		Delta: delta.Round(2),
		Kind:  domain.EntryKindManualAdjustment,
		Desc:  reason,
	})
	return c, s.translate(ctx, err)
}

func (s *service) History(ctx context.Context, uid int64, offset, limit int) ([]domain.CreditLog, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	logs, err := s.repo.FindCreditLogs(ctx, uid, offset, limit)
	return logs, s.translate(ctx, err)
}

func (s *service) ListUnlocked(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]domain.UnlockRecord, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	records, err := s.repo.FindUnlockRecords(ctx, uid, strings.TrimSpace(jobName), candidateIDs)
	return records, s.translate(ctx, err)
}

func (s *service) FindCredits(ctx context.Context, afterUID int64, limit int) ([]domain.Credit, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	cs, err := s.repo.FindCredits(ctx, afterUID, limit)
	return cs, s.translate(ctx, err)
}

func (s *service) Reconcile(ctx context.Context, uid int64) (domain.Reconciliation, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	r, err := s.repo.Reconcile(ctx, uid)
	return r, s.translate(ctx, err)
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

// translate 把超时和账户不存在从业务错误里面区分出来
func (s *service) translate(ctx context.Context, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrAccountNotFound, err)
	case errors.Is(err, ErrCreditNotEnough):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return err
	}
}
