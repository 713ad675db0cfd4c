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

package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound            = gorm.ErrRecordNotFound
	ErrCreditNotEnough           = errors.New("积分不足")
	ErrDuplicatedCredit          = errors.New("积分账户已存在")
	ErrDuplicatedUnlock          = errors.New("候选人已解锁")
	ErrRecordChangedConcurrently = errors.New("记录已被并发修改")
)

const uniqueConflictErrNo uint16 = 1062

type CreditDAO interface {
	FindCreditByUID(ctx context.Context, uid int64) (Credit, error)
	// FindCredits 按 uid 升序分页
	FindCredits(ctx context.Context, afterUID int64, limit int) ([]Credit, error)
	Create(ctx context.Context, c Credit, l CreditLog) (Credit, error)
	Adjust(ctx context.Context, uid int64, l CreditLog) (Credit, error)
	// Unlock 在一个事务里面完成扣费、记流水和写解锁记录。
	// l.Delta 为负数，返回操作后的余额以及是否之前已经解锁
	Unlock(ctx context.Context, r UnlockRecord, l CreditLog) (decimal.Decimal, bool, error)
	FindCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]CreditLog, error)
	FindUnlockRecords(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]UnlockRecord, error)
	SummarizeCreditLogs(ctx context.Context, uid int64) (LedgerSummary, error)
}

type creditDAO struct {
	db *egorm.Component
}

func NewCreditGORMDAO(db *egorm.Component) CreditDAO {
	return &creditDAO{db: db}
}

func (g *creditDAO) FindCreditByUID(ctx context.Context, uid int64) (Credit, error) {
	var res Credit
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (g *creditDAO) FindCredits(ctx context.Context, afterUID int64, limit int) ([]Credit, error) {
	var res []Credit
	err := g.db.WithContext(ctx).
		Where("uid > ?", afterUID).
		Order("uid ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *creditDAO) Create(ctx context.Context, c Credit, l CreditLog) (Credit, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		c.Version = 1
		c.Ctime, c.Utime = now, now
		if err := tx.Create(&c).Error; err != nil {
			if isUniqueConflict(err) {
				return ErrDuplicatedCredit
			}
			return fmt.Errorf("创建积分账户失败: %w", err)
		}
		l.Cid = c.Id
		l.Uid = c.Uid
		l.Delta = c.Balance
		l.BalanceAfter = c.Balance
		l.Ctime = now
		if err := tx.Create(&l).Error; err != nil {
			return fmt.Errorf("创建积分流水失败: %w", err)
		}
		return nil
	})
	return c, err
}

func (g *creditDAO) Adjust(ctx context.Context, uid int64, l CreditLog) (Credit, error) {
	var c Credit
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		c, err = g.lockCredit(tx, uid)
		if err != nil {
			return err
		}
		balance := c.Balance.Add(l.Delta)
		if balance.IsNegative() {
			return ErrCreditNotEnough
		}
		now := time.Now().UnixMilli()
		if err = g.updateBalance(tx, c, balance, now); err != nil {
			return err
		}
		c.Balance, c.Version, c.Utime = balance, c.Version+1, now
		l.Cid, l.Uid, l.BalanceAfter, l.Ctime = c.Id, uid, balance, now
		if err = tx.Create(&l).Error; err != nil {
			return fmt.Errorf("创建积分流水失败: %w", err)
		}
		return nil
	})
	return c, err
}

func (g *creditDAO) Unlock(ctx context.Context, r UnlockRecord, l CreditLog) (decimal.Decimal, bool, error) {
	var (
		balance decimal.Decimal
		already bool
	)
	cost := l.Delta.Neg()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := g.unlocked(tx, r, false)
		if err != nil {
			return err
		}
		if found {
			var c Credit
			if err = tx.Where("uid = ?", r.Uid).First(&c).Error; err != nil {
				return err
			}
			balance, already = c.Balance, true
			return nil
		}

		c, err := g.lockCredit(tx, r.Uid)
		if err != nil {
			return err
		}
		balance = c.Balance

		// 拿到行锁之后再查一次，并发的请求可能已经提交了
		found, err = g.unlocked(tx, r, true)
		if err != nil {
			return err
		}
		if found {
			already = true
			return nil
		}

		if c.Balance.LessThan(cost) {
			return ErrCreditNotEnough
		}
		now := time.Now().UnixMilli()
		newBalance := c.Balance.Sub(cost)
		if err = g.updateBalance(tx, c, newBalance, now); err != nil {
			return err
		}

		l.Cid, l.Uid, l.BalanceAfter, l.Ctime = c.Id, r.Uid, newBalance, now
		if err = tx.Create(&l).Error; err != nil {
			return fmt.Errorf("创建积分流水失败: %w", err)
		}
		r.CreditLogId = l.Id
		r.Ctime = now
		if err = tx.Create(&r).Error; err != nil {
			if isUniqueConflict(err) {
				return ErrDuplicatedUnlock
			}
			return fmt.Errorf("创建解锁记录失败: %w", err)
		}
		balance = newBalance
		return nil
	})
	if errors.Is(err, ErrDuplicatedUnlock) {
		// 唯一索引兜底，事务已经回滚
		c, err1 := g.FindCreditByUID(ctx, r.Uid)
		return c.Balance, true, err1
	}
	return balance, already, err
}

func (g *creditDAO) lockCredit(tx *gorm.DB, uid int64) (Credit, error) {
	var c Credit
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("uid = ?", uid).
		First(&c).Error
	return c, err
}

// unlocked current 为 true 时使用当前读，快照读看不到并发事务刚提交的记录
func (g *creditDAO) unlocked(tx *gorm.DB, r UnlockRecord, current bool) (bool, error) {
	var res UnlockRecord
	query := tx
	if current {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := query.Where("uid = ? AND job_name = ? AND candidate_id = ?", r.Uid, r.JobName, r.CandidateID).
		First(&res).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (g *creditDAO) updateBalance(tx *gorm.DB, c Credit, balance decimal.Decimal, now int64) error {
	res := tx.Model(&Credit{}).
		Where("id = ? AND version = ?", c.Id, c.Version).
		Updates(map[string]any{
			"balance": balance,
			"version": c.Version + 1,
			"utime":   now,
		})
	if res.Error != nil {
		return fmt.Errorf("更新积分失败: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordChangedConcurrently
	}
	return nil
}

func (g *creditDAO) FindCreditLogs(ctx context.Context, uid int64, offset, limit int) ([]CreditLog, error) {
	var res []CreditLog
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *creditDAO) FindUnlockRecords(ctx context.Context, uid int64, jobName string, candidateIDs []string) ([]UnlockRecord, error) {
	var res []UnlockRecord
	if len(candidateIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).
		Where("uid = ? AND job_name = ? AND candidate_id IN ?", uid, jobName, candidateIDs).
		Find(&res).Error
	return res, err
}

func (g *creditDAO) SummarizeCreditLogs(ctx context.Context, uid int64) (LedgerSummary, error) {
	var res LedgerSummary
	db := g.db.WithContext(ctx)
	err := db.Model(&CreditLog{}).
		Select("COALESCE(SUM(delta), 0) AS sum_of_deltas, COUNT(*) AS entries").
		Where("uid = ?", uid).
		Scan(&res).Error
	if err != nil {
		return res, err
	}
	if res.Entries == 0 {
		return res, nil
	}
	var last CreditLog
	err = db.Where("uid = ?", uid).Order("id DESC").First(&last).Error
	res.LastBalanceAfter = last.BalanceAfter
	return res, err
}

func isUniqueConflict(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueConflictErrNo
}

type Credit struct {
	Id      int64           `gorm:"primaryKey;autoIncrement;comment:积分账户自增ID"`
	Uid     int64           `gorm:"not null;uniqueIndex:unq_uid;comment:雇主ID"`
	Balance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;comment:可用积分"`
	Version int64           `gorm:"not null;default:1;comment:版本号"`
	Ctime   int64
	Utime   int64
}

type CreditLog struct {
	Id           int64           `gorm:"primaryKey;autoIncrement;comment:积分流水自增ID"`
	Cid          int64           `gorm:"not null;index:idx_cid;comment:积分账户ID"`
	Uid          int64           `gorm:"not null;index:idx_uid;comment:雇主ID"`
	Delta        decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:变动数量,正数为增加,负数为减少"`
	BalanceAfter decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:变动后的余额"`
	Kind         string          `gorm:"type:varchar(32);not null;comment:流水类型"`
	JobName      string          `gorm:"type:varchar(255);not null;default:'';comment:岗位名称"`
	CandidateID  string          `gorm:"type:varchar(64);not null;default:'';comment:候选人ID"`
	Verdict      string          `gorm:"type:varchar(32);not null;default:'';comment:匹配结论"`
	Desc         string          `gorm:"type:varchar(255);not null;default:'';comment:流水描述"`
	Ctime        int64
}

type UnlockRecord struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Uid         int64  `gorm:"not null;uniqueIndex:unq_uid_job_candidate"`
	JobName     string `gorm:"type:varchar(255);not null;uniqueIndex:unq_uid_job_candidate"`
	CandidateID string `gorm:"type:varchar(64);not null;uniqueIndex:unq_uid_job_candidate"`
	FullName    string `gorm:"type:varchar(255);not null;default:''"`
	Contact     string `gorm:"type:varchar(255);not null;default:''"`
	ProfileURL  string `gorm:"type:varchar(512);not null;default:''"`
	Summary     string `gorm:"type:text"`
	Verdict     string `gorm:"type:varchar(32);not null"`
	CreditLogId int64  `gorm:"not null;comment:对应的扣费流水"`
	Ctime       int64
}

type LedgerSummary struct {
	SumOfDeltas      decimal.Decimal
	Entries          int64
	LastBalanceAfter decimal.Decimal `gorm:"-"`
}
