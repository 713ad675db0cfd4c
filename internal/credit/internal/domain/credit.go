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

package domain

import (
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/shopspring/decimal"
)

// Credit 雇主的积分账户，余额只会在账本事务里面变更
type Credit struct {
	Uid     int64
	Balance decimal.Decimal
	Ctime   int64
	Utime   int64
}

// EntryKind 账本流水类型
type EntryKind string

const (
	EntryKindInitialGrant     EntryKind = "initial_grant"
	EntryKindUnlockCandidate  EntryKind = "unlock_candidate"
	EntryKindManualAdjustment EntryKind = "manual_adjustment"
)

func (k EntryKind) Valid() bool {
	switch k {
	case EntryKindInitialGrant, EntryKindUnlockCandidate, EntryKindManualAdjustment:
		return true
	default:
		return false
	}
}

// CreditLog 只追加的账本流水
type CreditLog struct {
	ID           int64
	Uid          int64
	Delta        decimal.Decimal
	BalanceAfter decimal.Decimal
	Kind         EntryKind
	JobName      string
	CandidateID  string
	Verdict      match.Verdict
	Desc         string
	Ctime        int64
}

type UnlockRecord struct {
	ID          int64
	Uid         int64
	JobName     string
	CandidateID string
	FullName    string
	Contact     string
	ProfileURL  string
	Summary     string
	Verdict     match.Verdict
	CreditLogID int64
	Ctime       int64
}

type UnlockRequest struct {
	Uid         int64
	JobName     string
	CandidateID string
	Verdict     match.Verdict
	FullName    string
	Contact     string
	ProfileURL  string
	Summary     string
}

type UnlockResult struct {
	// 操作之后的余额，积分不足时为当前余额
	Balance decimal.Decimal
	// 之前已经解锁过，本次没有扣费
	Already bool
}

// Reconciliation 按账本重新计算的结果
type Reconciliation struct {
	Uid              int64
	Balance          decimal.Decimal
	SumOfDeltas      decimal.Decimal
	LastBalanceAfter decimal.Decimal
	Entries          int64
}

func (r Reconciliation) Consistent() bool {
	return r.Balance.Equal(r.SumOfDeltas) && r.Balance.Equal(r.LastBalanceAfter)
}
