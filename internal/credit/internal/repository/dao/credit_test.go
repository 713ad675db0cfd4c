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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var creditColumns = []string{"id", "uid", "balance", "version", "ctime", "utime"}

func TestCreditDAO_Unlock(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(t *testing.T) *sql.DB
		cost        decimal.Decimal
		wantBalance decimal.Decimal
		wantAlready bool
		wantErr     error
	}{
		{
			name: "已经解锁过_不扣费",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "98.00", 2, 0, 0))
				mock.ExpectCommit()
				return mockDB
			},
			cost:        decimal.NewFromInt(2),
			wantBalance: decimal.RequireFromString("98.00"),
			wantAlready: true,
		},
		{
			name: "扣费成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "100.00", 1, 0, 0))
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("UPDATE `credits` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `credit_logs`").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec("INSERT INTO `unlock_records`").
					WillReturnResult(sqlmock.NewResult(21, 1))
				mock.ExpectCommit()
				return mockDB
			},
			cost:        decimal.NewFromInt(2),
			wantBalance: decimal.RequireFromString("98.00"),
		},
		{
			name: "加锁后发现并发请求已解锁",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "98.00", 2, 0, 0))
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
				mock.ExpectCommit()
				return mockDB
			},
			cost:        decimal.NewFromInt(2),
			wantBalance: decimal.RequireFromString("98.00"),
			wantAlready: true,
		},
		{
			name: "积分不足",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "0.30", 1, 0, 0))
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectRollback()
				return mockDB
			},
			cost:        decimal.RequireFromString("0.5"),
			wantBalance: decimal.RequireFromString("0.30"),
			wantErr:     ErrCreditNotEnough,
		},
		{
			name: "唯一索引冲突_按已解锁处理",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "100.00", 1, 0, 0))
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("UPDATE `credits` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `credit_logs`").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec("INSERT INTO `unlock_records`").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "98.00", 2, 0, 0))
				return mockDB
			},
			cost:        decimal.NewFromInt(2),
			wantBalance: decimal.RequireFromString("98.00"),
			wantAlready: true,
		},
		{
			name: "版本号不匹配",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "100.00", 1, 0, 0))
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectExec("UPDATE `credits` SET").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			cost:        decimal.NewFromInt(2),
			wantBalance: decimal.RequireFromString("100.00"),
			wantErr:     ErrRecordChangedConcurrently,
		},
		{
			name: "账户不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `unlock_records` WHERE").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns))
				mock.ExpectRollback()
				return mockDB
			},
			cost:        decimal.NewFromInt(1),
			wantBalance: decimal.Zero,
			wantErr:     ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewCreditGORMDAO(newMockGormDB(t, tc.mock(t)))
			balance, already, err := d.Unlock(context.Background(), UnlockRecord{
				Uid:         1,
				JobName:     "Backend Engineer",
				CandidateID: "42",
				Verdict:     "STRONG_MATCH",
			}, CreditLog{
				Delta: tc.cost.Neg(),
				Kind:  "unlock_candidate",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantAlready, already)
			assert.True(t, tc.wantBalance.Equal(balance), "want %s, got %s", tc.wantBalance, balance)
		})
	}
}

func TestCreditDAO_Adjust(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(t *testing.T) *sql.DB
		delta       decimal.Decimal
		wantBalance decimal.Decimal
		wantErr     error
	}{
		{
			name: "增加积分",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "10.00", 1, 0, 0))
				mock.ExpectExec("UPDATE `credits` SET").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `credit_logs`").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectCommit()
				return mockDB
			},
			delta:       decimal.RequireFromString("5.50"),
			wantBalance: decimal.RequireFromString("15.50"),
		},
		{
			name: "扣减后为负数",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `credits` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(creditColumns).AddRow(1, 1, "1.00", 1, 0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			delta:       decimal.NewFromInt(-2),
			wantBalance: decimal.RequireFromString("1.00"),
			wantErr:     ErrCreditNotEnough,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewCreditGORMDAO(newMockGormDB(t, tc.mock(t)))
			c, err := d.Adjust(context.Background(), 1, CreditLog{
				Delta: tc.delta,
				Kind:  "manual_adjustment",
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, tc.wantBalance.Equal(c.Balance), "want %s, got %s", tc.wantBalance, c.Balance)
		})
	}
}

func TestCreditDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "开户成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `credits`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `credit_logs`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "账户已存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `credits`").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrDuplicatedCredit,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `credits`").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO `credit_logs`").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewCreditGORMDAO(newMockGormDB(t, tc.mock(t)))
			grant := decimal.NewFromInt(100)
			c, err := d.Create(context.Background(), Credit{Uid: 1, Balance: grant}, CreditLog{Kind: "initial_grant"})
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), c.Id)
			assert.True(t, grant.Equal(c.Balance))
		})
	}
}

func TestCreditDAO_SummarizeCreditLogs(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(delta\\), 0\\) AS sum_of_deltas, COUNT\\(\\*\\) AS entries FROM `credit_logs`").
		WillReturnRows(sqlmock.NewRows([]string{"sum_of_deltas", "entries"}).AddRow("98.00", 2))
	mock.ExpectQuery("SELECT \\* FROM `credit_logs` WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid", "delta", "balance_after"}).AddRow(2, 1, "-2.00", "98.00"))

	d := NewCreditGORMDAO(newMockGormDB(t, mockDB))
	res, err := d.SummarizeCreditLogs(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Entries)
	assert.True(t, decimal.RequireFromString("98").Equal(res.SumOfDeltas))
	assert.True(t, decimal.RequireFromString("98").Equal(res.LastBalanceAfter))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newMockGormDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn: mockDB,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		// 如果为 true ，则不允许 Ping数据库
		DisableAutomaticPing: true,
		// 如果为 false ，则即使是单一语句，也会开启事务
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
