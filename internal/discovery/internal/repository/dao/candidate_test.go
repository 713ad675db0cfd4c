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
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var candidateColumns = []string{"id", "kind", "name", "email", "phone", "profile_url", "profile_text", "ctime", "utime"}

func TestCandidateDAO_Upsert(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "插入或更新",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `candidates` .* ON DUPLICATE KEY UPDATE").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `candidates`").
					WillReturnError(errors.New("mock db error"))
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewCandidateGORMDAO(newMockGormDB(t, tc.mock(t)))
			err := d.Upsert(context.Background(), Candidate{
				Id:          "42",
				Kind:        "cv",
				Name:        "Nino Beridze",
				ProfileText: "ოფიციანტი",
			})
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestCandidateDAO_FindByID(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `candidates` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow("form_3", "form", "Giorgi", "g@x.ge", "555", "", "barista", 1, 2))
	mock.ExpectQuery("SELECT \\* FROM `candidates` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	d := NewCandidateGORMDAO(newMockGormDB(t, mockDB))
	c, err := d.FindByID(context.Background(), "form_3")
	require.NoError(t, err)
	assert.Equal(t, Candidate{
		Id: "form_3", Kind: "form", Name: "Giorgi", Email: "g@x.ge", Phone: "555",
		ProfileText: "barista", Ctime: 1, Utime: 2,
	}, c)

	_, err = d.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCandidateDAO_FindByIDs(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectQuery("SELECT \\* FROM `candidates` WHERE id IN").
		WithArgs("1", "2").
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow("1", "cv", "A", "", "", "", "", 0, 0))

	d := NewCandidateGORMDAO(newMockGormDB(t, mockDB))
	res, err := d.FindByIDs(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, res, 1)

	res, err = d.FindByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func newMockGormDB(t *testing.T, mockDB *sql.DB) *egorm.Component {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
