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

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type candidate struct {
	Id   string `gorm:"primaryKey"`
	Name string
}

func newTracedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *tracetest.SpanRecorder) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	err = db.Use(NewGormTracingPluginWith(tp.Tracer(instrumentationName), "mysql"))
	require.NoError(t, err)
	return db, mock, recorder
}

func attrValue(attrs []attribute.KeyValue, key string) string {
	for _, a := range attrs {
		if string(a.Key) == key {
			return a.Value.Emit()
		}
	}
	return ""
}

func TestGormTracingPlugin(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		run        func(db *gorm.DB) error
		wantSpan   string
		wantOp     string
		wantStatus codes.Code
	}{
		{
			name: "查询",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(
					sqlmock.NewRows([]string{"id", "name"}).AddRow("cv-1", "Nino"))
			},
			run: func(db *gorm.DB) error {
				var c candidate
				return db.WithContext(context.Background()).Where("id = ?", "cv-1").First(&c).Error
			},
			wantSpan:   "candidates SELECT",
			wantOp:     "SELECT",
			wantStatus: codes.Ok,
		},
		{
			name: "查不到数据不算错误",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			},
			run: func(db *gorm.DB) error {
				var c candidate
				err := db.WithContext(context.Background()).Where("id = ?", "cv-2").First(&c).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return err
			},
			wantSpan:   "candidates SELECT",
			wantOp:     "SELECT",
			wantStatus: codes.Ok,
		},
		{
			name: "插入失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO `candidates`").WillReturnError(errors.New("mock db error"))
			},
			run: func(db *gorm.DB) error {
				err := db.WithContext(context.Background()).Create(&candidate{Id: "cv-3", Name: "Giorgi"}).Error
				if err != nil && err.Error() == "mock db error" {
					return nil
				}
				return err
			},
			wantSpan:   "candidates INSERT",
			wantOp:     "INSERT",
			wantStatus: codes.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock, recorder := newTracedDB(t)
			tc.mock(mock)
			require.NoError(t, tc.run(db))
			spans := recorder.Ended()
			require.Len(t, spans, 1)
			span := spans[0]
			assert.Equal(t, tc.wantSpan, span.Name())
			assert.Equal(t, tc.wantOp, attrValue(span.Attributes(), "db.operation"))
			assert.Equal(t, "mysql", attrValue(span.Attributes(), "db.system"))
			assert.Equal(t, tc.wantStatus, span.Status().Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
