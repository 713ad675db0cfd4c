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
	"testing"

	"github.com/george572/job-board-express-server-sub000/internal/search/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/search/internal/repository/dao"
	daomocks "github.com/george572/job-board-express-server-sub000/internal/search/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVectorIndex_Query(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) dao.VectorDAO
		namespace string
		vector    []float32
		topK      int
		want      []domain.Match
		wantErr   error
	}{
		{
			name: "分数换算",
			mock: func(ctrl *gomock.Controller) dao.VectorDAO {
				d := daomocks.NewMockVectorDAO(ctrl)
				d.EXPECT().Search(gomock.Any(), "cv", []float32{1, 0}, 3).Return([]dao.ScoredDoc{
					{VectorDoc: dao.VectorDoc{ID: "1", Namespace: "cv", Metadata: map[string]string{"name": "Nino"}}, Score: 1.9},
					{VectorDoc: dao.VectorDoc{ID: "2", Namespace: "cv"}, Score: 1.25},
					{VectorDoc: dao.VectorDoc{ID: "3", Namespace: "cv"}, Score: 0.4},
				}, nil)
				return d
			},
			namespace: "cv",
			vector:    []float32{1, 0},
			topK:      3,
			want: []domain.Match{
				{Namespace: "cv", ID: "1", Score: 0.9, Metadata: map[string]string{"name": "Nino"}},
				{Namespace: "cv", ID: "2", Score: 0.25},
				{Namespace: "cv", ID: "3", Score: 0},
			},
		},
		{
			name: "维度不对",
			mock: func(ctrl *gomock.Controller) dao.VectorDAO {
				return daomocks.NewMockVectorDAO(ctrl)
			},
			namespace: "cv",
			vector:    []float32{1, 0, 0},
			topK:      3,
			wantErr:   ErrInvalidVector,
		},
		{
			name: "topK 非法",
			mock: func(ctrl *gomock.Controller) dao.VectorDAO {
				return daomocks.NewMockVectorDAO(ctrl)
			},
			namespace: "cv",
			vector:    []float32{1, 0},
			topK:      0,
			wantErr:   ErrInvalidQuery,
		},
		{
			name: "ES 出错",
			mock: func(ctrl *gomock.Controller) dao.VectorDAO {
				d := daomocks.NewMockVectorDAO(ctrl)
				d.EXPECT().Search(gomock.Any(), "form", gomock.Any(), 2).Return(nil, context.DeadlineExceeded)
				return d
			},
			namespace: "form",
			vector:    []float32{0, 1},
			topK:      2,
			wantErr:   context.DeadlineExceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewVectorIndex(tc.mock(ctrl), 2)
			got, err := svc.Query(context.Background(), tc.namespace, tc.vector, tc.topK)
			assert.True(t, errors.Is(err, tc.wantErr), "err: %v", err)
			if err != nil {
				return
			}
			assert.Len(t, got, len(tc.want))
			for i := range tc.want {
				assert.Equal(t, tc.want[i].ID, got[i].ID)
				assert.InDelta(t, tc.want[i].Score, got[i].Score, 1e-9)
				assert.Equal(t, tc.want[i].Metadata, got[i].Metadata)
			}
		})
	}
}

func TestVectorIndex_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockVectorDAO(ctrl)
	d.EXPECT().Upsert(gomock.Any(), dao.VectorDoc{
		ID:        "form_3",
		Namespace: "form",
		Vector:    []float32{0.6, 0.8},
		Metadata:  map[string]string{"name": "Giorgi"},
	}).Return(nil)
	svc := NewVectorIndex(d, 2)

	err := svc.Upsert(context.Background(), "form", "form_3", []float32{0.6, 0.8}, map[string]string{"name": "Giorgi"})
	assert.NoError(t, err)
	err = svc.Upsert(context.Background(), "", "form_3", []float32{0.6, 0.8}, nil)
	assert.ErrorIs(t, err, ErrInvalidVector)
}
