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

	"github.com/george572/job-board-express-server-sub000/internal/credit"
	creditmocks "github.com/george572/job-board-express-server-sub000/internal/credit/mocks"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository"
	repomocks "github.com/george572/job-board-express-server-sub000/internal/discovery/internal/repository/mocks"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUnlockService_Unlock(t *testing.T) {
	req := domain.UnlockCandidate{
		JobName:     "Backend Engineer",
		CandidateID: "42",
		Name:        "client name",
		Verdict:     match.VerdictStrong,
		Summary:     "solid",
		Contact:     "client contact",
		ProfileURL:  "/client",
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.CandidateRepository, credit.Service)
		want    credit.UnlockResult
		wantErr error
	}{
		{
			name: "以候选人资料为准",
			mock: func(ctrl *gomock.Controller) (repository.CandidateRepository, credit.Service) {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "42").Return(domain.CandidateProfile{
					ID: "42", Name: "Nino Beridze", Email: "nino@example.ge", Phone: "555",
				}, nil)
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), credit.UnlockRequest{
					Uid:         3,
					JobName:     "Backend Engineer",
					CandidateID: "42",
					Verdict:     match.VerdictStrong,
					FullName:    "Nino Beridze",
					Contact:     "nino@example.ge / 555",
					ProfileURL:  "/client",
					Summary:     "solid",
				}).Return(credit.UnlockResult{Balance: decimal.RequireFromString("98")}, nil)
				return repo, svc
			},
			want: credit.UnlockResult{Balance: decimal.RequireFromString("98")},
		},
		{
			name: "资料不存在使用提交的内容",
			mock: func(ctrl *gomock.Controller) (repository.CandidateRepository, credit.Service) {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "42").Return(domain.CandidateProfile{}, repository.ErrCandidateNotFound)
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), credit.UnlockRequest{
					Uid:         3,
					JobName:     "Backend Engineer",
					CandidateID: "42",
					Verdict:     match.VerdictStrong,
					FullName:    "client name",
					Contact:     "client contact",
					ProfileURL:  "/client",
					Summary:     "solid",
				}).Return(credit.UnlockResult{Balance: decimal.RequireFromString("98"), Already: true}, nil)
				return repo, svc
			},
			want: credit.UnlockResult{Balance: decimal.RequireFromString("98"), Already: true},
		},
		{
			name: "查询资料失败不扣费",
			mock: func(ctrl *gomock.Controller) (repository.CandidateRepository, credit.Service) {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "42").Return(domain.CandidateProfile{}, errors.New("mock db error"))
				return repo, creditmocks.NewMockService(ctrl)
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "积分不足",
			mock: func(ctrl *gomock.Controller) (repository.CandidateRepository, credit.Service) {
				repo := repomocks.NewMockCandidateRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), "42").Return(domain.CandidateProfile{}, repository.ErrCandidateNotFound)
				svc := creditmocks.NewMockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), gomock.Any()).
					Return(credit.UnlockResult{Balance: decimal.RequireFromString("0.3")}, credit.ErrCreditNotEnough)
				return repo, svc
			},
			want:    credit.UnlockResult{Balance: decimal.RequireFromString("0.3")},
			wantErr: credit.ErrCreditNotEnough,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUnlockService(tc.mock(ctrl))
			res, err := svc.Unlock(context.Background(), 3, req)
			if tc.wantErr != nil {
				assert.ErrorContains(t, err, tc.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, tc.want.Balance.Equal(res.Balance))
			assert.Equal(t, tc.want.Already, res.Already)
		})
	}
}
