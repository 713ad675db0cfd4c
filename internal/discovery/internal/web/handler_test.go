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

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service"
	discoverymocks "github.com/george572/job-board-express-server-sub000/internal/discovery/mocks"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/george572/job-board-express-server-sub000/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, search service.SearchService, unlock service.UnlockService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: 123,
		}))
	})
	NewHandler(search, unlock).PrivateRoutes(server)
	return server
}

func newJSONRequest(t *testing.T, path string, body any) *http.Request {
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_Search(t *testing.T) {
	validReq := SearchReq{
		Title:       "ოფიციანტი",
		Description: "ვეძებთ ოფიციანტს რესტორანში, სტუმრების მომსახურება",
		Strength:    "Good",
	}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.SearchService
		req      SearchReq
		wantCode int
		wantResp test.Result[[]Candidate]
	}{
		{
			name: "检索成功",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				svc := discoverymocks.NewMockSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), domain.JobQuery{
					Uid:         123,
					Title:       "ოფიციანტი",
					Description: "ვეძებთ ოფიციანტს რესტორანში, სტუმრების მომსახურება",
					Strength:    match.StrengthGood,
					TopK:        defaultTopK,
				}).Return([]domain.RankedCandidate{
					{
						CandidateID: "cv-1",
						Name:        "Nino Beridze",
						Initials:    "NB",
						Summary:     "ხუთი წელი ოფიციანტად",
						Verdict:     match.VerdictStrong,
					},
					{
						CandidateID: "form_9",
						Name:        "Giorgi",
						Initials:    "G",
						Summary:     "ბარმენი",
						Verdict:     match.VerdictGood,
						FormOnly:    true,
						Unlocked:    true,
						Contact:     "g@example.com / 555",
					},
				}, nil)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]Candidate]{
				Data: []Candidate{
					{
						CandidateID: "cv-1",
						Name:        "Nino Beridze",
						Initials:    "NB",
						Summary:     "ხუთი წელი ოფიციანტად",
						Verdict:     "STRONG_MATCH",
					},
					{
						CandidateID: "form_9",
						Name:        "Giorgi",
						Initials:    "G",
						Summary:     "ბარმენი",
						Verdict:     "GOOD_MATCH",
						FormOnly:    true,
						Unlocked:    true,
						Contact:     "g@example.com / 555",
					},
				},
			},
		},
		{
			name: "没有结果",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				svc := discoverymocks.NewMockSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusOK,
			wantResp: test.Result[[]Candidate]{
				Data: []Candidate{},
			},
		},
		{
			name: "描述为空",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				return discoverymocks.NewMockSearchService(ctrl)
			},
			req: SearchReq{
				Description: "   ",
				Strength:    "good",
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]Candidate]{
				Code: invalidParameterResult.Code,
				Msg:  invalidParameterResult.Msg,
			},
		},
		{
			name: "top_k 超出范围",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				return discoverymocks.NewMockSearchService(ctrl)
			},
			req: SearchReq{
				Description: validReq.Description,
				Strength:    "good",
				TopK:        51,
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]Candidate]{
				Code: invalidParameterResult.Code,
				Msg:  invalidParameterResult.Msg,
			},
		},
		{
			name: "未知的匹配强度",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				return discoverymocks.NewMockSearchService(ctrl)
			},
			req: SearchReq{
				Description: validReq.Description,
				Strength:    "weak",
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[[]Candidate]{
				Code: invalidParameterResult.Code,
				Msg:  invalidParameterResult.Msg,
			},
		},
		{
			name: "检索服务不可用",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				svc := discoverymocks.NewMockSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: embed", service.ErrUpstream))
				return svc
			},
			req:      validReq,
			wantCode: http.StatusServiceUnavailable,
			wantResp: test.Result[[]Candidate]{
				Code: upstreamErrorResult.Code,
				Msg:  upstreamErrorResult.Msg,
			},
		},
		{
			name: "检索超时",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				svc := discoverymocks.NewMockSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusServiceUnavailable,
			wantResp: test.Result[[]Candidate]{
				Code: timeoutResult.Code,
				Msg:  timeoutResult.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.SearchService {
				svc := discoverymocks.NewMockSearchService(ctrl)
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("mock db error"))
				return svc
			},
			req:      validReq,
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl), discoverymocks.NewMockUnlockService(ctrl))
			recorder := test.NewJSONResponseRecorder[[]Candidate]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/search", tc.req))
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusInternalServerError {
				return
			}
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_RequestCandidate(t *testing.T) {
	validReq := UnlockReq{
		JobName: "ოფიციანტი",
		Candidate: UnlockCandidate{
			ID:      "cv-1",
			Name:    "Nino Beridze",
			Verdict: "STRONG_MATCH",
			Summary: "ხუთი წელი ოფიციანტად",
		},
	}
	wantUnlock := domain.UnlockCandidate{
		JobName:     "ოფიციანტი",
		CandidateID: "cv-1",
		Name:        "Nino Beridze",
		Verdict:     match.VerdictStrong,
		Summary:     "ხუთი წელი ოფიციანტად",
	}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.UnlockService
		req      UnlockReq
		wantCode int
		wantResp test.Result[UnlockResp]
	}{
		{
			name: "解锁成功",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), wantUnlock).Return(credit.UnlockResult{
					Balance: decimal.RequireFromString("96"),
				}, nil)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusOK,
			wantResp: test.Result[UnlockResp]{
				Data: UnlockResp{Credits: 96},
			},
		},
		{
			name: "重复解锁不扣费",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), wantUnlock).Return(credit.UnlockResult{
					Balance: decimal.RequireFromString("96"),
					Already: true,
				}, nil)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusOK,
			wantResp: test.Result[UnlockResp]{
				Data: UnlockResp{Credits: 96, Already: true},
			},
		},
		{
			name: "积分不足",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), gomock.Any()).Return(credit.UnlockResult{
					Balance: decimal.RequireFromString("1.5"),
				}, credit.ErrCreditNotEnough)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusPaymentRequired,
			wantResp: test.Result[UnlockResp]{
				Code: insufficientCreditResult(0).Code,
				Msg:  insufficientCreditResult(0).Msg,
				Data: UnlockResp{Credits: 1.5},
			},
		},
		{
			name: "未知的匹配结论",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				return discoverymocks.NewMockUnlockService(ctrl)
			},
			req: UnlockReq{
				JobName: "ოფიციანტი",
				Candidate: UnlockCandidate{
					ID:      "cv-1",
					Verdict: "GREAT_MATCH",
				},
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[UnlockResp]{
				Code: unknownVerdictResult.Code,
				Msg:  unknownVerdictResult.Msg,
			},
		},
		{
			name: "弱匹配无法定价",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), gomock.Any()).
					Return(credit.UnlockResult{}, credit.ErrUnpriceableVerdict)
				return svc
			},
			req: UnlockReq{
				JobName: "ოფიციანტი",
				Candidate: UnlockCandidate{
					ID:      "cv-1",
					Verdict: "WEAK_MATCH",
				},
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[UnlockResp]{
				Code: unknownVerdictResult.Code,
				Msg:  unknownVerdictResult.Msg,
			},
		},
		{
			name: "缺少职位名称",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				return discoverymocks.NewMockUnlockService(ctrl)
			},
			req: UnlockReq{
				JobName:   "  ",
				Candidate: validReq.Candidate,
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[UnlockResp]{
				Code: invalidParameterResult.Code,
				Msg:  invalidParameterResult.Msg,
			},
		},
		{
			name: "缺少候选人 ID",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				return discoverymocks.NewMockUnlockService(ctrl)
			},
			req: UnlockReq{
				JobName: "ოფიციანტი",
				Candidate: UnlockCandidate{
					Verdict: "GOOD_MATCH",
				},
			},
			wantCode: http.StatusBadRequest,
			wantResp: test.Result[UnlockResp]{
				Code: invalidParameterResult.Code,
				Msg:  invalidParameterResult.Msg,
			},
		},
		{
			name: "账户不存在",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), gomock.Any()).
					Return(credit.UnlockResult{}, credit.ErrAccountNotFound)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "扣费超时",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), gomock.Any()).
					Return(credit.UnlockResult{}, credit.ErrTimeout)
				return svc
			},
			req:      validReq,
			wantCode: http.StatusServiceUnavailable,
			wantResp: test.Result[UnlockResp]{
				Code: timeoutResult.Code,
				Msg:  timeoutResult.Msg,
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.UnlockService {
				svc := discoverymocks.NewMockUnlockService(ctrl)
				svc.EXPECT().Unlock(gomock.Any(), int64(123), gomock.Any()).
					Return(credit.UnlockResult{}, errors.New("mock db error"))
				return svc
			},
			req:      validReq,
			wantCode: http.StatusInternalServerError,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, discoverymocks.NewMockSearchService(ctrl), tc.mock(ctrl))
			recorder := test.NewJSONResponseRecorder[UnlockResp]()
			server.ServeHTTP(recorder, newJSONRequest(t, "/candidates/request", tc.req))
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode == http.StatusInternalServerError || tc.wantCode == http.StatusUnauthorized {
				return
			}
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}
