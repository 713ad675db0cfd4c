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
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/george572/job-board-express-server-sub000/internal/credit"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/service"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gotomicro/ego/core/elog"
)

var validate = validator.New()

type Handler struct {
	search service.SearchService
	unlock service.UnlockService
	logger *elog.Component
}

func NewHandler(search service.SearchService, unlock service.UnlockService) *Handler {
	return &Handler{
		search: search,
		unlock: unlock,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/search", ginx.BS[SearchReq](h.Search))
	server.POST("/candidates/request", ginx.BS[UnlockReq](h.RequestCandidate))
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq, sess session.Session) (ginx.Result, error) {
	req.normalize()
	if err := validate.Struct(&req); err != nil {
		h.logger.Warn("检索参数非法", elog.FieldErr(err))
		return abortWith(ctx, http.StatusBadRequest, invalidParameterResult)
	}
	res, err := h.search.Search(ctx.Request.Context(), domain.JobQuery{
		Uid:              sess.Claims().Uid,
		Title:            req.Title,
		Description:      req.Description,
		Experience:       req.Experience,
		EmploymentType:   req.EmploymentType,
		City:             req.City,
		Strength:         match.Strength(req.Strength),
		TopK:             req.TopK,
		RequireRoleMatch: req.RequireRoleMatch,
	})
	switch {
	case err == nil:
		return ginx.Result{Data: newCandidates(res)}, nil
	case errors.Is(err, context.DeadlineExceeded):
		return abortWith(ctx, http.StatusServiceUnavailable, timeoutResult)
	case errors.Is(err, service.ErrUpstream):
		h.logger.Error("候选人检索失败", elog.FieldErr(err))
		return abortWith(ctx, http.StatusServiceUnavailable, upstreamErrorResult)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) RequestCandidate(ctx *ginx.Context, req UnlockReq, sess session.Session) (ginx.Result, error) {
	req.JobName = strings.TrimSpace(req.JobName)
	req.Candidate.ID = strings.TrimSpace(req.Candidate.ID)
	if err := validate.Struct(&req); err != nil {
		return abortWith(ctx, http.StatusBadRequest, invalidParameterResult)
	}
	verdict, err := match.ParseVerdict(req.Candidate.Verdict)
	if err != nil {
		return abortWith(ctx, http.StatusBadRequest, unknownVerdictResult)
	}
	res, err := h.unlock.Unlock(ctx.Request.Context(), sess.Claims().Uid, domain.UnlockCandidate{
		JobName:     req.JobName,
		CandidateID: req.Candidate.ID,
		Name:        req.Candidate.Name,
		Verdict:     verdict,
		Summary:     req.Candidate.Summary,
		Contact:     req.Candidate.Contact,
		ProfileURL:  req.Candidate.ProfileURL,
	})
	switch {
	case err == nil:
		return ginx.Result{
			Data: UnlockResp{
				Credits: res.Balance.InexactFloat64(),
				Already: res.Already,
			},
		}, nil
	case errors.Is(err, credit.ErrCreditNotEnough):
		return abortWith(ctx, http.StatusPaymentRequired, insufficientCreditResult(res.Balance.InexactFloat64()))
	case errors.Is(err, credit.ErrUnpriceableVerdict):
		return abortWith(ctx, http.StatusBadRequest, unknownVerdictResult)
	case errors.Is(err, credit.ErrInvalidUnlock):
		return abortWith(ctx, http.StatusBadRequest, invalidParameterResult)
	case errors.Is(err, credit.ErrAccountNotFound):
		return ginx.Result{}, ginx.ErrUnauthorized
	case errors.Is(err, credit.ErrTimeout):
		return abortWith(ctx, http.StatusServiceUnavailable, timeoutResult)
	default:
		return systemErrorResult, err
	}
}

// abortWith 需要非 200 也非 500 的状态码时自己写响应
func abortWith(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return res, ginx.ErrNoResponse
}
