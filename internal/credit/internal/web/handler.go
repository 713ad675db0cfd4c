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
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/george572/job-board-express-server-sub000/internal/credit/internal/service"
	"github.com/gin-gonic/gin"
)

const maxHistoryLimit = 100

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/credits/history", ginx.BS[HistoryReq](h.History))
	g := server.Group("/credit")
	g.POST("/detail", ginx.S(h.QueryCredits))
}

func (h *Handler) QueryCredits(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.GetCreditsByUID(ctx.Request.Context(), sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{
			Data: Credit{Amount: c.Balance.InexactFloat64()},
		}, nil
	case errors.Is(err, service.ErrAccountNotFound):
		return ginx.Result{}, ginx.ErrUnauthorized
	case errors.Is(err, service.ErrTimeout):
		return abortWith(ctx, http.StatusServiceUnavailable, timeoutResult)
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) History(ctx *ginx.Context, req HistoryReq, sess session.Session) (ginx.Result, error) {
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Limit <= 0 || req.Limit > maxHistoryLimit {
		req.Limit = maxHistoryLimit
	}
	logs, err := h.svc.History(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		if errors.Is(err, service.ErrTimeout) {
			return abortWith(ctx, http.StatusServiceUnavailable, timeoutResult)
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCreditLogList(logs),
	}, nil
}

// abortWith 需要非 200 也非 500 的状态码时自己写响应
func abortWith(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return res, ginx.ErrNoResponse
}
