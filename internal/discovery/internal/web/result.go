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
	"github.com/ecodeclub/ginx"
	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidParameterResult = ginx.Result{
		Code: errs.InvalidParameter.Code,
		Msg:  errs.InvalidParameter.Msg,
	}
	unknownVerdictResult = ginx.Result{
		Code: errs.UnknownVerdict.Code,
		Msg:  errs.UnknownVerdict.Msg,
	}
	timeoutResult = ginx.Result{
		Code: errs.Timeout.Code,
		Msg:  errs.Timeout.Msg,
	}
	upstreamErrorResult = ginx.Result{
		Code: errs.UpstreamError.Code,
		Msg:  errs.UpstreamError.Msg,
	}
)

func insufficientCreditResult(credits float64) ginx.Result {
	return ginx.Result{
		Code: errs.InsufficientCredit.Code,
		Msg:  errs.InsufficientCredit.Msg,
		Data: UnlockResp{Credits: credits},
	}
}
