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

package errs

var (
	SystemError        = ErrorCode{Code: 517001, Msg: "系统错误"}
	InsufficientCredit = ErrorCode{Code: 517002, Msg: "积分不足"}
	InvalidParameter   = ErrorCode{Code: 517003, Msg: "参数错误"}
	Timeout            = ErrorCode{Code: 517004, Msg: "操作超时"}
	AccountNotFound    = ErrorCode{Code: 517005, Msg: "积分账户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
