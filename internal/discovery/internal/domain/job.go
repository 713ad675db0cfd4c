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

package domain

import (
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/pkg/match"
)

// JobQuery 一次检索请求，不落库
type JobQuery struct {
	Uid            int64
	Title          string
	Description    string
	Experience     string
	EmploymentType string
	City           string
	Strength       match.Strength
	TopK           int
	// RequireRoleMatch 只对非基础岗位生效
	RequireRoleMatch bool
}

// JobName 解锁记录按岗位名称区分
func (q JobQuery) JobName() string {
	return strings.TrimSpace(q.Title)
}

// Classification 岗位分类结果
type Classification struct {
	// Normalized 归一化之后的岗位名称
	Normalized string
	// Basic 基础岗位，任何背景的人都能胜任
	Basic bool
	// Variants 同义岗位名称，不包含岗位本身
	Variants []string
}
