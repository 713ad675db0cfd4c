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

// EmbedMode 非对称检索模型要求查询和文档分别编码
type EmbedMode uint8

func (m EmbedMode) String() string {
	switch m {
	case EmbedModeQuery:
		return "query"
	case EmbedModePassage:
		return "passage"
	default:
		return "unknown"
	}
}

const (
	EmbedModeUnknown EmbedMode = iota
	EmbedModeQuery
	EmbedModePassage
)
