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

// Vector 一条向量记录，同一个 namespace 下 ID 唯一
type Vector struct {
	Namespace string
	ID        string
	Values    []float32
	Metadata  map[string]string
}

// Match 检索结果，Score 已经换算到 [0,1]
type Match struct {
	Namespace string
	ID        string
	Score     float64
	Metadata  map[string]string
}
