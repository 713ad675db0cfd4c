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

package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "大小写和空白", input: "  Senior   Backend\tEngineer ", want: "senior backend engineer"},
		{name: "变音符号", input: "Café Gérant", want: "cafe gerant"},
		{name: "标点", input: "Sales-Manager/Consultant, (Tbilisi)", want: "sales manager consultant tbilisi"},
		{name: "格鲁吉亚语", input: "ოფიციანტი!", want: "ოფიციანტი"},
		{name: "空串", input: "", want: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestContainsTerm(t *testing.T) {
	text := Normalize("Chief Accountant at a bank, მთავარი ბუღალტერი")
	assert.True(t, ContainsTerm(text, "accountant"))
	assert.True(t, ContainsTerm(text, "chief accountant"))
	assert.True(t, ContainsTerm(text, "ბუღალტ"))
	assert.False(t, ContainsTerm(text, "countant"))
	assert.False(t, ContainsTerm(text, ""))
	assert.True(t, ContainsAny(text, []string{"lawyer", "accountant"}))
	assert.False(t, ContainsAny(text, []string{"lawyer", "driver"}))
}
