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

package role

import (
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
	"github.com/george572/job-board-express-server-sub000/internal/pkg/textnorm"
)

type synonymGroup struct {
	normalized []string
	raw        []string
}

// Classifier 纯计算，没有副作用，可以并发使用
type Classifier struct {
	basic      []string
	specialist []string
	groups     []synonymGroup
}

func NewClassifier() *Classifier {
	return NewClassifierWith(basicKeywords, specialistKeywords, synonymGroups)
}

// NewClassifierWith 关键词在这里统一归一化
func NewClassifierWith(basic, specialist []string, groups [][]string) *Classifier {
	c := &Classifier{
		basic:      normalizeAll(basic),
		specialist: normalizeAll(specialist),
		groups:     make([]synonymGroup, 0, len(groups)),
	}
	for _, g := range groups {
		var sg synonymGroup
		for _, term := range g {
			if n := textnorm.Normalize(term); n != "" {
				sg.normalized = append(sg.normalized, n)
				sg.raw = append(sg.raw, term)
			}
		}
		c.groups = append(c.groups, sg)
	}
	return c
}

func (c *Classifier) Classify(role string) domain.Classification {
	normalized := textnorm.Normalize(role)
	if normalized == "" {
		return domain.Classification{}
	}
	return domain.Classification{
		Normalized: normalized,
		Basic:      textnorm.ContainsAny(normalized, c.basic) && !c.IsSpecialist(normalized),
		Variants:   c.variants(normalized),
	}
}

// IsSpecialist text 需要已经归一化
func (c *Classifier) IsSpecialist(text string) bool {
	return textnorm.ContainsAny(text, c.specialist)
}

func (c *Classifier) variants(normalized string) []string {
	var res []string
	seen := map[string]struct{}{normalized: {}}
	matched := make([][]bool, len(c.groups))
	for gi, g := range c.groups {
		matched[gi] = c.matchMembers(normalized, g)
		for i, ok := range matched[gi] {
			if ok {
				seen[g.normalized[i]] = struct{}{}
			}
		}
	}
	for gi, g := range c.groups {
		if !hit(matched[gi]) {
			continue
		}
		for i, member := range g.normalized {
			if _, ok := seen[member]; ok {
				continue
			}
			seen[member] = struct{}{}
			res = append(res, g.raw[i])
		}
	}
	return res
}

// matchMembers 标出在岗位名称里面完整出现的组内名称
func (c *Classifier) matchMembers(normalized string, g synonymGroup) []bool {
	padded := " " + normalized + " "
	res := make([]bool, len(g.normalized))
	for i, member := range g.normalized {
		res[i] = strings.Contains(padded, " "+member+" ")
	}
	return res
}

func hit(matched []bool) bool {
	for _, ok := range matched {
		if ok {
			return true
		}
	}
	return false
}

func normalizeAll(terms []string) []string {
	res := make([]string, 0, len(terms))
	for _, t := range terms {
		if n := textnorm.Normalize(t); n != "" {
			res = append(res, n)
		}
	}
	return res
}
