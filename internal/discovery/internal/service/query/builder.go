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

package query

import (
	"fmt"
	"strings"

	"github.com/george572/job-board-express-server-sub000/internal/discovery/internal/domain"
)

// Build 生成检索文本，突出岗位名称和过往经历，字段为空的子句不输出
func Build(job domain.JobQuery, cls domain.Classification) string {
	var clauses []string
	if title := strings.TrimSpace(job.Title); title != "" {
		target := "Target role: " + title
		if len(cls.Variants) > 0 {
			target += " (also: " + strings.Join(cls.Variants, ", ") + ")"
		}
		clauses = append(clauses, target+".",
			fmt.Sprintf("Relevant past experience as %s.", title))
	}
	clauses = appendClause(clauses, "Job description", job.Description)
	clauses = appendClause(clauses, "Required experience", job.Experience)
	clauses = appendClause(clauses, "Employment type", job.EmploymentType)
	clauses = appendClause(clauses, "City", job.City)
	return strings.Join(clauses, "\n")
}

func appendClause(clauses []string, label, value string) []string {
	value = strings.Join(strings.Fields(value), " ")
	if value == "" {
		return clauses
	}
	return append(clauses, fmt.Sprintf("%s: %s.", label, strings.TrimRight(value, ".")))
}
